package util

import (
	"errors"
	"net/http"
	"quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 接口约定：成功时直接返回 JSON 数据，失败时只返回状态码，不带响应体

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func OK(c *gin.Context) {
	c.Status(http.StatusOK)
}

func Error(c *gin.Context, code int) {
	c.AbortWithStatus(code)
}

func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// StatusFor 将业务错误映射为 HTTP 状态码
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrTestNotFound),
		errors.Is(err, ErrNoMoreQuestions):
		return http.StatusNotFound
	case errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrPersistence),
		errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func AbortWithError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		LogInternalError(c, err)
		return
	}
	Error(c, code)
}
