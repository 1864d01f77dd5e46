package controller

import (
	"context"
	"net/http"
	"quiz_backend/internal/repository"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Repo    repository.TestRepository
	Backend string
}

func NewHealthController(repo repository.TestRepository, backend string) *HealthController {
	return &HealthController{Repo: repo, Backend: backend}
}

// @Summary 健康检查
// @Description 检查服务及存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.Repo.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"components": gin.H{
				"storage": "down",
				"backend": c.Backend,
			},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
			"backend": c.Backend,
		},
	})
}
