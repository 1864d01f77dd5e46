package app

import (
	"quiz_backend/docs"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = util.APIPrefix
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group(util.APIPrefix)

	// 1. 答题相关接口
	a.registerTakingRoutes(api, c)

	// 2. 出题及结果接口
	a.registerAuthoringRoutes(api, c)
}

func (a *App) registerTakingRoutes(rg *gin.RouterGroup, c *controllers) {
	tests := rg.Group("/tests")
	{
		tests.GET("/:id", c.test.GetMetadata)
		tests.GET("/:id/current", c.test.GetCurrentQuestion)
		tests.GET("/:id/questions/:index", c.test.GetQuestion)
		tests.GET("/:id/count", c.test.GetCount)
		tests.POST("/:id/questions/:index/answer", c.test.SubmitAnswer)
	}
}

func (a *App) registerAuthoringRoutes(rg *gin.RouterGroup, c *controllers) {
	tests := rg.Group("/tests")
	{
		tests.POST("", c.test.CreateTest)
		tests.POST("/full", c.test.CreateFullTest)
		tests.POST("/:id/questions", c.test.AppendQuestion)
		tests.GET("/:id/results", c.test.GetResults)
	}
}
