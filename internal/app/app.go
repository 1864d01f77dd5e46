package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"quiz_backend/internal/config"
	"quiz_backend/internal/controller"
	"quiz_backend/internal/middleware"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/configwatcher"
	"quiz_backend/pkg/logger"
	"quiz_backend/pkg/monitoring"
	"quiz_backend/pkg/security"
	"quiz_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	Repo            repository.TestRepository
	limiter         *security.RateLimiter
	configCallbacks []func(*config.Config)
	closers         []func(context.Context) error
	stop            chan struct{}
}

type services struct {
	test *service.TestService
}

type controllers struct {
	test   *controller.TestController
	health *controller.HealthController
}

func (a *App) onConfigChange(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) onClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

func (a *App) initServices(repo repository.TestRepository, cfg *config.Config) *services {
	return &services{
		test: service.NewTestService(repo, cfg),
	}
}

func (a *App) initControllers(s *services, repo repository.TestRepository, cfg *config.Config) *controllers {
	return &controllers{
		test:   controller.NewTestController(s.test),
		health: controller.NewHealthController(repo, cfg.Storage.Type),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// applyConfig 热加载时只更新可在运行中调整的配置项
func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// NewWithRepository 使用给定存储构建应用，不建立任何外部连接
func NewWithRepository(cfg *config.Config, repo repository.TestRepository) *App {
	app := &App{
		Config:  cfg,
		Repo:    repo,
		limiter: security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()),
		stop:    make(chan struct{}),
	}

	app.onConfigChange(func(next *config.Config) {
		logger.SetLevel(next.Server.Mode)
	})
	app.onConfigChange(func(next *config.Config) {
		app.limiter.Update(next.RateLimit.MaxRequests, next.RateLimit.Window())
	})

	services := app.initServices(repo, cfg)
	controllers := app.initControllers(services, repo, cfg)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("storage", cfg.Storage.Type))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	repo, closeStore, err := OpenRepository(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	app := NewWithRepository(cfg, repo)
	app.ConfigDir = configDir
	app.onClose(closeStore)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("quiz-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.onClose(tp.Shutdown)
	}

	return app
}

func (a *App) startBackgroundTasks() {
	go a.limiter.Cleanup(a.stop)

	if a.ConfigDir == "" {
		return
	}
	go func() {
		file := filepath.Join(a.ConfigDir, "config.yaml")
		if err := configwatcher.Watch(file, a.stop, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	port := a.Config.Server.Port
	if port == "" {
		port = util.DefaultPort
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	a.startBackgroundTasks()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Log.Error("Failed to release resource", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
