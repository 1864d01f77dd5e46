// @title Quiz 后端 API
// @version 1.0
// @description 限时测验的答题与出题服务。

// @host localhost:8080
// @BasePath /api/v1

package main

import (
	"flag"
	"log"
	"quiz_backend/internal/app"
	"quiz_backend/internal/config"
	"quiz_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	storage := flag.String("storage", "", "覆盖 storage.type（mongo/mysql/redis/memory）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *storage != "" {
		cfg.Storage.Type = *storage
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	application.Run()
}
