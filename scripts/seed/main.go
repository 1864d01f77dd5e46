// 从 YAML 文件导入一套完整测试
//
// 用法: go run ./scripts/seed -file quiz.yaml
//
// 文件格式与 POST /api/v1/tests/full 的请求体一致：
//
//	title: Quiz
//	instructions: ["..."]
//	questions:
//	  - questionText: "..."
//	    maxTime: 60
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"quiz_backend/internal/app"
	"quiz_backend/internal/config"
	"quiz_backend/internal/service"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	file := flag.String("file", "", "测试定义 YAML 文件")
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	if *file == "" {
		log.Fatal("缺少 -file 参数")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("无法读取测试文件: %v", err)
	}

	var req service.CreateFullTestRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		log.Fatalf("解析测试文件失败: %v", err)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Storage.Type == "memory" {
		log.Fatal("memory 存储无法持久化导入的数据")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, closeRepo, err := app.OpenRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("连接存储失败: %v", err)
	}
	defer closeRepo(context.Background())

	t, err := service.NewTestService(repo, cfg).CreateFullTest(ctx, req)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	fmt.Printf("已导入测试 %s（%d 道题）\n", t.ID.Hex(), len(t.Questions))
}
