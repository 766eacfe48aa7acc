package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/config"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/repository"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var n int
	var tasksPerWorker int
	var emailDomain string

	flag.IntVar(&n, "n", 5, "要插入的随机员工数量")
	flag.IntVar(&tasksPerWorker, "tasks", 2, "每个员工插入的随机任务数量")
	flag.StringVar(&emailDomain, "email-domain", "example.com", "随机员工邮箱的域名")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	workers := seed.SeedRandomWorkers(repo, n, cfg.Seed.Worker.Password, emailDomain)
	seed.SeedRandomTasks(repo, workers, tasksPerWorker)

	logger.Info("seed 完成", "workers", len(workers))
}
