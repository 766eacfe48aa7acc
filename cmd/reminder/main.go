package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/config"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/reminder"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 读取配置文件
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 连接数据库
	 **********************************************/
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

	/**********************************************
	 * 连接 RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("无法连接到 RabbitMQ", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("无法建立通道", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		reminder.NotificationQueueName, // 队列名称
		true,                           // 是否持久化
		false,                          // 是否自动删除，设置为 false 可以避免没有消费者的时候自动删除队列
		false,                          // 是否独占
		false,                          // 是否不等待，设置为 false，即等待 RabbitMQ 确认队列是否创建成功
		nil,                            // 额外参数
	)
	if err != nil {
		logger.Error("无法声明队列", "error", err)
		return
	}

	/**********************************************
	 * 连接 redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * 创建提醒服务
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)
	rem := reminder.New(cfg, repo, repo, repo, repo, rdb, ch)

	/**********************************************
	 * 启动定时评估
	 **********************************************/
	// 机构使用单一固定时区, cron 也用同一个时区触发
	loc := time.FixedZone("org", cfg.Reminder.UTCOffsetMinutes*60)
	cronEngine := cron.New(cron.WithLocation(loc))

	_, err = cronEngine.AddFunc(cfg.Reminder.CronSpec, func() {
		passCtx, passCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Reminder.PassTimeout)*time.Second)
		defer passCancel()

		start := time.Now()
		sent, err := rem.RunOnce(passCtx, start.UTC())
		if err != nil {
			logger.Error("本轮评估失败", "error", err)
			return
		}
		logger.Info("本轮评估完成", "sent", sent, "duration", time.Since(start))
	})
	if err != nil {
		logger.Error("无法注册定时评估任务", "error", err)
		return
	}

	cronEngine.Start()
	logger.Info("提醒 worker 已启动", "cron", cfg.Reminder.CronSpec)

	/**********************************************
	 * 等待退出信号
	 **********************************************/
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// 优雅退出, 等待正在执行的一轮评估结束
	logger.Info("正在关闭提醒 worker...")
	<-cronEngine.Stop().Done()
	logger.Info("提醒 worker 已成功关闭")
}
