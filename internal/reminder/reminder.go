package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/config"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// NotificationQueueName 是通知事件发布到的 RabbitMQ 队列,
// 下游展示层从这里消费, 具体送达方式不在本服务职责内
const NotificationQueueName = "notification_queue"

// 员工目录(外部协作方, 只读)
type WorkerDirectory interface {
	GetActiveWorkersWithSchedule() ([]*domain.Worker, error)
}

// 通知存储(外部协作方)。InsertNotificationIfAbsent 必须是单条原子语句:
// 仅当 cutoff 之后不存在相同 (workerID, category, dedupKey) 的记录时才插入,
// 返回是否真的插入了。并发的多轮评估靠它保证不重复提醒。
type NotificationSink interface {
	InsertNotificationIfAbsent(n *domain.Notification, cutoff time.Time) (bool, error)
}

// 已休记录(外部协作方, 只读)
type BreakLedger interface {
	GetTakenBreakKinds(workerID int64, since time.Time) (map[domain.WindowKind]bool, error)
}

// 待办任务(外部协作方, 只读)
type TaskSource interface {
	GetOpenTasksDueBefore(deadline time.Time) ([]*domain.Task, error)
}

type Reminder struct {
	cfg           *config.Config
	directory     WorkerDirectory
	sink          NotificationSink
	ledger        BreakLedger
	tasks         TaskSource
	redisClient   *redis.Client
	notifyChannel *amqp.Channel
}

// New 创建提醒服务。redisClient 和 notifyChannel 可以为 nil,
// 此时分别跳过冷却预滤和队列发布, 去重正确性不受影响。
func New(cfg *config.Config, directory WorkerDirectory, sink NotificationSink, ledger BreakLedger, tasks TaskSource, redisClient *redis.Client, notifyChannel *amqp.Channel) *Reminder {
	return &Reminder{
		cfg:           cfg,
		directory:     directory,
		sink:          sink,
		ledger:        ledger,
		tasks:         tasks,
		redisClient:   redisClient,
		notifyChannel: notifyChannel,
	}
}

// RunOnce 执行一轮完整评估, 返回本轮实际发出的通知数量。
// "当前时间" 在入口处捕获一次并贯穿整轮, 同一轮内所有窗口看到的时间一致。
// 服务在轮与轮之间不保存任何状态, 所有 "是否已发过" 都由通知存储裁决,
// 因此重复执行和多实例并发执行都是安全的。
func (r *Reminder) RunOnce(ctx context.Context, nowUTC time.Time) (int, error) {
	// 机构使用单一固定时区, 这里做唯一一次时区归一化
	loc := time.FixedZone("org", r.cfg.Reminder.UTCOffsetMinutes*60)
	now := nowUTC.In(loc)

	workers, err := r.directory.GetActiveWorkersWithSchedule()
	if err != nil {
		return 0, fmt.Errorf("无法获取在班员工列表: %w", err)
	}

	sent := 0
	deferred := 0
	for i, worker := range workers {
		if ctx.Err() != nil {
			// 超出本轮时限, 剩余员工留到下一轮, 已处理员工的去重状态不受影响
			deferred = len(workers) - i
			break
		}

		n, err := r.evaluateWorker(ctx, worker, now)
		if err != nil {
			// 该员工本轮整体放弃, 不留下半截通知状态, 下一轮自然重试
			slog.Error("员工评估失败", "workerID", worker.ID, "error", err)
			continue
		}
		sent += n
	}
	if deferred > 0 {
		slog.Warn("本轮评估超时, 剩余员工顺延到下一轮", "deferred", deferred)
	}

	taskSent, err := r.evaluateTasks(ctx, now)
	if err != nil {
		slog.Error("任务提醒评估失败", "error", err)
	}
	sent += taskSent

	return sent, nil
}

func (r *Reminder) evaluateWorker(ctx context.Context, worker *domain.Worker, now time.Time) (int, error) {
	shift, err := ParseShiftTime(worker.ShiftTime)
	if err != nil {
		// 解析失败视同没有排班: 跳过该员工且不产生任何提醒,
		// 宁可漏报也不误报
		slog.Warn("班次时间无法解析, 跳过该员工", "workerID", worker.ID, "shiftTime", worker.ShiftTime)
		return 0, nil
	}

	nowClock := now.Hour()*60 + now.Minute()
	nowMinute := ProjectOntoTimeline(nowClock, shift.StartMinute, shift.IsNightShift)

	// 跨夜班次过了 0 点之后, 当前班次实际开始于前一个日历日
	shiftDate := now
	if shift.IsNightShift && nowClock < shift.StartMinute {
		shiftDate = now.AddDate(0, 0, -1)
	}
	instanceDate := shiftDate.Format("2006-01-02")
	shiftStartAt := time.Date(shiftDate.Year(), shiftDate.Month(), shiftDate.Day(),
		shift.StartMinute/60, shift.StartMinute%60, 0, 0, now.Location())

	taken, err := r.ledger.GetTakenBreakKinds(worker.ID, shiftStartAt)
	if err != nil {
		return 0, fmt.Errorf("无法获取已休记录: %w", err)
	}

	sent := 0
	for _, window := range ComputeWindows(shift) {
		kind := Classify(window, nowMinute, taken[window.Kind])
		if kind == domain.KindNone {
			continue
		}

		ok, err := r.emit(ctx, buildBreakNotification(worker.ID, window, kind, nowMinute, instanceDate, now))
		if err != nil {
			return sent, err
		}
		if ok {
			sent++
		}
	}

	return sent, nil
}

func (r *Reminder) evaluateTasks(ctx context.Context, now time.Time) (int, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	tasks, err := r.tasks.GetOpenTasksDueBefore(now.Add(taskDueSoonLead))
	if err != nil {
		return 0, fmt.Errorf("无法获取待办任务: %w", err)
	}

	sent := 0
	for _, task := range tasks {
		kind := ClassifyTask(task, now)
		if kind == domain.KindNone {
			continue
		}

		ok, err := r.emit(ctx, buildTaskNotification(task, kind, now))
		if err != nil {
			slog.Error("任务提醒持久化失败", "taskID", task.ID, "error", err)
			continue
		}
		if ok {
			sent++
		}
	}

	return sent, nil
}

// emit 先经 redis 冷却键预滤, 再由数据库条件插入做最终裁决,
// 插入成功后回写冷却键并发布到通知队列。
// 去重正确性只依赖条件插入这一条原子语句, redis 和队列的任何故障
// 都只影响性能或下游消费, 不会产生重复通知。
func (r *Reminder) emit(ctx context.Context, n *domain.Notification) (bool, error) {
	cooldown := CooldownFor(n.Type)
	cooldownKey := fmt.Sprintf("reminder_cooldown_%d_%s_%s", n.WorkerID, n.Category, n.DedupKey)

	if r.redisClient != nil {
		exists, err := r.redisClient.Exists(ctx, cooldownKey).Result()
		if err == nil && exists > 0 {
			return false, nil
		}
		// redis 异常时直接落到数据库判断
	}

	inserted, err := r.sink.InsertNotificationIfAbsent(n, n.CreatedAt.Add(-cooldown))
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	if r.redisClient != nil {
		if err := r.redisClient.Set(ctx, cooldownKey, 1, cooldown).Err(); err != nil {
			slog.Warn("冷却键写入失败", "key", cooldownKey, "error", err)
		}
	}

	if r.notifyChannel != nil {
		body, err := json.Marshal(n)
		if err != nil {
			return true, nil
		}

		pubCtx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.RabbitMQ.PublishTimeout)*time.Second)
		if err := r.notifyChannel.PublishWithContext(
			pubCtx,
			"",
			NotificationQueueName,
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        body,
			},
		); err != nil {
			slog.Error("通知发布到队列失败", "notificationID", n.ID, "error", err)
		}
		cancel()
	}

	return true, nil
}
