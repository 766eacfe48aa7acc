package reminder

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// 各类提醒的冷却时长(策略常量, 不从配置推导)
const (
	cooldownBreakDefault = 60 * time.Minute
	cooldownMissed       = 30 * time.Minute
	cooldownTaskDueSoon  = 12 * time.Hour
	cooldownTaskOverdue  = 6 * time.Hour
)

// CooldownFor 返回某种提醒的去重冷却时长
func CooldownFor(kind domain.NotificationKind) time.Duration {
	switch kind {
	case domain.KindMissed:
		return cooldownMissed
	case domain.KindTaskDueSoon:
		return cooldownTaskDueSoon
	case domain.KindTaskOverdue:
		return cooldownTaskOverdue
	default:
		return cooldownBreakDefault
	}
}

var windowDisplayNames = map[domain.WindowKind]string{
	domain.WindowMorning:     "上午休息",
	domain.WindowLunch:       "午休",
	domain.WindowAfternoon:   "下午休息",
	domain.WindowNightFirst:  "夜班第一次休息",
	domain.WindowNightMeal:   "夜班用餐休息",
	domain.WindowNightSecond: "夜班第二次休息",
}

// DedupKey 构造结构化去重键。
// 去重不使用标题文本, 标题只负责展示, 同一窗口在不同日期的班次实例互不影响。
func DedupKey(windowKind domain.WindowKind, kind domain.NotificationKind, instanceDate string) string {
	return fmt.Sprintf("%s:%s:%s", windowKind, kind, instanceDate)
}

func buildBreakNotification(workerID int64, window domain.Window, kind domain.NotificationKind, nowMinute int, instanceDate string, now time.Time) *domain.Notification {
	name := windowDisplayNames[window.Kind]

	var title, message string
	switch kind {
	case domain.KindAvailableSoon:
		title = name + "即将开始"
		message = fmt.Sprintf("您的%s将在 %d 分钟后开始", name, MinutesUntil(window.StartMinute, nowMinute))
	case domain.KindAvailableNow:
		title = name + "时间到了"
		message = fmt.Sprintf("您的%s时间已经开始, 请及时休息", name)
	case domain.KindMissed:
		title = name + "还未休息"
		message = fmt.Sprintf("您的%s已经开始 %d 分钟, 请尽快休息", name, nowMinute-window.StartMinute)
	case domain.KindEndingSoon:
		title = name + "即将结束"
		message = fmt.Sprintf("您的%s将在 %d 分钟后结束", name, MinutesUntil(window.EndMinute, nowMinute))
	}

	return &domain.Notification{
		WorkerID: workerID,
		Category: domain.CategoryBreak,
		Type:     kind,
		Title:    title,
		Message:  message,
		DedupKey: DedupKey(window.Kind, kind, instanceDate),
		Payload: domain.NotificationPayload{
			WindowKind:       window.Kind,
			NotificationKind: kind,
			InstanceDate:     instanceDate,
		},
		CreatedAt: now,
	}
}

func buildTaskNotification(task *domain.Task, kind domain.NotificationKind, now time.Time) *domain.Notification {
	var windowKind domain.WindowKind
	var title, message string
	dueAt := task.DueAt

	switch kind {
	case domain.KindTaskDueSoon:
		windowKind = domain.WindowTaskDueSoon
		title = "任务即将到期"
		message = fmt.Sprintf("任务「%s」将于 %s 到期", task.Title, dueAt.Format("2006-01-02 15:04"))
	case domain.KindTaskOverdue:
		windowKind = domain.WindowTaskOverdue
		title = "任务已逾期"
		message = fmt.Sprintf("任务「%s」已于 %s 到期, 请尽快处理", task.Title, dueAt.Format("2006-01-02 15:04"))
	}

	return &domain.Notification{
		WorkerID: task.WorkerID,
		Category: domain.CategoryTask,
		Type:     kind,
		Title:    title,
		Message:  message,
		DedupKey: DedupKey(windowKind, kind, fmt.Sprintf("task-%d", task.ID)),
		Payload: domain.NotificationPayload{
			WindowKind:       windowKind,
			NotificationKind: kind,
			InstanceDate:     dueAt.Format("2006-01-02"),
			DueAt:            &dueAt,
		},
		CreatedAt: now,
	}
}
