package domain

import (
	"time"
)

type NotificationCategory string

const (
	CategoryBreak NotificationCategory = "break"
	CategoryTask  NotificationCategory = "task"
)

type NotificationKind string

const (
	// KindNone 表示本次评估无需提醒, 不是错误
	KindNone NotificationKind = ""

	KindAvailableSoon NotificationKind = "available_soon"
	KindAvailableNow  NotificationKind = "available_now"
	KindMissed        NotificationKind = "missed"
	KindEndingSoon    NotificationKind = "ending_soon"

	KindTaskDueSoon NotificationKind = "task_due_soon"
	KindTaskOverdue NotificationKind = "task_overdue"
)

// NotificationPayload 携带供展示层消费的机器可读字段,
// 其中 WindowKind + NotificationKind + InstanceDate 同时构成去重键的组成部分,
// 标题只用于展示, 不参与去重
type NotificationPayload struct {
	WindowKind       WindowKind       `json:"windowKind"`
	NotificationKind NotificationKind `json:"notificationKind"`
	InstanceDate     string           `json:"instanceDate"`
	DueAt            *time.Time       `json:"dueAt,omitempty"`
}

type Notification struct {
	ID        int64                `json:"id"`
	WorkerID  int64                `json:"workerID"`
	Category  NotificationCategory `json:"category"`
	Type      NotificationKind     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	DedupKey  string               `json:"dedupKey"`
	Payload   NotificationPayload  `json:"payload"`
	CreatedAt time.Time            `json:"createdAt"`
}
