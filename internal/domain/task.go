package domain

import "time"

type Task struct {
	ID          int64      `json:"id"`
	WorkerID    int64      `json:"workerID"`
	Title       string     `json:"title"`
	DueAt       time.Time  `json:"dueAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	Version     int32      `json:"-"`
}

func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}
