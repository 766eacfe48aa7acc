package domain

import "time"

// BreakRecord 表示员工已经休过某个窗口的休息,
// 评估器据此抑制该窗口剩余的所有提醒
type BreakRecord struct {
	ID         int64      `json:"id"`
	WorkerID   int64      `json:"workerID"`
	WindowKind WindowKind `json:"windowKind"`
	TakenAt    time.Time  `json:"takenAt"`
}
