package domain

type WindowKind string

const (
	// 白班休息窗口
	WindowMorning   WindowKind = "morning"
	WindowLunch     WindowKind = "lunch"
	WindowAfternoon WindowKind = "afternoon"

	// 夜班休息窗口
	WindowNightFirst  WindowKind = "night_first"
	WindowNightMeal   WindowKind = "night_meal"
	WindowNightSecond WindowKind = "night_second"

	// 任务窗口, 锚定在任务的绝对截止时间而非班次偏移
	WindowTaskDueSoon WindowKind = "task_due_soon"
	WindowTaskOverdue WindowKind = "task_overdue"
)

// Window 的分钟数位于一条 48 小时的时间线上, 该时间线以班次开始当天的 0 点为原点,
// 因此跨夜窗口的 EndMinute 会大于 1440, 下游无需再对跨夜做任何特殊处理。
// 不变式: 0 <= StartMinute < EndMinute。
type Window struct {
	Kind        WindowKind `json:"kind"`
	StartMinute int        `json:"startMinute"`
	EndMinute   int        `json:"endMinute"`
}

// Contains 判断时间线分钟 m 是否落在 [StartMinute, EndMinute) 内
func (w Window) Contains(m int) bool {
	return m >= w.StartMinute && m < w.EndMinute
}
