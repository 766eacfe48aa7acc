package reminder

import (
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

const (
	// 窗口开始前多少分钟内发出 "即将可休" 提醒
	availableSoonLeadIn = 15
	// 进入窗口多少分钟后转为 "尚未休息" 提醒
	missedAfter = 30
	// 窗口结束前多少分钟内发出 "即将结束" 提醒
	endingSoonSpan = 15
)

// 任务提醒的提前量
const taskDueSoonLead = 24 * time.Hour

// Classify 对单个窗口在时间线分钟 nowMinute 处做出判定,
// 每次调用恰好返回一种提醒或 KindNone, 绝不会同时返回多种。
// 纯函数, 相同入参必然得到相同结果。
//
// alreadyConsumed 表示休息已休(或任务已完成), 此时无论时间如何都返回 KindNone。
// "尚未休息" 提醒不依赖整分钟取模, 在 [start+30, end-15) 内持续成为候选,
// 由去重冷却(30 分钟)控制实际节奏, 调度抖动或漏评一轮都不会改变行为。
func Classify(window domain.Window, nowMinute int, alreadyConsumed bool) domain.NotificationKind {
	if alreadyConsumed {
		return domain.KindNone
	}

	if nowMinute < window.StartMinute {
		if MinutesUntil(window.StartMinute, nowMinute) <= availableSoonLeadIn {
			return domain.KindAvailableSoon
		}
		return domain.KindNone
	}

	if nowMinute >= window.EndMinute {
		return domain.KindNone
	}

	// 以下 nowMinute 落在 [start, end) 内
	if nowMinute >= window.EndMinute-endingSoonSpan {
		return domain.KindEndingSoon
	}
	if nowMinute-window.StartMinute >= missedAfter {
		return domain.KindMissed
	}
	return domain.KindAvailableNow
}

// ClassifyTask 对任务做出判定。任务窗口锚定在绝对截止时间而非班次偏移:
// [截止前 24 小时, 截止) 为即将到期, [截止, +inf) 为已逾期。
// 已完成的任务不再提醒。
func ClassifyTask(task *domain.Task, now time.Time) domain.NotificationKind {
	if task.IsCompleted() {
		return domain.KindNone
	}
	if !now.Before(task.DueAt) {
		return domain.KindTaskOverdue
	}
	if !now.Before(task.DueAt.Add(-taskDueSoonLead)) {
		return domain.KindTaskDueSoon
	}
	return domain.KindNone
}
