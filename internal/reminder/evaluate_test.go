package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// 白班 "6:00 AM - 3:30 PM" 的上午休息窗口 [480, 540)
var morningWindow = domain.Window{Kind: domain.WindowMorning, StartMinute: 480, EndMinute: 540}

func TestClassifyDayShift(t *testing.T) {
	tests := []struct {
		name      string
		nowMinute int
		want      domain.NotificationKind
	}{
		{"开始前 16 分钟不提醒", 464, domain.KindNone},
		{"开始前 15 分钟进入预告", 465, domain.KindAvailableSoon},
		{"07:50 预告", 470, domain.KindAvailableSoon}, // 6 点开始的班次, 上午休息 8 点开始
		{"开始前 1 分钟仍是预告", 479, domain.KindAvailableSoon},
		{"08:00 进入窗口", 480, domain.KindAvailableNow},
		{"窗口内前半段持续可休", 505, domain.KindAvailableNow},
		{"开始 30 分钟后转为未休提醒", 510, domain.KindMissed},
		{"08:35 仍是未休提醒", 515, domain.KindMissed},
		{"结束前 15 分钟转为收尾提醒", 525, domain.KindEndingSoon},
		{"结束前 1 分钟仍是收尾提醒", 539, domain.KindEndingSoon},
		{"窗口结束后不再提醒", 540, domain.KindNone},
		{"窗口结束很久后不再提醒", 700, domain.KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(morningWindow, tt.nowMinute, false))
		})
	}
}

// 夜班 "10:00 PM - 6:00 AM" 凌晨两点的判定:
// 时钟 120 投影为 1560, 恰好是夜班用餐窗口 [1560, 1740) 的开始
func TestClassifyNightShiftRollover(t *testing.T) {
	shift, err := ParseShiftTime("10:00 PM - 6:00 AM")
	require.NoError(t, err)

	windows := ComputeWindows(shift)
	meal := windows[1]
	require.Equal(t, domain.WindowNightMeal, meal.Kind)

	nowMinute := ProjectOntoTimeline(120, shift.StartMinute, shift.IsNightShift)
	require.Equal(t, 1560, nowMinute)

	assert.Equal(t, domain.KindAvailableNow, Classify(meal, nowMinute, false))

	// 01:50 还在预告期, 第一个窗口此时早已结束
	earlier := ProjectOntoTimeline(110, shift.StartMinute, shift.IsNightShift)
	assert.Equal(t, domain.KindAvailableSoon, Classify(meal, earlier, false))
	assert.Equal(t, domain.KindNone, Classify(windows[0], earlier, false))
}

// 已休的窗口在任何时刻都不再产生任何提醒
func TestClassifyAlreadyConsumed(t *testing.T) {
	for nowMinute := 400; nowMinute <= 600; nowMinute++ {
		assert.Equal(t, domain.KindNone, Classify(morningWindow, nowMinute, true))
	}
}

// 纯函数: 相同入参两次调用结果必然一致, 且每次恰好返回一种提醒
func TestClassifyIdempotent(t *testing.T) {
	for nowMinute := 440; nowMinute <= 560; nowMinute++ {
		first := Classify(morningWindow, nowMinute, false)
		second := Classify(morningWindow, nowMinute, false)
		assert.Equal(t, first, second)
	}
}

func TestClassifyTask(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	completedAt := now.Add(-time.Hour)

	tests := []struct {
		name string
		task *domain.Task
		want domain.NotificationKind
	}{
		{"距离截止还有两天", &domain.Task{DueAt: now.Add(48 * time.Hour)}, domain.KindNone},
		{"恰好提前 24 小时", &domain.Task{DueAt: now.Add(24 * time.Hour)}, domain.KindTaskDueSoon},
		{"距离截止两小时", &domain.Task{DueAt: now.Add(2 * time.Hour)}, domain.KindTaskDueSoon},
		{"恰好到期", &domain.Task{DueAt: now}, domain.KindTaskOverdue},
		{"已经逾期", &domain.Task{DueAt: now.Add(-3 * time.Hour)}, domain.KindTaskOverdue},
		{"已完成的逾期任务不提醒", &domain.Task{DueAt: now.Add(-3 * time.Hour), CompletedAt: &completedAt}, domain.KindNone},
		{"已完成的临期任务不提醒", &domain.Task{DueAt: now.Add(2 * time.Hour), CompletedAt: &completedAt}, domain.KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTask(tt.task, now))
		})
	}
}

func TestCooldownFor(t *testing.T) {
	assert.Equal(t, 60*time.Minute, CooldownFor(domain.KindAvailableSoon))
	assert.Equal(t, 60*time.Minute, CooldownFor(domain.KindAvailableNow))
	assert.Equal(t, 60*time.Minute, CooldownFor(domain.KindEndingSoon))
	assert.Equal(t, 30*time.Minute, CooldownFor(domain.KindMissed))
	assert.Equal(t, 12*time.Hour, CooldownFor(domain.KindTaskDueSoon))
	assert.Equal(t, 6*time.Hour, CooldownFor(domain.KindTaskOverdue))
}

func TestDedupKey(t *testing.T) {
	key := DedupKey(domain.WindowLunch, domain.KindAvailableNow, "2025-03-10")
	assert.Equal(t, "lunch:available_now:2025-03-10", key)

	// 不同日期的同一窗口互不影响
	other := DedupKey(domain.WindowLunch, domain.KindAvailableNow, "2025-03-11")
	assert.NotEqual(t, key, other)
}
