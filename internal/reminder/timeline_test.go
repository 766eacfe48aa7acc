package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectOntoTimeline(t *testing.T) {
	tests := []struct {
		name         string
		clockMinute  int
		shiftStart   int
		isNightShift bool
		want         int
	}{
		{"白班不投影", 470, 360, false, 470},
		{"白班凌晨时刻也不投影", 120, 360, false, 120},
		{"夜班里早于开始时刻的属于次日", 120, 1320, true, 1560},
		{"夜班里 0 点整属于次日", 0, 1320, true, 1440},
		{"夜班里晚于开始时刻的保持不变", 1380, 1320, true, 1380},
		{"夜班里等于开始时刻的保持不变", 1320, 1320, true, 1320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectOntoTimeline(tt.clockMinute, tt.shiftStart, tt.isNightShift))
		})
	}
}

// 对已投影过的值再次投影不能重复加 1440
func TestProjectOntoTimelineIdempotent(t *testing.T) {
	once := ProjectOntoTimeline(120, 1320, true)
	assert.Equal(t, 1560, once)

	twice := ProjectOntoTimeline(once, 1320, true)
	assert.Equal(t, once, twice)
}

func TestMinutesUntil(t *testing.T) {
	assert.Equal(t, 10, MinutesUntil(480, 470))
	assert.Equal(t, 0, MinutesUntil(480, 480))
	assert.Equal(t, -30, MinutesUntil(480, 510))
	// 跨夜投影之后的比较仍然是普通减法
	assert.Equal(t, 120, MinutesUntil(1560, 1440))
}
