package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShiftTime(t *testing.T) {
	tests := []struct {
		raw          string
		startMinute  int
		endMinute    int
		isNightShift bool
	}{
		{"6:00 AM - 3:30 PM", 360, 930, false},
		{"9:00 AM - 5:00 PM", 540, 1020, false},
		{"10:00 PM - 6:00 AM", 1320, 360, true},
		{"11:30 PM - 7:30 AM", 1410, 450, true},
		{"12:00 AM - 12:00 PM", 0, 720, false},
		{"12:00 PM - 12:00 AM", 720, 0, true},
		{"6:00 am - 3:30 pm", 360, 930, false}, // AM/PM 不区分大小写
		{"9:00 PM - 9:00 PM", 1260, 1260, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			shift, err := ParseShiftTime(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.startMinute, shift.StartMinute)
			assert.Equal(t, tt.endMinute, shift.EndMinute)
			assert.Equal(t, tt.isNightShift, shift.IsNightShift)
		})
	}
}

func TestParseShiftTimeInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"缺少分隔符", "6:00 AM 3:30 PM"},
		{"小时为 0", "0:00 AM - 3:00 PM"},
		{"小时超过 12", "13:00 AM - 3:00 PM"},
		{"分钟未补零", "6:5 AM - 3:30 PM"},
		{"分钟超出范围", "6:60 AM - 3:30 PM"},
		{"无效的 AM/PM", "6:00 XM - 3:30 PM"},
		{"缺少 AM/PM", "6:00 - 15:30"},
		{"只有一侧", "6:00 AM - "},
		{"空字符串", ""},
		{"完全无关的内容", "明早九点到下午五点"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShiftTime(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShiftTime)
			// 错误信息必须带上原始字符串, 方便排查
			assert.Contains(t, err.Error(), tt.raw)
		})
	}
}
