package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

func TestComputeWindowsDayShift(t *testing.T) {
	shift, err := ParseShiftTime("6:00 AM - 3:30 PM")
	require.NoError(t, err)

	windows := ComputeWindows(shift)
	require.Len(t, windows, 3)

	assert.Equal(t, domain.Window{Kind: domain.WindowMorning, StartMinute: 480, EndMinute: 540}, windows[0])
	assert.Equal(t, domain.Window{Kind: domain.WindowLunch, StartMinute: 600, EndMinute: 780}, windows[1])
	assert.Equal(t, domain.Window{Kind: domain.WindowAfternoon, StartMinute: 825, EndMinute: 885}, windows[2])
}

func TestComputeWindowsNightShift(t *testing.T) {
	shift, err := ParseShiftTime("10:00 PM - 6:00 AM")
	require.NoError(t, err)

	windows := ComputeWindows(shift)
	require.Len(t, windows, 3)

	// 班次开始于 1320, 结束投影到 1800, 所有窗口都在同一条时间线上单调递增
	assert.Equal(t, domain.Window{Kind: domain.WindowNightFirst, StartMinute: 1440, EndMinute: 1500}, windows[0])
	assert.Equal(t, domain.Window{Kind: domain.WindowNightMeal, StartMinute: 1560, EndMinute: 1740}, windows[1])
	// 第二次休息被钳制到班次结束
	assert.Equal(t, domain.Window{Kind: domain.WindowNightSecond, StartMinute: 1785, EndMinute: 1800}, windows[2])
}

// 偏移不变性: 时长和昼夜属性相同的两个班次, 推导出的各窗口时长完全一致,
// 只有绝对位置随开始时刻平移
func TestComputeWindowsOffsetInvariance(t *testing.T) {
	pairs := [][2]string{
		{"6:00 AM - 2:00 PM", "9:00 AM - 5:00 PM"},
		{"10:00 PM - 6:00 AM", "11:00 PM - 7:00 AM"},
		{"5:30 AM - 2:30 PM", "8:00 AM - 5:00 PM"},
	}

	for _, pair := range pairs {
		a, err := ParseShiftTime(pair[0])
		require.NoError(t, err)
		b, err := ParseShiftTime(pair[1])
		require.NoError(t, err)

		wa := ComputeWindows(a)
		wb := ComputeWindows(b)
		require.Equal(t, len(wa), len(wb))

		for i := range wa {
			durA := wa[i].EndMinute - wa[i].StartMinute
			durB := wb[i].EndMinute - wb[i].StartMinute
			assert.Equal(t, durA, durB, "窗口 %d 的时长应当一致", i)
		}
	}
}

func TestComputeWindowsShortShift(t *testing.T) {
	// 两个半小时的班次只放得下被钳制的第一个窗口
	shift, err := ParseShiftTime("9:00 AM - 11:30 AM")
	require.NoError(t, err)

	windows := ComputeWindows(shift)
	require.Len(t, windows, 1)
	assert.Equal(t, domain.Window{Kind: domain.WindowMorning, StartMinute: 660, EndMinute: 690}, windows[0])

	// 一小时的班次连第一个窗口都放不下
	shift, err = ParseShiftTime("9:00 AM - 10:00 AM")
	require.NoError(t, err)
	assert.Empty(t, ComputeWindows(shift))
}

// 所有窗口都必须满足 0 <= start < end
func TestComputeWindowsInvariant(t *testing.T) {
	for _, raw := range []string{
		"6:00 AM - 3:30 PM",
		"10:00 PM - 6:00 AM",
		"9:00 AM - 11:30 AM",
		"11:30 PM - 8:30 AM",
	} {
		shift, err := ParseShiftTime(raw)
		require.NoError(t, err)

		for _, window := range ComputeWindows(shift) {
			assert.GreaterOrEqual(t, window.StartMinute, 0)
			assert.Less(t, window.StartMinute, window.EndMinute)
		}
	}
}
