package reminder

import (
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// 休息窗口相对班次开始的固定偏移(分钟)。
// 所有窗口都以偏移定义而不是固定时刻, 因此 6 点开始的白班和
// 22 点开始的夜班使用完全一样的算术, 只是窗口名称不同。
var breakOffsets = []struct {
	day   domain.WindowKind
	night domain.WindowKind
	start int
	end   int
}{
	{domain.WindowMorning, domain.WindowNightFirst, 120, 180},  // +2h ~ +3h
	{domain.WindowLunch, domain.WindowNightMeal, 240, 420},     // +4h ~ +7h
	{domain.WindowAfternoon, domain.WindowNightSecond, 465, 525}, // +7h45m ~ +8h45m
}

// ComputeWindows 由班次描述推导全部休息窗口。
// 返回的窗口使用时间线上的绝对分钟(班次开始分钟加偏移),
// 窗口结束被钳制到班次结束, 完全落在班次之外的窗口被省略。
func ComputeWindows(shift *domain.ShiftDescriptor) []domain.Window {
	shiftStart := shift.StartMinute
	shiftEnd := shift.EndMinute
	if shift.IsNightShift {
		shiftEnd += minutesPerDay
	}

	windows := make([]domain.Window, 0, len(breakOffsets))
	for _, o := range breakOffsets {
		kind := o.day
		if shift.IsNightShift {
			kind = o.night
		}

		start := shiftStart + o.start
		end := shiftStart + o.end
		if end > shiftEnd {
			end = shiftEnd
		}
		if start >= end {
			// 班次太短, 放不下这个窗口
			continue
		}

		windows = append(windows, domain.Window{
			Kind:        kind,
			StartMinute: start,
			EndMinute:   end,
		})
	}

	return windows
}
