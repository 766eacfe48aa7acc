package reminder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

var ErrInvalidShiftTime = errors.New("无效的班次时间")

const shiftTimeSeparator = " - "

// ParseShiftTime 解析形如 "6:00 AM - 3:30 PM" 的班次时间字符串。
// 小时为 1~12, 分钟必须补零到两位, AM/PM 不区分大小写。
// 结束时刻不晚于开始时刻即视为跨夜班次。
// 这里不做任何时区换算, "当前时间" 由调用方用机构的固定本地时间给出。
func ParseShiftTime(raw string) (*domain.ShiftDescriptor, error) {
	parts := strings.Split(raw, shiftTimeSeparator)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShiftTime, raw)
	}

	start, err := parseClockTime(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShiftTime, raw)
	}
	end, err := parseClockTime(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShiftTime, raw)
	}

	return &domain.ShiftDescriptor{
		StartMinute:  start,
		EndMinute:    end,
		IsNightShift: end <= start,
	}, nil
}

// parseClockTime 将 "6:00 AM" 这样的 12 小时制时刻转换为当天 0 点起的分钟数,
// 12:00 AM 转换为 0, 12:00 PM 转换为 720
func parseClockTime(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, errors.New("时刻必须由时间和 AM/PM 两部分组成")
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, errors.New("时间必须形如 h:mm")
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, err
	}
	if hour < 1 || hour > 12 {
		return 0, errors.New("小时必须在 1~12 之间")
	}

	if len(hm[1]) != 2 {
		return 0, errors.New("分钟必须补零到两位")
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, err
	}
	if minute < 0 || minute > 59 {
		return 0, errors.New("分钟必须在 0~59 之间")
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, errors.New("必须以 AM 或 PM 结尾")
	}

	return hour*60 + minute, nil
}
