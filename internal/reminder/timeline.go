package reminder

// 一天的分钟数
const minutesPerDay = 1440

// ProjectOntoTimeline 将时钟分钟投影到一条 48 小时的时间线上,
// 时间线以班次开始当天的 0 点为原点。
// 跨夜班次中早于班次开始时刻的时钟分钟属于次日, 需要加上 1440,
// 投影之后整个班次内的所有时刻都单调递增, 下游不再需要任何跨夜特判。
// 入参已经不在 [0, 1440) 内的值原样返回, 因此重复投影是幂等的。
func ProjectOntoTimeline(clockMinute, shiftStartMinute int, isNightShift bool) int {
	if clockMinute < 0 || clockMinute >= minutesPerDay {
		return clockMinute
	}
	if isNightShift && clockMinute < shiftStartMinute {
		return clockMinute + minutesPerDay
	}
	return clockMinute
}

// MinutesUntil 返回时间线上 target 相对 now 的有符号分钟差,
// target 在 now 之前时为负数
func MinutesUntil(targetMinute, nowMinute int) int {
	return targetMinute - nowMinute
}
