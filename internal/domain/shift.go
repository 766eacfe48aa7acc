package domain

// ShiftDescriptor 是班次时间字符串解析后的结构化描述。
// StartMinute 和 EndMinute 均为当天 0 点起的分钟数, 取值范围 [0, 1440)。
// 跨夜班次满足 EndMinute <= StartMinute。
type ShiftDescriptor struct {
	StartMinute  int  `json:"startMinute"`
	EndMinute    int  `json:"endMinute"`
	IsNightShift bool `json:"isNightShift"`
}
