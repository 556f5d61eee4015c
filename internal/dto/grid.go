package dto

// ── 周网格视图模型 DTO ──
//
// 网格按请求即时拼装：主模板 × 当前实习生集合，丢弃无法解析的 ID。
// 单元格选中状态属于前端会话内状态，不在服务端建模。

// GridCell 网格单元格：某 (工作日, 时间段) 的实习生分配
type GridCell struct {
	TimeSlot string        `json:"timeSlot"`
	Display  string        `json:"display"` // 12小时制显示，如 "9:00 AM - 9:30 AM"
	Interns  []InternBrief `json:"interns"`
}

// GridDay 网格中的单个工作日列
type GridDay struct {
	Day   string     `json:"day"`
	Date  string     `json:"date"`  // "2025-08-26"
	Label string     `json:"label"` // "Aug 26"
	Cells []GridCell `json:"cells"`
}

// WeekGridResponse 某一周的完整网格
// Degraded 表示存储不可达、网格由内置示例数据拼装（只读降级模式）。
type WeekGridResponse struct {
	WeekIndex int       `json:"weekIndex"`
	WeekEnded bool      `json:"weekEnded"`
	Degraded  bool      `json:"degraded"`
	Days      []GridDay `json:"days"`
}

// WeekDayInfo 某周单个工作日的日期信息
type WeekDayInfo struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

// WeekInfo 学期内单周的导航信息
type WeekInfo struct {
	Index int           `json:"index"`
	Ended bool          `json:"ended"`
	Days  []WeekDayInfo `json:"days"`
}

// CalendarWeeksResponse 全学期周列表（供周导航使用）
type CalendarWeeksResponse struct {
	CurrentWeek int        `json:"currentWeek"`
	TotalWeeks  int        `json:"totalWeeks"`
	Weeks       []WeekInfo `json:"weeks"`
}
