package dto

// ── 前端渲染常量 DTO ──

// TimeSlotInfo 时间段及其显示格式
type TimeSlotInfo struct {
	Value   string `json:"value"`   // "09:00-09:30"
	Display string `json:"display"` // "9:00 AM - 9:30 AM"
}

// MetaResponse 前端表单与网格表头所需的全部常量
type MetaResponse struct {
	DaysOfWeek []string       `json:"daysOfWeek"`
	TimeSlots  []TimeSlotInfo `json:"timeSlots"`
	Sections   []string       `json:"sections"`
	Batches    []string       `json:"batches"`
	Palette    []string       `json:"palette"`
	StartDate  string         `json:"startDate"`
	TotalWeeks int            `json:"totalWeeks"`
}
