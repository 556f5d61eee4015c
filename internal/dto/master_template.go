package dto

// ── 主模板模块 DTO ──

// UpsertTemplateRequest 主模板 Upsert 请求
// 按 (dayOfWeek, timeSlot) 复合键定位：存在则整体替换 internIds，不存在则创建。
type UpsertTemplateRequest struct {
	DayOfWeek string   `json:"dayOfWeek" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	TimeSlot  string   `json:"timeSlot"  binding:"required,timeslot"`
	InternIDs []string `json:"internIds"`
}

// TemplateResponse 主模板信息响应
type TemplateResponse struct {
	ID        string   `json:"id"`
	DayOfWeek string   `json:"dayOfWeek"`
	TimeSlot  string   `json:"timeSlot"`
	InternIDs []string `json:"internIds"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}
