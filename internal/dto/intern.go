package dto

// ── 实习生模块 DTO ──
//
// JSON 字段沿用前端既有的 camelCase 契约（dayOfWeek / internIds 等）。

// CreateInternRequest 创建实习生请求
type CreateInternRequest struct {
	Name    string  `json:"name"    binding:"required,max=100"`
	Section string  `json:"section" binding:"required,max=10"`
	Batch   string  `json:"batch"   binding:"required,max=20"`
	Color   string  `json:"color"   binding:"required"`
	Avatar  *string `json:"avatar"  binding:"omitempty,url"`
}

// InternResponse 实习生信息响应
type InternResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Section   string  `json:"section"`
	Batch     string  `json:"batch"`
	Color     string  `json:"color"`
	Avatar    *string `json:"avatar,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// InternBrief 实习生简要信息（嵌入网格单元格）
type InternBrief struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Section string  `json:"section"`
	Batch   string  `json:"batch"`
	Color   string  `json:"color"`
	Avatar  *string `json:"avatar,omitempty"`
}

// NextColorResponse 建议颜色响应
type NextColorResponse struct {
	Color string `json:"color"`
}
