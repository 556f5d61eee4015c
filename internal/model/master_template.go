package model

import "github.com/lib/pq"

// MasterTemplate 周排班主模板表 — 对应 master_templates
//
// 主模板与具体日期无关：同一 (day_of_week, time_slot) 的分配在学期每一周
// 重复生效。(day_of_week, time_slot) 为自然复合键，唯一索引保证一对一。
// InternIDs 为有序的实习生 ID 列表，插入顺序即分配顺序，存储层不去重。
type MasterTemplate struct {
	TemplateID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"id"`
	DayOfWeek  string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_templates_day_slot" json:"dayOfWeek"` // Monday..Friday
	TimeSlot   string         `gorm:"type:varchar(11);not null;uniqueIndex:idx_templates_day_slot" json:"timeSlot"`  // "HH:MM-HH:MM"
	InternIDs  pq.StringArray `gorm:"type:text[];not null;default:'{}'"                       json:"internIds"`
	BaseModel
}

// TableName 指定表名
func (MasterTemplate) TableName() string { return "master_templates" }
