package model

// Intern 实习生表 — 对应 interns
type Intern struct {
	InternID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Section  string  `gorm:"type:varchar(10);not null"                      json:"section"`
	Batch    string  `gorm:"type:varchar(20);not null"                      json:"batch"`
	Color    string  `gorm:"type:varchar(7);not null"                       json:"color"` // #RRGGBB
	Avatar   *string `gorm:"type:text"                                      json:"avatar,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Intern) TableName() string { return "interns" }
