// Package sampledata 内置示例数据。
// 存储不可达时网格以只读降级模式展示这份数据，应用保持可演示。
package sampledata

import (
	"time"

	"github.com/lib/pq"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
)

// Interns 返回示例实习生（每次调用返回新副本）
func Interns() []model.Intern {
	now := time.Now()
	base := model.BaseModel{CreatedAt: now, UpdatedAt: now}
	return []model.Intern{
		{InternID: "sample-1", Name: "Ali Hassan", Section: "A", Batch: "2023", Color: calendar.DefaultPalette[0], BaseModel: base},
		{InternID: "sample-2", Name: "Sara Khan", Section: "B", Batch: "2024", Color: calendar.DefaultPalette[1], BaseModel: base},
		{InternID: "sample-3", Name: "Ahmed Ali", Section: "A", Batch: "2022", Color: calendar.DefaultPalette[2], BaseModel: base},
		{InternID: "sample-4", Name: "Fatima Sheikh", Section: "AI", Batch: "2023", Color: calendar.DefaultPalette[3], BaseModel: base},
		{InternID: "sample-5", Name: "Hassan Malik", Section: "DS", Batch: "2024", Color: calendar.DefaultPalette[4], BaseModel: base},
	}
}

// Templates 返回示例主模板（每次调用返回新副本）
func Templates() []model.MasterTemplate {
	now := time.Now()
	base := model.BaseModel{CreatedAt: now, UpdatedAt: now}
	return []model.MasterTemplate{
		{TemplateID: "sample-tpl-1", DayOfWeek: "Monday", TimeSlot: "09:00-09:30", InternIDs: pq.StringArray{"sample-1", "sample-2", "sample-3"}, BaseModel: base},
		{TemplateID: "sample-tpl-2", DayOfWeek: "Monday", TimeSlot: "10:00-10:30", InternIDs: pq.StringArray{"sample-4"}, BaseModel: base},
		{TemplateID: "sample-tpl-3", DayOfWeek: "Tuesday", TimeSlot: "09:00-09:30", InternIDs: pq.StringArray{"sample-1", "sample-2", "sample-4", "sample-5"}, BaseModel: base},
		{TemplateID: "sample-tpl-4", DayOfWeek: "Wednesday", TimeSlot: "14:00-14:30", InternIDs: pq.StringArray{"sample-2", "sample-3"}, BaseModel: base},
		{TemplateID: "sample-tpl-5", DayOfWeek: "Thursday", TimeSlot: "13:00-13:30", InternIDs: pq.StringArray{"sample-1", "sample-2", "sample-3", "sample-4", "sample-5"}, BaseModel: base},
		{TemplateID: "sample-tpl-6", DayOfWeek: "Friday", TimeSlot: "11:00-11:30", InternIDs: pq.StringArray{"sample-1", "sample-3", "sample-4"}, BaseModel: base},
	}
}
