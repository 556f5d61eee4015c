package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/config"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/repository"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/sampledata"
)

// ── GridService 接口 ──────────────────────────────────────
//
// 设计说明：
//   - 网格不做任何缓存：每次请求从存储读取实习生与主模板，
//     现场按 (工作日 × 时间段) 拼装视图模型。
//   - 主模板与周无关：同一份模板应用到学期每一周，周序号只影响
//     日期标签与 week_ended 标记。
//   - 存储读取失败时进入降级模式：改用内置示例数据拼装并置
//     degraded=true，应用保持只读可演示。
// ────────────────────────────────────────────────────────────

// GridService 周网格视图业务接口
type GridService interface {
	// WeekGrid 拼装第 weekIndex 周的完整网格
	WeekGrid(ctx context.Context, weekIndex int) (*dto.WeekGridResponse, error)
	// CurrentWeekIndex 今天所在的周序号（已钳制到学期范围）
	CurrentWeekIndex() int
	// Weeks 全学期周列表（周导航）
	Weeks() *dto.CalendarWeeksResponse
	// Meta 前端渲染所需的常量集合
	Meta() *dto.MetaResponse
}

type gridService struct {
	repo        *repository.Repository
	cal         *calendar.Calendar
	calendarCfg *config.CalendarConfig
	logger      *zap.Logger
}

// NewGridService 创建 GridService 实例
func NewGridService(repo *repository.Repository, cal *calendar.Calendar, calendarCfg *config.CalendarConfig, logger *zap.Logger) GridService {
	return &gridService{repo: repo, cal: cal, calendarCfg: calendarCfg, logger: logger}
}

// ────────────────────── WeekGrid ──────────────────────

func (s *gridService) WeekGrid(ctx context.Context, weekIndex int) (*dto.WeekGridResponse, error) {
	if weekIndex < 0 || weekIndex > s.cal.TotalWeeks-1 {
		return nil, newValidationError(
			fmt.Sprintf("周序号必须在 0 到 %d 之间", s.cal.TotalWeeks-1))
	}

	interns, templates, degraded := s.loadData(ctx)

	// 实习生索引：模板中的 ID 解析不到时静默丢弃
	internByID := make(map[string]*model.Intern, len(interns))
	for i := range interns {
		internByID[interns[i].InternID] = &interns[i]
	}

	// 模板索引：复合键 → 模板
	tplByKey := make(map[string]*model.MasterTemplate, len(templates))
	for i := range templates {
		key := templates[i].DayOfWeek + "|" + templates[i].TimeSlot
		tplByKey[key] = &templates[i]
	}

	slots := calendar.TimeSlots()
	days := make([]dto.GridDay, 0, len(calendar.Days))
	for _, wd := range s.cal.WeekDates(weekIndex) {
		cells := make([]dto.GridCell, 0, len(slots))
		for _, slot := range slots {
			cells = append(cells, dto.GridCell{
				TimeSlot: slot,
				Display:  calendar.FormatTimeSlot(slot),
				Interns:  resolveInterns(tplByKey[string(wd.Day)+"|"+slot], internByID),
			})
		}
		days = append(days, dto.GridDay{
			Day:   string(wd.Day),
			Date:  wd.Date.Format("2006-01-02"),
			Label: wd.Label,
			Cells: cells,
		})
	}

	return &dto.WeekGridResponse{
		WeekIndex: weekIndex,
		WeekEnded: s.cal.WeekEnded(weekIndex),
		Degraded:  degraded,
		Days:      days,
	}, nil
}

// loadData 读取实习生与主模板；任一读取失败即整体降级为示例数据
func (s *gridService) loadData(ctx context.Context) ([]model.Intern, []model.MasterTemplate, bool) {
	interns, err := s.repo.Intern.List(ctx)
	if err != nil {
		s.logger.Warn("读取实习生失败，网格进入降级模式", zap.Error(err))
		return sampledata.Interns(), sampledata.Templates(), true
	}

	templates, err := s.repo.Template.List(ctx)
	if err != nil {
		s.logger.Warn("读取主模板失败，网格进入降级模式", zap.Error(err))
		return sampledata.Interns(), sampledata.Templates(), true
	}

	return interns, templates, false
}

// resolveInterns 将模板的 ID 列表解析为实习生简要信息，保持分配顺序
func resolveInterns(tpl *model.MasterTemplate, internByID map[string]*model.Intern) []dto.InternBrief {
	if tpl == nil {
		return []dto.InternBrief{}
	}
	result := make([]dto.InternBrief, 0, len(tpl.InternIDs))
	for _, id := range tpl.InternIDs {
		intern, ok := internByID[id]
		if !ok {
			// 已删除或未知的 ID 不展示
			continue
		}
		result = append(result, dto.InternBrief{
			ID:      intern.InternID,
			Name:    intern.Name,
			Section: intern.Section,
			Batch:   intern.Batch,
			Color:   intern.Color,
			Avatar:  intern.Avatar,
		})
	}
	return result
}

// ────────────────────── CurrentWeekIndex ──────────────────────

func (s *gridService) CurrentWeekIndex() int {
	return s.cal.CurrentWeekIndex()
}

// ────────────────────── Weeks ──────────────────────

func (s *gridService) Weeks() *dto.CalendarWeeksResponse {
	weeks := make([]dto.WeekInfo, 0, s.cal.TotalWeeks)
	for i := 0; i < s.cal.TotalWeeks; i++ {
		days := make([]dto.WeekDayInfo, 0, len(calendar.Days))
		for _, wd := range s.cal.WeekDates(i) {
			days = append(days, dto.WeekDayInfo{
				Day:   string(wd.Day),
				Date:  wd.Date.Format("2006-01-02"),
				Label: wd.Label,
			})
		}
		weeks = append(weeks, dto.WeekInfo{
			Index: i,
			Ended: s.cal.WeekEnded(i),
			Days:  days,
		})
	}

	return &dto.CalendarWeeksResponse{
		CurrentWeek: s.cal.CurrentWeekIndex(),
		TotalWeeks:  s.cal.TotalWeeks,
		Weeks:       weeks,
	}
}

// ────────────────────── Meta ──────────────────────

func (s *gridService) Meta() *dto.MetaResponse {
	slots := calendar.TimeSlots()
	slotInfos := make([]dto.TimeSlotInfo, 0, len(slots))
	for _, slot := range slots {
		slotInfos = append(slotInfos, dto.TimeSlotInfo{
			Value:   slot,
			Display: calendar.FormatTimeSlot(slot),
		})
	}

	days := make([]string, 0, len(calendar.Days))
	for _, d := range calendar.Days {
		days = append(days, string(d))
	}

	return &dto.MetaResponse{
		DaysOfWeek: days,
		TimeSlots:  slotInfos,
		Sections:   s.calendarCfg.Sections,
		Batches:    s.calendarCfg.Batches,
		Palette:    calendar.DefaultPalette,
		StartDate:  s.cal.Start.Format("2006-01-02"),
		TotalWeeks: s.cal.TotalWeeks,
	}
}
