package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/repository"
)

// ── 主模板模块业务错误 ──

var (
	// ErrTemplateConflict 复合键并发冲突：查找与插入之间另一请求已创建同键模板
	ErrTemplateConflict = errors.New("该工作日与时间段的主模板已存在")
)

// TemplateService 主模板业务接口
type TemplateService interface {
	// List 获取全部主模板（工作日语义序，再按时间段）
	List(ctx context.Context) ([]dto.TemplateResponse, error)
	// Upsert 按 (dayOfWeek, timeSlot) 复合键写入：
	// 已存在则整体替换 internIds 并返回 created=false；
	// 不存在则创建并返回 created=true。created 决定响应用 201 还是 200。
	Upsert(ctx context.Context, req *dto.UpsertTemplateRequest) (*dto.TemplateResponse, bool, error)
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService 创建 TemplateService 实例
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *templateService) List(ctx context.Context) ([]dto.TemplateResponse, error) {
	tpls, err := s.repo.Template.List(ctx)
	if err != nil {
		s.logger.Error("列出主模板失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TemplateResponse, 0, len(tpls))
	for i := range tpls {
		result = append(result, *toTemplateResponse(&tpls[i]))
	}
	return result, nil
}

// ────────────────────── Upsert ──────────────────────

func (s *templateService) Upsert(ctx context.Context, req *dto.UpsertTemplateRequest) (*dto.TemplateResponse, bool, error) {
	// 1. 校验工作日与时间段（写入前同步检出）
	var msgs []string
	if !calendar.IsValidDay(req.DayOfWeek) {
		msgs = append(msgs, "工作日必须是 Monday 至 Friday 之一")
	}
	if err := calendar.ValidateTimeSlot(req.TimeSlot); err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return nil, false, newValidationError(msgs...)
	}

	internIDs := req.InternIDs
	if internIDs == nil {
		internIDs = []string{}
	}

	// 2. 按复合键查找既有模板
	existing, err := s.repo.Template.GetByDayAndSlot(ctx, req.DayOfWeek, req.TimeSlot)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询主模板失败",
			zap.String("day", req.DayOfWeek), zap.String("slot", req.TimeSlot), zap.Error(err))
		return nil, false, err
	}

	// 3a. 已存在：整体替换 internIds（替换而非合并）
	if existing != nil {
		updated, err := s.repo.Template.UpdateInternIDs(ctx, existing.TemplateID, internIDs)
		if err != nil {
			s.logger.Error("更新主模板失败", zap.String("id", existing.TemplateID), zap.Error(err))
			return nil, false, err
		}
		return toTemplateResponse(updated), false, nil
	}

	// 3b. 不存在：创建。查找与插入之间的并发创建由复合唯一索引兜底。
	tpl := &model.MasterTemplate{
		DayOfWeek: req.DayOfWeek,
		TimeSlot:  req.TimeSlot,
		InternIDs: internIDs,
	}
	if err := s.repo.Template.Create(ctx, tpl); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrTemplateConflict
		}
		s.logger.Error("创建主模板失败", zap.Error(err))
		return nil, false, err
	}

	return toTemplateResponse(tpl), true, nil
}

// ── 内部辅助方法 ──

func toTemplateResponse(tpl *model.MasterTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:        tpl.TemplateID,
		DayOfWeek: tpl.DayOfWeek,
		TimeSlot:  tpl.TimeSlot,
		InternIDs: []string(tpl.InternIDs),
		CreatedAt: tpl.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: tpl.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
