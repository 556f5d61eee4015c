package repository

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
)

// MasterTemplateRepository 主模板数据访问接口
type MasterTemplateRepository interface {
	Create(ctx context.Context, tpl *model.MasterTemplate) error
	// GetByDayAndSlot 按 (dayOfWeek, timeSlot) 复合键查找
	GetByDayAndSlot(ctx context.Context, dayOfWeek, timeSlot string) (*model.MasterTemplate, error)
	// List 按语义工作日顺序（周一在前）再按时间段排序
	List(ctx context.Context) ([]model.MasterTemplate, error)
	// UpdateInternIDs 整体替换某模板的实习生列表（替换而非合并）
	UpdateInternIDs(ctx context.Context, templateID string, internIDs []string) (*model.MasterTemplate, error)
}

type masterTemplateRepo struct {
	db *gorm.DB
}

// NewMasterTemplateRepo 创建 MasterTemplateRepository 实例
func NewMasterTemplateRepo(db *gorm.DB) MasterTemplateRepository {
	return &masterTemplateRepo{db: db}
}

// 工作日按语义顺序排序，而非字母序
const dayOrderExpr = "CASE day_of_week " +
	"WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3 " +
	"WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 ELSE 6 END"

func (r *masterTemplateRepo) Create(ctx context.Context, tpl *model.MasterTemplate) error {
	if tpl.InternIDs == nil {
		tpl.InternIDs = pq.StringArray{}
	}
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *masterTemplateRepo) GetByDayAndSlot(ctx context.Context, dayOfWeek, timeSlot string) (*model.MasterTemplate, error) {
	var tpl model.MasterTemplate
	err := r.db.WithContext(ctx).
		Where("day_of_week = ? AND time_slot = ?", dayOfWeek, timeSlot).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *masterTemplateRepo) List(ctx context.Context) ([]model.MasterTemplate, error) {
	var tpls []model.MasterTemplate
	err := r.db.WithContext(ctx).
		Order(dayOrderExpr + ", time_slot ASC").
		Find(&tpls).Error
	return tpls, err
}

func (r *masterTemplateRepo) UpdateInternIDs(ctx context.Context, templateID string, internIDs []string) (*model.MasterTemplate, error) {
	if internIDs == nil {
		internIDs = []string{}
	}
	err := r.db.WithContext(ctx).
		Model(&model.MasterTemplate{}).
		Where("template_id = ?", templateID).
		Updates(map[string]interface{}{
			"intern_ids": pq.StringArray(internIDs),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
	if err != nil {
		return nil, err
	}

	var tpl model.MasterTemplate
	if err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}
