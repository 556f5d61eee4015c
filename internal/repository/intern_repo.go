package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
)

// InternRepository 实习生数据访问接口
type InternRepository interface {
	Create(ctx context.Context, intern *model.Intern) error
	GetByID(ctx context.Context, id string) (*model.Intern, error)
	// GetByName 按姓名查找（大小写不敏感的精确匹配）
	GetByName(ctx context.Context, name string) (*model.Intern, error)
	List(ctx context.Context) ([]model.Intern, error)
	// DeleteWithCascade 在单个事务内：先从所有引用该实习生的主模板中
	// 移除其 ID，再删除实习生本身。两步对调用方表现为一个原子操作。
	DeleteWithCascade(ctx context.Context, id string) error
}

type internRepo struct {
	db *gorm.DB
}

// NewInternRepo 创建 InternRepository 实例
func NewInternRepo(db *gorm.DB) InternRepository {
	return &internRepo{db: db}
}

func (r *internRepo) Create(ctx context.Context, intern *model.Intern) error {
	return r.db.WithContext(ctx).Create(intern).Error
}

func (r *internRepo) GetByID(ctx context.Context, id string) (*model.Intern, error) {
	var intern model.Intern
	err := r.db.WithContext(ctx).
		Where("intern_id = ?", id).
		First(&intern).Error
	if err != nil {
		return nil, err
	}
	return &intern, nil
}

func (r *internRepo) GetByName(ctx context.Context, name string) (*model.Intern, error) {
	var intern model.Intern
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&intern).Error
	if err != nil {
		return nil, err
	}
	return &intern, nil
}

func (r *internRepo) List(ctx context.Context) ([]model.Intern, error) {
	var interns []model.Intern
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&interns).Error
	return interns, err
}

func (r *internRepo) DeleteWithCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 级联：从所有引用该 ID 的主模板数组中移除
		if err := tx.Model(&model.MasterTemplate{}).
			Where("? = ANY(intern_ids)", id).
			Updates(map[string]interface{}{
				"intern_ids": gorm.Expr("array_remove(intern_ids, ?)", id),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}).Error; err != nil {
			return err
		}
		return tx.Where("intern_id = ?", id).Delete(&model.Intern{}).Error
	})
}
