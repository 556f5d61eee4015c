package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/repository"
)

// ── 实习生模块业务错误 ──

var (
	ErrInternNotFound   = errors.New("实习生不存在")
	ErrInternNameExists = errors.New("同名实习生已存在")
)

// 颜色必须为 #RRGGBB 格式（6 位十六进制）
var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// InternService 实习生业务接口
type InternService interface {
	// List 获取全部实习生（按姓名升序）
	List(ctx context.Context) ([]dto.InternResponse, error)
	// Create 创建实习生：校验 → 查重（姓名大小写不敏感）→ 去除首尾空白后入库
	Create(ctx context.Context, req *dto.CreateInternRequest) (*dto.InternResponse, error)
	// Delete 删除实习生，并级联清理所有主模板中对其 ID 的引用
	Delete(ctx context.Context, id string) error
	// NextColor 根据当前已占用颜色给出建议颜色
	NextColor(ctx context.Context) (string, error)
}

type internService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInternService 创建 InternService 实例
func NewInternService(repo *repository.Repository, logger *zap.Logger) InternService {
	return &internService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *internService) List(ctx context.Context) ([]dto.InternResponse, error) {
	interns, err := s.repo.Intern.List(ctx)
	if err != nil {
		s.logger.Error("列出实习生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InternResponse, 0, len(interns))
	for i := range interns {
		result = append(result, *toInternResponse(&interns[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *internService) Create(ctx context.Context, req *dto.CreateInternRequest) (*dto.InternResponse, error) {
	name := strings.TrimSpace(req.Name)
	section := strings.TrimSpace(req.Section)
	batch := strings.TrimSpace(req.Batch)

	// 1. 字段校验（写入前同步检出）
	var msgs []string
	if name == "" {
		msgs = append(msgs, "姓名不能为空")
	}
	if utf8.RuneCountInString(name) > 100 {
		msgs = append(msgs, "姓名不能超过100个字符")
	}
	if section == "" {
		msgs = append(msgs, "班组不能为空")
	}
	if batch == "" {
		msgs = append(msgs, "年级不能为空")
	}
	if !colorPattern.MatchString(req.Color) {
		msgs = append(msgs, "颜色必须是 #RRGGBB 格式的十六进制值")
	}
	if len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}

	// 2. 姓名查重（大小写不敏感的精确匹配）
	existing, err := s.repo.Intern.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询实习生失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrInternNameExists
	}

	// 3. 入库
	intern := &model.Intern{
		Name:    name,
		Section: section,
		Batch:   batch,
		Color:   req.Color,
		Avatar:  req.Avatar,
	}
	if err := s.repo.Intern.Create(ctx, intern); err != nil {
		// 查重与插入之间的并发竞争由 LOWER(name) 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInternNameExists
		}
		s.logger.Error("创建实习生失败", zap.Error(err))
		return nil, err
	}

	return toInternResponse(intern), nil
}

// ────────────────────── Delete ──────────────────────

func (s *internService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Intern.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInternNotFound
		}
		s.logger.Error("查询实习生失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 级联清理与删除在仓储层单个事务内完成
	if err := s.repo.Intern.DeleteWithCascade(ctx, id); err != nil {
		s.logger.Error("删除实习生失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── NextColor ──────────────────────

func (s *internService) NextColor(ctx context.Context) (string, error) {
	interns, err := s.repo.Intern.List(ctx)
	if err != nil {
		s.logger.Error("列出实习生失败", zap.Error(err))
		return "", err
	}

	used := make([]string, 0, len(interns))
	for i := range interns {
		used = append(used, interns[i].Color)
	}
	return calendar.NextColor(used, calendar.DefaultPalette), nil
}

// ── 内部辅助方法 ──

func toInternResponse(intern *model.Intern) *dto.InternResponse {
	return &dto.InternResponse{
		ID:        intern.InternID,
		Name:      intern.Name,
		Section:   intern.Section,
		Batch:     intern.Batch,
		Color:     intern.Color,
		Avatar:    intern.Avatar,
		CreatedAt: intern.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: intern.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
