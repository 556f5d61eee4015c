package service

import (
	"go.uber.org/zap"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/config"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Intern   InternService
	Template TemplateService
	Grid     GridService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cal *calendar.Calendar,
	logger *zap.Logger,
) *Service {
	return &Service{
		Intern:   NewInternService(repo, logger),
		Template: NewTemplateService(repo, logger),
		Grid:     NewGridService(repo, cal, &cfg.Calendar, logger),
	}
}
