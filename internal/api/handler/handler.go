package handler

import "github.com/thenotsotalentedcoder/csit-intern-calendar/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Intern   *InternHandler
	Template *TemplateHandler
	Grid     *GridHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Intern:   NewInternHandler(svc.Intern),
		Template: NewTemplateHandler(svc.Template),
		Grid:     NewGridHandler(svc.Grid),
	}
}
