package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/service"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/pkg/response"
)

// TemplateHandler 主模板模块 HTTP 处理器
type TemplateHandler struct {
	templateSvc service.TemplateService
}

// NewTemplateHandler 创建 TemplateHandler
func NewTemplateHandler(templateSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// ListTemplates 获取主模板列表（工作日语义序，再按时间段）
// GET /api/v1/master-templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	tpls, err := h.templateSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": tpls})
}

// UpsertTemplate 按 (dayOfWeek, timeSlot) 复合键创建或整体替换主模板
// POST /api/v1/master-templates
// 创建返回 201，替换返回 200
func (h *TemplateHandler) UpsertTemplate(c *gin.Context) {
	var req dto.UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, bindErrorMessage(err))
		return
	}

	tpl, created, err := h.templateSvc.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	if created {
		response.CreatedMsg(c, "模板创建成功", tpl)
		return
	}
	response.OKMsg(c, "模板更新成功", tpl)
}

// handleTemplateError 统一处理主模板模块业务错误
func (h *TemplateHandler) handleTemplateError(c *gin.Context, err error) {
	if handleValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTemplateConflict):
		response.Conflict(c, 21001, "该工作日与时间段的主模板已存在")
	default:
		response.InternalError(c)
	}
}
