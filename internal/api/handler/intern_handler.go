package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/service"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/pkg/response"
)

// InternHandler 实习生模块 HTTP 处理器
type InternHandler struct {
	internSvc service.InternService
}

// NewInternHandler 创建 InternHandler
func NewInternHandler(internSvc service.InternService) *InternHandler {
	return &InternHandler{internSvc: internSvc}
}

// ListInterns 获取实习生列表（按姓名升序）
// GET /api/v1/interns
func (h *InternHandler) ListInterns(c *gin.Context) {
	interns, err := h.internSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": interns})
}

// CreateIntern 创建实习生
// POST /api/v1/interns
func (h *InternHandler) CreateIntern(c *gin.Context) {
	var req dto.CreateInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, bindErrorMessage(err))
		return
	}

	intern, err := h.internSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleInternError(c, err)
		return
	}

	response.CreatedMsg(c, "实习生添加成功", intern)
}

// DeleteIntern 删除实习生（级联清理主模板中的引用）
// DELETE /api/v1/interns/:id
func (h *InternHandler) DeleteIntern(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "实习生ID不能为空")
		return
	}

	if err := h.internSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleInternError(c, err)
		return
	}

	response.OKMsg(c, "实习生删除成功", nil)
}

// NextColor 获取建议的实习生颜色
// GET /api/v1/interns/next-color
func (h *InternHandler) NextColor(c *gin.Context) {
	color, err := h.internSvc.NextColor(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.NextColorResponse{Color: color})
}

// handleInternError 统一处理实习生模块业务错误
func (h *InternHandler) handleInternError(c *gin.Context, err error) {
	if handleValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrInternNotFound):
		response.NotFound(c, 20001, "实习生不存在")
	case errors.Is(err, service.ErrInternNameExists):
		response.BadRequest(c, 20002, "同名实习生已存在")
	default:
		response.InternalError(c)
	}
}
