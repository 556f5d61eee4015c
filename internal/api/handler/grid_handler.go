package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/service"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/pkg/response"
)

// GridHandler 周网格与日历模块 HTTP 处理器
type GridHandler struct {
	gridSvc service.GridService
}

// NewGridHandler 创建 GridHandler
func NewGridHandler(gridSvc service.GridService) *GridHandler {
	return &GridHandler{gridSvc: gridSvc}
}

// GetWeekGrid 获取指定周的完整网格
// GET /api/v1/grid/:week
func (h *GridHandler) GetWeekGrid(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		response.BadRequest(c, 10001, "周序号必须是整数")
		return
	}

	grid, err := h.gridSvc.WeekGrid(c.Request.Context(), week)
	if err != nil {
		if handleValidationError(c, err) {
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// GetCurrentWeekGrid 获取今天所在周的网格
// GET /api/v1/grid/current
func (h *GridHandler) GetCurrentWeekGrid(c *gin.Context) {
	grid, err := h.gridSvc.WeekGrid(c.Request.Context(), h.gridSvc.CurrentWeekIndex())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// ListWeeks 获取全学期周列表（周导航）
// GET /api/v1/calendar/weeks
func (h *GridHandler) ListWeeks(c *gin.Context) {
	response.OK(c, h.gridSvc.Weeks())
}

// GetMeta 获取前端渲染常量
// GET /api/v1/meta
func (h *GridHandler) GetMeta(c *gin.Context) {
	response.OK(c, h.gridSvc.Meta())
}
