package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/config"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/api/handler"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/api/middleware"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/api/validation"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	validation.Register()

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 实习生模块
		interns := v1.Group("/interns")
		{
			interns.GET("", h.Intern.ListInterns)
			interns.POST("", h.Intern.CreateIntern)
			interns.GET("/next-color", h.Intern.NextColor)
			interns.DELETE("/:id", h.Intern.DeleteIntern)
		}

		// 主模板模块
		templates := v1.Group("/master-templates")
		{
			templates.GET("", h.Template.ListTemplates)
			templates.POST("", h.Template.UpsertTemplate)
		}

		// 周网格与日历模块
		grid := v1.Group("/grid")
		{
			grid.GET("/current", h.Grid.GetCurrentWeekGrid)
			grid.GET("/:week", h.Grid.GetWeekGrid)
		}
		v1.GET("/calendar/weeks", h.Grid.ListWeeks)
		v1.GET("/meta", h.Grid.GetMeta)
	}

	return r
}
