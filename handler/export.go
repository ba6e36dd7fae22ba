package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notely/config"
	"notely/dao/cache"
	"notely/middleware"
	"notely/pkg/context"
	"notely/pkg/response"
	"notely/service"
)

type Export struct {
	ExportService *service.ExportService
	Rate          *cache.RateStorage
	Config        *config.Config
}

func (h *Export) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")

	g := r.Group("/v1/notes/:id/export", authorize, limit)
	g.GET("/pdf", context.Wrap(h.ExportPDF))

	r.Group("/v1/notes/export", authorize, limit).
		GET("/pdf", context.Wrap(h.ExportAllPDF))
}

func (h *Export) ExportAllPDF(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	fileName, data, err := h.ExportService.ExportAllPDF(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
	return nil
}

func (h *Export) ExportPDF(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	fileName, data, err := h.ExportService.ExportPDF(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
	return nil
}
