package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"notely/config"
	"notely/dao/cache"
	"notely/middleware"
	"notely/pkg/context"
	"notely/pkg/response"
	"notely/service"
)

type Dashboard struct {
	StatsService *service.StatsService
	Rate         *cache.RateStorage
	Config       *config.Config
}

func (h *Dashboard) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")

	g := r.Group("/v1/dashboard", authorize, limit)
	g.GET("", context.Wrap(h.Overview))
}

func (h *Dashboard) Overview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	resp, err := h.StatsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
