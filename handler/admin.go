package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"notely/config"
	"notely/dao"
	"notely/middleware"
	"notely/pkg/context"
	"notely/pkg/response"
	"notely/service"
)

type Admin struct {
	StatsService *service.StatsService
	Users        *dao.Users
	Config       *config.Config
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)

	g := r.Group("/v1/admin", authorize, middleware.RequireAdmin(h.Users))
	g.GET("/stats", context.Wrap(h.Stats))
}

func (h *Admin) Stats(c *gin.Context) error {
	resp, err := h.StatsService.AdminStats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
