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
	"notely/types"
)

type Auth struct {
	AuthService *service.AuthService
	Rate        *cache.RateStorage
	Config      *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "auth")
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)

	g := r.Group("/v1/auth")
	g.POST("/register", limit, context.Wrap(h.Register))
	g.POST("/login", limit, context.Wrap(h.Login))
	g.POST("/refresh", limit, context.Wrap(h.Refresh))
	g.POST("/oauth/yandex", authorize, limit, context.Wrap(h.BindExternal))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) BindExternal(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	var req types.OAuthBindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.AuthService.BindExternal(c.Request.Context(), userID, req.AccessToken)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
