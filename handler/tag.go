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

type Tag struct {
	TagService *service.TagService
	Rate       *cache.RateStorage
	Config     *config.Config
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")

	g := r.Group("/v1/tags", authorize, limit)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Tag) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	list, err := h.TagService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Tag) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	tag, err := h.TagService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		return err
	}
	response.Success(c, tag)
	return nil
}

func (h *Tag) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	tag, err := h.TagService.Update(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		return err
	}
	response.Success(c, tag)
	return nil
}

func (h *Tag) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.TagService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
