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

type Sharing struct {
	SharingService *service.SharingService
	Rate           *cache.RateStorage
	Config         *config.Config
}

func (h *Sharing) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")

	g := r.Group("/v1/notes/:id/shares", authorize, limit)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Share))
	g.DELETE("/:user_id", context.Wrap(h.Unshare))
}

func (h *Sharing) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.SharingService.List(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Sharing) Share(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.ShareNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.SharingService.Share(c.Request.Context(), userID, noteID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Sharing) Unshare(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	sharedWithID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	if err := h.SharingService.Unshare(c.Request.Context(), userID, noteID, sharedWithID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
