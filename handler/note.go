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

type Note struct {
	NoteService *service.NoteService
	Rate        *cache.RateStorage
	Config      *config.Config
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")
	searchLimit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "search")

	g := r.Group("/v1/notes", authorize)
	g.GET("", limit, context.Wrap(h.List))
	g.GET("/search", searchLimit, context.Wrap(h.Search))
	g.GET("/shared", limit, context.Wrap(h.SharedWithMe))
	g.POST("", limit, context.Wrap(h.Create))
	g.GET("/:id", limit, context.Wrap(h.Get))
	g.PUT("/:id", limit, context.Wrap(h.Update))
	g.DELETE("/:id", limit, context.Wrap(h.Delete))
	g.POST("/:id/pin", limit, context.Wrap(h.Pin))
	g.POST("/:id/unpin", limit, context.Wrap(h.Unpin))
	g.POST("/:id/archive", limit, context.Wrap(h.Archive))
	g.POST("/:id/unarchive", limit, context.Wrap(h.Unarchive))
}

// List 普通列表复用检索逻辑，支持同样的过滤参数
func (h *Note) List(c *gin.Context) error {
	return h.Search(c)
}

func (h *Note) Search(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	var req types.SearchNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	resp, err := h.NoteService.Search(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Note) SharedWithMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	notes, err := h.NoteService.SharedWithMe(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

func (h *Note) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	note, err := h.NoteService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

func (h *Note) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	note, err := h.NoteService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

func (h *Note) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	note, err := h.NoteService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

func (h *Note) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.NoteService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Note) Pin(c *gin.Context) error {
	return h.setPinned(c, true)
}

func (h *Note) Unpin(c *gin.Context) error {
	return h.setPinned(c, false)
}

func (h *Note) Archive(c *gin.Context) error {
	return h.setArchived(c, true)
}

func (h *Note) Unarchive(c *gin.Context) error {
	return h.setArchived(c, false)
}

func (h *Note) setPinned(c *gin.Context, pinned bool) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	note, err := h.NoteService.SetPinned(c.Request.Context(), userID, id, pinned)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

func (h *Note) setArchived(c *gin.Context, archived bool) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	note, err := h.NoteService.SetArchived(c.Request.Context(), userID, id, archived)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}
