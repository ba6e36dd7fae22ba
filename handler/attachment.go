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
	"notely/types"
)

type Attachment struct {
	AttachmentService *service.AttachmentService
	Rate              *cache.RateStorage
	Config            *config.Config
}

func (h *Attachment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret),
		time.Duration(h.Config.Jwt.AccessExpire)*time.Second)
	limit := middleware.RateLimit(h.Rate, h.Config.RateLimit, "api")

	g := r.Group("/v1/notes/:id/attachments", authorize, limit)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Upload))
	g.GET("/:attachment_id/download", context.Wrap(h.Download))
	g.DELETE("/:attachment_id", context.Wrap(h.Delete))
}

func (h *Attachment) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.AttachmentService.List(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Attachment) Upload(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(400, "missing file field")
	}
	attachment, err := h.AttachmentService.Upload(c.Request.Context(), userID, noteID, header)
	if err != nil {
		return err
	}
	response.Success(c, types.UploadAttachmentResponse{
		AttachmentID: attachment.ID,
		FileName:     attachment.FileName,
		FileSize:     attachment.FileSize,
		FileType:     attachment.FileType,
	})
	return nil
}

func (h *Attachment) Download(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	attachmentID, err := pathID(c, "attachment_id")
	if err != nil {
		return err
	}
	attachment, body, err := h.AttachmentService.Download(c.Request.Context(), userID, noteID, attachmentID)
	if err != nil {
		return err
	}
	defer body.Close()

	contentType := attachment.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, attachment.FileSize, contentType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", attachment.FileName),
	})
	return nil
}

func (h *Attachment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("authentication required")
	}
	noteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	attachmentID, err := pathID(c, "attachment_id")
	if err != nil {
		return err
	}
	if err := h.AttachmentService.Delete(c.Request.Context(), userID, noteID, attachmentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
