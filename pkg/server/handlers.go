package server

import (
	"notely/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	Category   *handler.Category
	Tag        *handler.Tag
	Note       *handler.Note
	Sharing    *handler.Sharing
	Attachment *handler.Attachment
	Export     *handler.Export
	Dashboard  *handler.Dashboard
	Admin      *handler.Admin
}
