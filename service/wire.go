package service

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewOssService,
	NewQuotaService,
	NewAuthService,
	NewCategoryService,
	NewTagService,
	NewNoteService,
	NewSharingService,
	NewAttachmentService,
	NewExportService,
	NewStatsService,
)
