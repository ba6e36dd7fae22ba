package dao

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewUsers,
	NewCategories,
	NewTags,
	NewNotes,
	NewSharings,
	NewAttachments,
)
