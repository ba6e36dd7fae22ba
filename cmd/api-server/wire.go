//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"notely/config"
	"notely/dao"
	"notely/dao/cache"
	"notely/handler"
	"notely/pkg/client"
	"notely/pkg/database"
	"notely/pkg/oss"
	"notely/pkg/server"
	"notely/service"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.GetOssClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Sharing), "*"),
		wire.Struct(new(handler.Attachment), "*"),
		wire.Struct(new(handler.Export), "*"),
		wire.Struct(new(handler.Dashboard), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
