//go:build wireinject
// +build wireinject

package main

import (
	"github.com/adie253/chatroom-backend/internal/config"
	"github.com/adie253/chatroom-backend/internal/handler"
	"github.com/adie253/chatroom-backend/internal/hub"
	"github.com/adie253/chatroom-backend/internal/presence"
	"github.com/adie253/chatroom-backend/internal/repository/sqlite"
	"github.com/adie253/chatroom-backend/internal/service"

	"github.com/google/wire"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		provideLogger,
		// Storage Providers
		wire.NewSet(
			provideDB,
			sqlite.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*sqlite.MessageRepository)),
		),
		// Auth Providers
		wire.NewSet(
			provideUserRepository,
			provideAuthService,
			wire.Bind(new(service.IAuthService), new(*service.AuthService)),
		),
		// Presence & Hub Providers
		presence.NewTracker,
		hub.NewHub,
		// HTTP Providers
		handler.New,
		handler.Router,
		// App Provider
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
