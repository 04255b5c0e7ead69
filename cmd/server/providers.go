package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/adie253/chatroom-backend/internal/config"
	"github.com/adie253/chatroom-backend/internal/hub"
	"github.com/adie253/chatroom-backend/internal/repository/memory"
	"github.com/adie253/chatroom-backend/internal/repository/sqlite"
	"github.com/adie253/chatroom-backend/internal/service"

	"github.com/gorilla/mux"
)

// App is the main application container.
type App struct {
	Config *config.Config
	Hub    *hub.Hub
	Router *mux.Router
}

func provideDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := sqlite.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideUserRepository(cfg *config.Config) (*memory.UserRepository, error) {
	creds, err := cfg.Users()
	if err != nil {
		return nil, err
	}
	return memory.NewUserRepository(creds)
}

func provideAuthService(cfg *config.Config, users *memory.UserRepository) *service.AuthService {
	return service.NewAuthService(users, []byte(cfg.JWTSecret), cfg.TokenTTL)
}

func provideLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
