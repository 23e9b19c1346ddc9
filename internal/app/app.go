package app

import (
	"context"
	"log/slog"

	httpapp "photoclub_backend/internal/app/http"
	"photoclub_backend/internal/config"
	"photoclub_backend/internal/lib/jwt"
	"photoclub_backend/internal/repository"
	contentsvc "photoclub_backend/internal/services/content_service"
	uploadsvc "photoclub_backend/internal/services/upload_service"
	"photoclub_backend/internal/storage/objectstore"
	"photoclub_backend/internal/storage/postgresql"
	httprouters "photoclub_backend/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	repo       *repository.Repository
}

func New(log *slog.Logger, cfg *config.Config) *App {
	db, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	store, err := objectstore.NewMinioStorage(context.Background(), cfg.Storage)
	if err != nil {
		panic(err)
	}

	repo := repository.NewRepository(db)
	tokens := jwt.NewManager(cfg.Admin.Secret, cfg.Admin.TokenTTL)

	content := contentsvc.NewContentService(log, repo)
	upload := uploadsvc.NewUploadService(log, store, repo)

	routers := httprouters.NewRouters(log, content, upload, tokens, cfg.Admin.Password)

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers, tokens)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		repo:       repo,
	}
}

func (a *App) Stop() {
	_ = a.HTTPServer.Stop()
	a.repo.Close()
}
