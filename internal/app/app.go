package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-backend/config"
	"github.com/daniilsolovey/blog-backend/internal/blog"
	"github.com/daniilsolovey/blog-backend/internal/db"
	"github.com/daniilsolovey/blog-backend/internal/mail"
	"github.com/daniilsolovey/blog-backend/internal/rest"
	"github.com/daniilsolovey/blog-backend/internal/rpc"
)

type App struct {
	Repo   *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	mailer := mail.NewSMTP(mail.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
	})
	manager := blog.NewManager(repo, mailer, cfg.App.BaseURL)

	handler := rest.NewBlogHandler(manager, logger)
	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager)
	e.Any("/v1/rpc", echo.WrapHandler(rpcServer))

	return &App{
		Repo:   repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
