package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/docgen"
	"github.com/joho/godotenv"

	"github.com/folio/folio-go/internal/config"
	"github.com/folio/folio-go/internal/handler"
	"github.com/folio/folio-go/internal/middleware"
	"github.com/folio/folio-go/internal/repository"
	"github.com/folio/folio-go/internal/service"
	"github.com/folio/folio-go/internal/showcase"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	routes := flag.Bool("routes", false, "print the route table as JSON and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if *routes {
		// Route docs need no database; services are never called.
		fmt.Println(docgen.JSONRoutesDoc(handler.NewRouter(handler.Deps{
			Authorizer:   middleware.JWTAuthorizer{Secret: cfg.JWTSecret},
			Logger:       logger,
			ContactRate:  cfg.ContactRate,
			ContactBurst: cfg.ContactBurst,
		})))
		return
	}

	if err := run(cfg, logger); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	if err := repository.Migrate(ctx, cfg.DBDriver, cfg.DatabaseDSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	db, err := repository.NewDB(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	users := repository.NewUserRepository(db)
	blogService := service.NewBlogService(repository.NewBlogRepository(db), users)
	projectService := service.NewProjectService(repository.NewProjectRepository(db))

	r := handler.NewRouter(handler.Deps{
		Auth:     service.NewAuthService(users, nil, cfg.JWTSecret, cfg.JWTExpiry),
		Blog:     blogService,
		Projects: projectService,
		Contact:  service.NewContactService(repository.NewMessageRepository(db), service.LogNotifier{Logger: logger}),
		Showcase: &showcase.Tiered{
			Primary:  showcase.ServiceSource{Blog: blogService, Portfolio: projectService},
			Fallback: showcase.StaticSource{},
			Probe:    repository.Pinger(db),
		},
		Authorizer:   middleware.JWTAuthorizer{Secret: cfg.JWTSecret},
		Logger:       logger,
		ContactRate:  cfg.ContactRate,
		ContactBurst: cfg.ContactBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
