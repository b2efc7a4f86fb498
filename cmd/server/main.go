package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/api"
	"github.com/lalith-99/taskflow/internal/config"
	"github.com/lalith-99/taskflow/internal/db"
	"github.com/lalith-99/taskflow/internal/observ"
	"github.com/lalith-99/taskflow/internal/store"
	"github.com/lalith-99/taskflow/internal/store/document"
	"github.com/lalith-99/taskflow/internal/store/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// Two storage backends behind the same contracts: the JSON document
	// file by default, Postgres when DATABASE_URL is set. Handlers only
	// ever see the interfaces.
	var (
		userStore    store.UserStore
		teamStore    store.TeamStore
		taskStore    store.TaskStore
		messageStore store.MessageStore
	)

	if cfg.DatabaseURL != "" {
		// Startup has no parent deadline; Background() is the right root.
		database, err := db.New(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer database.Close()

		if err := postgres.Migrate(context.Background(), database.Pool()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		pool := database.Pool()
		userStore = postgres.NewUserStore(pool)
		teamStore = postgres.NewTeamStore(pool)
		taskStore = postgres.NewTaskStore(pool)
		messageStore = postgres.NewMessageStore(pool)

		logger.Info("using postgres store")
	} else {
		doc := document.Open(cfg.DataFile, logger)
		userStore = document.NewUserStore(doc)
		teamStore = document.NewTeamStore(doc)
		taskStore = document.NewTaskStore(doc)
		messageStore = document.NewMessageStore(doc)

		logger.Info("using document store", zap.String("path", cfg.DataFile))
	}

	authHandler := api.NewAuthHandler(userStore, logger)
	teamHandler := api.NewTeamHandler(teamStore, userStore, logger)
	taskHandler := api.NewTaskHandler(taskStore, logger)
	messageHandler := api.NewMessageHandler(messageStore, logger)

	router := api.NewRouter(authHandler, teamHandler, taskHandler, messageHandler)

	logger.Info("starting TaskFlow",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
