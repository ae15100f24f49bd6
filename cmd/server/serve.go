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

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/config"
	"github.com/yukikurage/home-inventory-api/internal/constants"
	"github.com/yukikurage/home-inventory-api/internal/database"
	"github.com/yukikurage/home-inventory-api/internal/handlers"
	"github.com/yukikurage/home-inventory-api/internal/middleware"
	"github.com/yukikurage/home-inventory-api/internal/repository"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

func serveCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if !skipMigrate {
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
			}

			return serve(cmd.Context(), cfg, db)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run migrations on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	log := logger.New("server").Function("serve")

	gin.SetMode(cfg.GinMode)

	store, err := sessionStore(cfg)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.TraceID(), middleware.RequestLogger())
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	handlers.RegisterRoutes(r, buildHandlers(cfg, db))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sessionStore uses Redis when REDIS_HOST is set and signed cookies otherwise.
func sessionStore(cfg *config.Config) (sessions.Store, error) {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.RedisHost == "" {
		store := cookie.NewStore([]byte(cfg.SessionSecret))
		store.Options(options)
		return store, nil
	}

	store, err := redisStore.NewStore(
		10,    // Redis pool size
		"tcp", // network type
		cfg.RedisHost+":"+cfg.RedisPort,
		"", // username (empty for default user)
		"", // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis store: %w", err)
	}
	store.Options(options)
	return store, nil
}

func buildHandlers(cfg *config.Config, db *gorm.DB) handlers.Handlers {
	txService := services.NewTransactionService(db, cfg.DBTxTimeout)
	resolver := access.NewResolver(db)

	userRepo := repository.NewUserRepository(db)
	homeRepo := repository.NewHomeRepository(db)

	var suggester services.TaskSuggester
	if cfg.OpenAIAPIKey != "" {
		suggester = services.NewAIService(cfg.OpenAIAPIKey)
	}

	authService := services.NewAuthService(userRepo)
	homeService := services.NewHomeService(txService, resolver, homeRepo, userRepo)
	roomService := services.NewRoomService(txService, resolver, repository.NewRoomRepository(db))
	itemService := services.NewItemService(txService, resolver, repository.NewItemRepository(db))
	taskService := services.NewTaskService(txService, resolver, repository.NewTaskRepository(db))
	finishService := services.NewFinishService(txService, resolver, repository.NewFinishRepository(db))
	importService := services.NewImportService(txService, repository.NewImportRepository(db), homeRepo)
	suggestionService := services.NewSuggestionService(resolver, suggester)

	return handlers.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Home:   handlers.NewHomeHandler(homeService),
		Room:   handlers.NewRoomHandler(roomService, itemService),
		Task:   handlers.NewTaskHandler(taskService, suggestionService),
		Finish: handlers.NewFinishHandler(finishService),
		Import: handlers.NewImportHandler(importService),
	}
}
