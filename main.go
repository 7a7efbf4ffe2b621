package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/auth"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/config"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/database"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/handlers"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/metrics"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/routes"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/templates"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	orderStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open order store: %v", err)
	}
	defer closeStore()

	var cache dashboard.SnapshotCache
	if rdb := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); rdb != nil {
		defer rdb.Close()
		cache = dashboard.NewRedisCache(rdb, cfg.Redis.SnapshotTTL)
	}

	authenticator, err := auth.NewStaticAuthenticator(cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}

	renderer, err := templates.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	m := metrics.New()
	sessions := auth.NewSessions(cfg.Admin.SessionSecret, cfg.Admin.SessionMaxAge, cfg.Admin.SessionSecure)
	board := dashboard.NewBoard(orderStore, dashboard.Options{Cache: cache, Recorder: m})
	h := handlers.New(handlers.Deps{
		Board:     board,
		Sessions:  sessions,
		Auth:      authenticator,
		Images:    store.NewImageURLBuilder(cfg.Sanity.CDNHost, cfg.Sanity.ProjectID, cfg.Sanity.Dataset),
		Logins:    m,
		JWTSecret: []byte(cfg.Admin.JWTSecret),
		JWTTTL:    cfg.Admin.JWTTTL,
	})

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.SetupRoutes(e, h, routes.Options{
		Sessions:  sessions,
		JWTSecret: []byte(cfg.Admin.JWTSecret),
		Metrics:   m.Handler(),
	})

	go func() {
		log.Printf("admin: listening on :%s (%s backend)", cfg.Port, cfg.StoreBackend)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("web server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("admin: shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("admin: shutdown: %v", err)
	}
	log.Printf("admin: stopped")
}

// openStore builds the configured order backend and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config) (store.OrderStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		db, err := database.ConnectDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Printf("database: disconnect: %v", err)
			}
		}
		return store.NewMongoStore(db, cfg.StoreTimeout), closeFn, nil
	default:
		s := store.NewSanityStore(store.SanityOptions{
			APIHost:    cfg.SanityAPIHost(),
			APIVersion: cfg.Sanity.APIVersion,
			Dataset:    cfg.Sanity.Dataset,
			Token:      cfg.Sanity.Token,
			Timeout:    cfg.StoreTimeout,
		})
		return s, func() {}, nil
	}
}
