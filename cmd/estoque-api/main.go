package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/estoque-api/config"
	"github.com/fekuna/estoque-api/internal/cache"
	"github.com/fekuna/estoque-api/internal/database"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/server"

	"github.com/fekuna/estoque-api/internal/auth"
	authH "github.com/fekuna/estoque-api/internal/auth/handler"
	authUCPkg "github.com/fekuna/estoque-api/internal/auth/usecase"
	userRepoPkg "github.com/fekuna/estoque-api/internal/user/repository"

	brandH "github.com/fekuna/estoque-api/internal/brand/handler"
	brandRepoPkg "github.com/fekuna/estoque-api/internal/brand/repository"
	brandUCPkg "github.com/fekuna/estoque-api/internal/brand/usecase"

	catH "github.com/fekuna/estoque-api/internal/category/handler"
	catRepoPkg "github.com/fekuna/estoque-api/internal/category/repository"
	catUCPkg "github.com/fekuna/estoque-api/internal/category/usecase"

	prodH "github.com/fekuna/estoque-api/internal/product/handler"
	prodRepoPkg "github.com/fekuna/estoque-api/internal/product/repository"
	prodUCPkg "github.com/fekuna/estoque-api/internal/product/usecase"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	app := &cli.App{
		Name:  "estoque-api",
		Usage: "inventory REST API for produtos, categorias and marcas",
		Action: func(c *cli.Context) error {
			return serve(c.Context, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP API and the gRPC health server",
				Action: func(c *cli.Context) error {
					return serve(c.Context, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "apply or revert database migrations",
				Subcommands: []*cli.Command{
					{
						Name:  "up",
						Usage: "apply every pending migration",
						Action: func(c *cli.Context) error {
							return migrateUp(cfg)
						},
					},
					{
						Name:  "down",
						Usage: "revert migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to revert"},
						},
						Action: func(c *cli.Context) error {
							return migrateDown(cfg, c.Int("steps"))
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg *config.Config) logger.ZapLogger {
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}
	return logger.NewZapLogger(logConfig)
}

func migrateUp(cfg *config.Config) error {
	m, err := database.NewMigrator(cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Printf("schema at version %d (dirty=%t)", v, dirty)
	return nil
}

func migrateDown(cfg *config.Config, steps int) error {
	m, err := database.NewMigrator(cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(steps); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	v, _, err := m.Version()
	if err != nil {
		return err
	}
	log.Printf("schema at version %d", v)
	return nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	if cfg.Postgres.AutoMigrate {
		if err := migrateUp(cfg); err != nil {
			return err
		}
		appLogger.Info("Database migrations applied")
	}

	db, err := database.NewPostgres(&database.Config{
		DSN:             cfg.Postgres.DSN(),
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Error("Could not connect to database", zap.Error(err))
		return err
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	var listCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Error("Could not connect to Redis", zap.Error(err))
			return err
		}
		defer redisClient.Close()
		listCache = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		appLogger.Info("Redis address not set, product list cache disabled")
	}

	userRepo := userRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	brandRepo := brandRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)

	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.ExpiresIn)

	authUC := authUCPkg.NewAuthUseCase(userRepo, tokens, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, listCache, appLogger)
	brandUC := brandUCPkg.NewBrandUseCase(brandRepo, prodRepo, listCache, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, brandRepo, listCache, cfg.Redis.ProductTTL, appLogger)

	handlers := &server.Handlers{
		Auth:     authH.NewAuthHandler(authUC, appLogger),
		Category: catH.NewCategoryHandler(catUC, appLogger),
		Brand:    brandH.NewBrandHandler(brandUC, appLogger),
		Product:  prodH.NewProductHandler(prodUC, appLogger),
	}
	rs := httpapi.NewResponder(cfg.IsProduction(), appLogger)

	httpServer := &http.Server{
		Addr:         normalizePort(cfg.Server.HTTPPort),
		Handler:      server.NewRouter(handlers, tokens, rs, appLogger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	grpcPort := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		return fmt.Errorf("listen %s: %w", grpcPort, err)
	}
	grpcServer := server.NewGRPCServer(appLogger)

	errCh := make(chan error, 2)
	go func() {
		appLogger.Info("Starting gRPC health server", zap.String("port", grpcPort))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	grpcServer.SetServing(true)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		appLogger.Error("Server failed", zap.Error(runErr))
	}

	appLogger.Info("Shutting down server...")
	grpcServer.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()

	appLogger.Info("Server stopped")
	return runErr
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
