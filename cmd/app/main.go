package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/fccardedeu/backend/internal/api/http"
	"github.com/fccardedeu/backend/internal/cache"
	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/db"
	"github.com/fccardedeu/backend/internal/migrations"
	"github.com/fccardedeu/backend/internal/payments"
	"github.com/fccardedeu/backend/internal/queue/asynqserver"
	queueClient "github.com/fccardedeu/backend/internal/queue/client"
	"github.com/fccardedeu/backend/internal/repository"
	"github.com/fccardedeu/backend/internal/server"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/internal/storage"
	"github.com/fccardedeu/backend/internal/worker"
	"github.com/fccardedeu/backend/pkg/auth"
	"github.com/fccardedeu/backend/pkg/cookiecrypt"
	"github.com/fccardedeu/backend/pkg/email/smtp"
	"github.com/fccardedeu/backend/pkg/hash"
	logger "github.com/fccardedeu/backend/pkg/logger"
	"github.com/fccardedeu/backend/pkg/token"

	"github.com/hibiken/asynq"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting club backend", "env", cfg.Env)
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", "error", err)
		}
	}()
	appLogger.Info("mysql connection done")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	defer cancelMigrate()
	if err := migrations.Run(migrateCtx, dbMySQL.DB); err != nil {
		appLogger.Error("run migrations failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("migrations applied")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", "error", err)
		return
	}

	draftManager, err := token.NewManager(cfg.Draft.SigningKey, cfg.Draft.TTL)
	if err != nil {
		appLogger.Error("draft manager creation err", "error", err)
		return
	}

	cookieCodec, err := cookiecrypt.NewCodec(cfg.Draft.CookieKey, cfg.Env != "local")
	if err != nil {
		appLogger.Error("cookie codec creation err", "error", err)
		return
	}

	stripeClient := payments.NewClient(cfg.Stripe.SecretKey)

	var photoStore storage.PhotoStore
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewS3Store(context.Background(), cfg.Storage)
		if err != nil {
			appLogger.Error("s3 store creation err", "error", err)
			return
		}
		photoStore = s3Store
		appLogger.Info("s3 photo store enabled", "bucket", cfg.Storage.Bucket)
	}

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", "error", err)
		os.Exit(1)
	}
	appLogger.Info("redis connection done")

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Logger:       appLogger,
		Config:       cfg,
		Repos:        repos,
		DraftManager: draftManager,
		Hasher:       hasher,
		TokenManager: tokenManager,
		Checkout:     stripeClient,
		Photos:       photoStore,
		Cache:        redisClient,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg, cookieCodec, draftManager)

	// Background queue for confirmation emails
	var asynqSrv *asynq.Server
	if cfg.Email.Enabled {
		emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			appLogger.Error("smtp sender creation failed", "error", err)
			return
		}

		workers := worker.NewWorkers(worker.Deps{
			EmailProvider: emailSender,
			Config:        cfg,
		})

		client := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		queueClient.SetClient(client)
		defer client.Close()

		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg.Cache, workers)
		go func() {
			if err := asynqSrv.Run(mux); err != nil {
				appLogger.Error("asynq server stopped", "error", err)
			}
		}()
		appLogger.Info("email queue started")
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", "error", err)
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", "error", err)
	}

	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	appLogger.Info("app stopped")
}
