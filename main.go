package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imagetagger/config"
	_ "imagetagger/docs"
	"imagetagger/internal/adapters/auth"
	"imagetagger/internal/adapters/email"
	"imagetagger/internal/adapters/openai"
	deliveryhttp "imagetagger/internal/delivery/http"
	"imagetagger/internal/delivery/http/controllers"
	"imagetagger/internal/delivery/http/middleware"
	"imagetagger/internal/repository/jsonfile"
	"imagetagger/internal/repository/postgres"
	"imagetagger/internal/services"
	"imagetagger/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// @title Image Tagger API
// @version 1.0
// @description Collaborative image tagging backend: groups, uploads, tag review and AI-assisted suggestions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	var repo = jsonfile.NewSnapshotRepository(cfg.DataFile)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(db); err != nil {
			logger.Error("failed to ensure database schema", "err", err)
			os.Exit(1)
		}
		repo = postgres.NewSnapshotRepository(db)
		logger.Info("using postgres snapshot backend")
	} else {
		logger.Info("using json file snapshot backend", "path", cfg.DataFile)
	}

	var storeOpts []store.Option
	if cfg.PersistStrict {
		storeOpts = append(storeOpts, store.WithStrictPersistence())
	}
	st := store.New(repo, logger, storeOpts...)
	if err := st.Load(); err != nil {
		logger.Error("failed to load snapshot", "err", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("failed to create upload directory", "dir", cfg.UploadDir, "err", err)
		os.Exit(1)
	}

	codec := auth.NewJWTCodec(cfg.JWTSecret)
	users, err := services.NewUserService(auth.NewBcryptHasher(bcrypt.DefaultCost), codec, cfg.TokenExpiry)
	if err != nil {
		logger.Error("failed to seed users", "err", err)
		os.Exit(1)
	}

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)
	notifier := services.NewReviewNotifier(mailer, users, logger)

	completer := openai.NewClient(nil, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	assist := services.NewAssistService(completer, nil)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:   controllers.NewAuthController(logger, users),
		Group:  controllers.NewGroupController(logger, st),
		Image:  controllers.NewImageController(logger, st, cfg.UploadDir),
		Tag:    controllers.NewTagController(logger, st, notifier),
		Export: controllers.NewExportController(logger, st),
		Assist: controllers.NewAssistController(logger, assist),
	}, codec)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	if err := st.Save(); err != nil {
		logger.Error("final snapshot save failed", "err", err)
	}
}
