package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"saicollege/internal/api"
	"saicollege/internal/api/handlers"
	"saicollege/internal/chatbot"
	"saicollege/internal/metrics"
	"saicollege/internal/repository"
	"saicollege/internal/service"
	"saicollege/pkg/auth"
	"saicollege/pkg/logger"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCMD() *cobra.Command {
	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the website and chatbot HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}
	serve.Flags().StringVar(&port, "port", "", "listen port (overrides SERVER_PORT)")

	return serve
}

func runServe(port string) error {
	cfg, appLogger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if port != "" {
		cfg.Server.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Starting Sai College service", zap.String("storage", cfg.Storage.Driver))

	st, err := openStores(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer st.close()

	// Initialize repositories
	chatLogRepo := repository.NewChatLogRepository(dataPath(cfg, "chat_logs.csv"))
	activityRepo := repository.NewActivityLogRepository(dataPath(cfg, "admin_activity_logs.csv"))
	adminRepo := repository.NewAdminFileRepository(cfg.Admin.ConfigFile, appLogger)
	feedbackRepo := repository.NewFeedbackFileRepository(dataPath(cfg, "feedback.json"), appLogger)
	syllabusRepo := repository.NewSyllabusFileRepository(dataPath(cfg, "syllabus_metadata.json"), appLogger)
	galleryRepo := repository.NewGalleryFileRepository(dataPath(cfg, "gallery_metadata.json"), appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	chatMetrics := metrics.NewChat()

	// Initialize services
	knowledge := service.NewKnowledgeService(st.knowledge, appLogger)
	knowledge.Reload(ctx)

	authService := service.NewAuthService(adminRepo, activityRepo, jwtManager, &cfg.Admin, appLogger)
	if err := authService.EnsureAccount(ctx); err != nil {
		return err
	}

	resolver := chatbot.NewResolver(st.queries, appLogger)
	chatService := service.NewChatService(resolver, knowledge, chatLogRepo, chatMetrics, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, appLogger)
	queryService := service.NewQueryService(st.queries, appLogger)
	uploadService := service.NewUploadService(syllabusRepo, galleryRepo, cfg.Storage.PDFDir, cfg.Storage.GalleryDir, appLogger)

	sessions := session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:saicollege_session",
		CookieSecure:   cfg.Server.SecureCookie,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, sessions, appLogger)
	publicHandler := handlers.NewPublicHandler(knowledge, feedbackService, uploadService, appLogger)
	adminHandler := handlers.NewAdminHandler(authService, knowledge, feedbackService, queryService, cfg.Server.SecureCookie, appLogger)
	uploadHandler := handlers.NewUploadHandler(uploadService, appLogger)

	app := api.SetupRouter(&cfg.Server, chatHandler, publicHandler, adminHandler, uploadHandler, jwtManager, chatMetrics.Handler(), appLogger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
