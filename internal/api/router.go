package api

import (
	"net/http"
	"os"
	"path/filepath"

	"saicollege/docs"
	"saicollege/internal/api/handlers"
	"saicollege/pkg/auth"
	"saicollege/pkg/config"
	"saicollege/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	chatHandler *handlers.ChatHandler,
	publicHandler *handlers.PublicHandler,
	adminHandler *handlers.AdminHandler,
	uploadHandler *handlers.UploadHandler,
	jwtManager *auth.JWTManager,
	metricsHandler http.Handler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // init() registers the swagger doc
	app.Get("/swagger/*", swagger.HandlerDefault)

	if metricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metricsHandler))
	}

	if dirExists(cfg.StaticDir) {
		appLogger.Info("Serving static files", zap.String("path", cfg.StaticDir))
		app.Static("/static", cfg.StaticDir)
	} else {
		appLogger.Warn("Static directory not found, static files will not be served", zap.String("path", cfg.StaticDir))
	}

	// Pages are plain HTML files from the static directory
	for route, page := range map[string]string{
		"/":         "index.html",
		"/admin":    "admin.html",
		"/gallery":  "gallery.html",
		"/syllabus": "syllabus.html",
	} {
		pagePath := filepath.Join(cfg.StaticDir, page)
		app.Get(route, func(c *fiber.Ctx) error {
			if !fileExists(pagePath) {
				return fiber.ErrNotFound
			}
			return c.SendFile(pagePath)
		})
	}

	app.Get("/health", publicHandler.Health)
	app.Post("/chat", chatHandler.Chat)
	app.Post("/set-language", chatHandler.SetLanguage)
	app.Post("/feedback", publicHandler.SubmitFeedback)

	api := app.Group("/api")
	api.Get("/college-info", publicHandler.CollegeInfo)
	api.Get("/courses", publicHandler.Courses)
	api.Get("/facilities", publicHandler.Facilities)
	api.Get("/gallery-images", publicHandler.GalleryImages)
	api.Get("/syllabus", publicHandler.Syllabus)

	// Admin routes (public)
	admin := app.Group("/admin")
	admin.Post("/login", adminHandler.Login)
	admin.Get("/check-session", adminHandler.CheckSession)
	admin.Post("/logout", adminHandler.Logout)
	admin.Post("/reset-password", adminHandler.ResetPassword)

	// Protected routes
	protected := admin.Group("", middleware.AdminAuth(jwtManager, appLogger))
	protected.Get("/college-data", adminHandler.GetCollegeData)
	protected.Post("/college-data", adminHandler.SaveCollegeData)
	protected.Get("/feedback", adminHandler.Feedback)
	protected.Get("/unknown-queries", adminHandler.UnknownQueries)
	protected.Post("/update-status", adminHandler.UpdateStatus)
	protected.Get("/stats", adminHandler.Stats)
	protected.Post("/upload-pdf", uploadHandler.UploadPDF)
	protected.Get("/pdfs", uploadHandler.ListPDFs)
	protected.Post("/delete-pdf", uploadHandler.DeletePDF)
	protected.Post("/upload-gallery-image", uploadHandler.UploadGalleryImage)
	protected.Post("/delete-gallery-image", uploadHandler.DeleteGalleryImage)

	return app
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
