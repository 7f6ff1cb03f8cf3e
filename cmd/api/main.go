package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "github.com/MuhamadAgungGumelar/ocr-converter-be/cmd/api/docs"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/handlers"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/repositories"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/shared/utils"
)

// @title OCR Converter API
// @version 1.0
// @description Upload images, extract text via OCR, and overlay text onto stored images
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting ocr-converter-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL, cfg.DBName)
	defer db.Close()

	// Init repositories (use GORM instance)
	resultRepo := repositories.NewOCRResultRepo(db.GORM)
	imageRepo := repositories.NewImageRepo(db.GORM)

	// Init OCR service
	ocrProvider := ocr.NewTesseractProvider(cfg.TesseractLanguage)
	ocrService := ocr.NewService(ocrProvider)
	log.Printf("🔍 Using OCR provider: %s", ocrService.GetProviderName())

	// Init handlers
	healthHandler := handlers.NewHealthHandler(ocrService)
	ocrHandler := handlers.NewOCRHandler(ocrService, resultRepo, imageRepo)
	imageHandler := handlers.NewImageHandler(imageRepo)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "OCR Converter API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// API routes
	api := app.Group("/api")
	api.Get("/", healthHandler.GetRoot)
	api.Post("/upload-ocr", ocrHandler.UploadOCR)
	api.Get("/ocr-results", ocrHandler.GetOCRResults)
	api.Post("/edit-image", imageHandler.EditImage)
	api.Get("/image/:id", imageHandler.GetImage)

	log.Printf("✅ ocr-converter-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
