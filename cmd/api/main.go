package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/insight-compass/internal/config"
	"alfredoptarigan/insight-compass/internal/handlers"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	noteRepo := repositories.NewNoteRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. A missing API key fails here, before any request
	// is accepted.
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		geminiService,
		services.NewPromptBuilder(),
		cfg.Analysis.MaxRetries,
		cfg.Analysis.AttemptTimeout,
		float32(cfg.Analysis.Temperature),
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize background indexer
	indexer := services.NewIndexer(
		analysisRepo,
		geminiService,
		qdrantService,
		cfg.Indexer.Concurrency,
	)

	ctx := context.Background()
	indexer.Start(ctx)
	log.Println("✅ Indexer started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		noteRepo,
		storageService,
		pdfParser,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		analysisRepo,
		noteRepo,
		indexer,
	)
	resultHandler := handlers.NewResultHandler(analysisRepo, qdrantService)
	statsHandler := handlers.NewStatsHandler(analysisRepo)
	exportHandler := handlers.NewExportHandler(analysisRepo)
	similarHandler := handlers.NewSimilarHandler(analysisRepo, geminiService, qdrantService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Potential Insight Compass API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/notes", uploadHandler.HandleUploadNote)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/analyses", resultHandler.HandleListAnalyses)
	api.Get("/analyses/:id", resultHandler.HandleGetAnalysis)
	api.Delete("/analyses/:id", resultHandler.HandleDeleteAnalysis)
	api.Get("/analyses/:id/statistics", statsHandler.HandleGetStatistics)
	api.Get("/analyses/:id/export", exportHandler.HandleExport)
	api.Get("/analyses/:id/similar", similarHandler.HandleGetSimilar)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Potential Insight Compass API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/notes",
				"POST /api/v1/analyze",
				"GET /api/v1/analyses",
				"GET /api/v1/analyses/:id",
				"DELETE /api/v1/analyses/:id",
				"GET /api/v1/analyses/:id/statistics",
				"GET /api/v1/analyses/:id/export",
				"GET /api/v1/analyses/:id/similar",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		indexer.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
