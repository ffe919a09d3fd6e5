package main

import (
	"context"
	"log"
	"os"

	"alfredoptarigan/insight-compass/internal/config"
	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

// Backfills the vector index from stored analyses. Run with "all" to
// re-embed everything, otherwise only unindexed analyses are processed.
func main() {
	log.Println("🚀 Starting analysis reindexing...")

	reindexAll := len(os.Args) > 1 && os.Args[1] == "all"

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	analysisRepo := repositories.NewAnalysisRepository(db)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ctx := context.Background()

	analyses, err := fetchAnalyses(analysisRepo, reindexAll)
	if err != nil {
		log.Fatalf("❌ Failed to fetch analyses: %v", err)
	}

	log.Printf("📋 Found %d analyses to index\n", len(analyses))

	indexed := 0
	for _, analysis := range analyses {
		embedding, err := geminiService.GenerateEmbedding(ctx, analysis.InputText)
		if err != nil {
			log.Printf("⚠️  Failed to embed analysis %s: %v\n", analysis.ID, err)
			continue
		}

		if err := qdrantService.UpsertAnalysis(ctx, analysis.ID, analysis.InputText, embedding); err != nil {
			log.Printf("⚠️  Failed to upsert analysis %s: %v\n", analysis.ID, err)
			continue
		}

		if err := analysisRepo.MarkIndexed(analysis.ID); err != nil {
			log.Printf("⚠️  Failed to mark analysis %s indexed: %v\n", analysis.ID, err)
			continue
		}

		indexed++
	}

	log.Printf("✅ Reindexing completed: %d/%d analyses indexed\n", indexed, len(analyses))
}

func fetchAnalyses(repo repositories.AnalysisRepository, all bool) ([]models.Analysis, error) {
	if all {
		return repo.FindRecent(1000)
	}
	return repo.FindUnindexed(1000)
}
