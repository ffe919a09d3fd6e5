package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type SimilarHandler struct {
	analysisRepo  repositories.AnalysisRepository
	geminiService services.GeminiService
	qdrantService services.QdrantService
}

func NewSimilarHandler(
	analysisRepo repositories.AnalysisRepository,
	geminiService services.GeminiService,
	qdrantService services.QdrantService,
) *SimilarHandler {
	return &SimilarHandler{
		analysisRepo:  analysisRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
	}
}

// HandleGetSimilar handles GET /analyses/:id/similar. Embeds the stored note
// text and returns the closest previously indexed analyses, excluding the
// analysis itself.
func (h *SimilarHandler) HandleGetSimilar(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	embedding, err := h.geminiService.GenerateEmbedding(c.UserContext(), analysis.InputText)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to embed note text",
		})
	}

	// Ask for one extra match since the query analysis itself is indexed.
	matches, err := h.qdrantService.SearchSimilar(c.UserContext(), embedding, limit+1)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to search similar analyses",
		})
	}

	similar := make([]models.SimilarAnalysis, 0, limit)
	for _, match := range matches {
		if match.AnalysisID == analysis.ID.String() {
			continue
		}
		if len(similar) == limit {
			break
		}

		entry := models.SimilarAnalysis{
			ID:    match.AnalysisID,
			Score: match.Score,
		}

		if matchID, err := uuid.Parse(match.AnalysisID); err == nil {
			if stored, err := h.analysisRepo.FindByID(matchID); err == nil {
				entry.InputText = stored.InputText
				entry.AnalyzedAt = stored.CreatedAt.Format(time.RFC3339)
			}
		}

		similar = append(similar, entry)
	}

	return c.JSON(models.SimilarResponse{
		ID:      analysis.ID.String(),
		Similar: similar,
	})
}
