package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type StatsHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewStatsHandler(analysisRepo repositories.AnalysisRepository) *StatsHandler {
	return &StatsHandler{analysisRepo: analysisRepo}
}

// HandleGetStatistics handles GET /analyses/:id/statistics
func (h *StatsHandler) HandleGetStatistics(c *fiber.Ctx) error {
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

	result, err := analysis.Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored analysis",
		})
	}

	topN := c.QueryInt("top", 3)
	bottomN := c.QueryInt("bottom", 2)

	return c.JSON(models.StatisticsResponse{
		ID:         analysis.ID.String(),
		Statistics: services.ComputeStatistics(result.QuantitativeScores),
		Top:        services.TopN(result.QuantitativeScores, topN),
		Bottom:     services.BottomN(result.QuantitativeScores, bottomN),
	})
}
