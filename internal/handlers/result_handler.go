package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type ResultHandler struct {
	analysisRepo  repositories.AnalysisRepository
	qdrantService services.QdrantService
}

func NewResultHandler(
	analysisRepo repositories.AnalysisRepository,
	qdrantService services.QdrantService,
) *ResultHandler {
	return &ResultHandler{
		analysisRepo:  analysisRepo,
		qdrantService: qdrantService,
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *ResultHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysis, status, err := h.findAnalysis(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := analysis.Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored analysis",
		})
	}

	return c.JSON(models.AnalyzeResponse{
		ID:             analysis.ID.String(),
		Strengths:      result.Strengths,
		PotentialJobs:  result.PotentialJobs,
		Scores:         services.OrderedScores(result.QuantitativeScores),
		ProcessingTime: analysis.ProcessingTime,
	})
}

// HandleListAnalyses handles GET /analyses
func (h *ResultHandler) HandleListAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	analyses, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	return c.JSON(fiber.Map{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// HandleDeleteAnalysis handles DELETE /analyses/:id. Removes the record and
// its vector index entry.
func (h *ResultHandler) HandleDeleteAnalysis(c *fiber.Ctx) error {
	analysis, status, err := h.findAnalysis(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.analysisRepo.Delete(analysis.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete analysis",
		})
	}

	if err := h.qdrantService.DeleteAnalysis(c.UserContext(), analysis.ID); err != nil {
		// The record is gone; a stale vector only wastes index space.
		log.Printf("⚠️  Failed to delete analysis vector %s: %v\n", analysis.ID, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResultHandler) findAnalysis(c *fiber.Ctx) (*models.Analysis, int, error) {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, "Invalid analysis ID format")
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return nil, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, "Analysis not found")
	}

	return analysis, fiber.StatusOK, nil
}
