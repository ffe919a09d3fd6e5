package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type ExportHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewExportHandler(analysisRepo repositories.AnalysisRepository) *ExportHandler {
	return &ExportHandler{analysisRepo: analysisRepo}
}

// HandleExport handles GET /analyses/:id/export?format=json|markdown
func (h *ExportHandler) HandleExport(c *fiber.Ctx) error {
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

	format := c.Query("format", "json")
	includeText := c.QueryBool("include_text", false)

	switch format {
	case "json":
		report, err := services.ExportJSON(analysis, includeText)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Failed to export analysis: %v", err),
			})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(report)

	case "markdown":
		report, err := services.ExportMarkdown(analysis)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Failed to export analysis: %v", err),
			})
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(report)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unsupported export format: %s", format),
		})
	}
}
