package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	analysisRepo repositories.AnalysisRepository
	noteRepo     repositories.NoteRepository
	indexer      services.Indexer
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	analysisRepo repositories.AnalysisRepository,
	noteRepo repositories.NoteRepository,
	indexer services.Indexer,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		analysisRepo: analysisRepo,
		noteRepo:     noteRepo,
		indexer:      indexer,
	}
}

// HandleAnalyze handles POST /analyze. The pipeline runs synchronously: the
// response carries the full validated result or an error, never a partial
// profile.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	text, noteID, err := h.resolveInput(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	text = services.PreprocessText(text)

	result, err := h.analyzer.Analyze(c.UserContext(), text)
	if err != nil {
		return analyzeErrorResponse(c, err)
	}

	analysis, err := models.NewAnalysis(text, noteID, result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to assemble analysis record",
		})
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		log.Printf("❌ Failed to persist analysis: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save analysis",
		})
	}

	// Vector indexing is best-effort and never blocks the response.
	h.indexer.EnqueueAnalysis(analysis.ID)

	stats := services.ComputeStatistics(result.QuantitativeScores)

	return c.Status(fiber.StatusCreated).JSON(models.AnalyzeResponse{
		ID:             analysis.ID.String(),
		Strengths:      result.Strengths,
		PotentialJobs:  result.PotentialJobs,
		Scores:         services.OrderedScores(result.QuantitativeScores),
		ProcessingTime: result.ProcessingTime,
		Statistics:     &stats,
	})
}

func (h *AnalyzeHandler) resolveInput(req *models.AnalyzeRequest) (string, *uuid.UUID, error) {
	if req.NoteID == "" {
		return req.Text, nil, nil
	}

	noteID, err := uuid.Parse(req.NoteID)
	if err != nil {
		return "", nil, errors.New("invalid note_id format")
	}

	note, err := h.noteRepo.FindByID(noteID)
	if err != nil {
		return "", nil, errors.New("note not found")
	}

	return note.ExtractedText, &noteID, nil
}

func analyzeErrorResponse(c *fiber.Ctx, err error) error {
	var inputErr *services.InputError
	if errors.As(err, &inputErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": inputErr.Reason,
		})
	}

	var failedErr *services.AnalysisFailedError
	if errors.As(err, &failedErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":    failedErr.Error(),
			"attempts": failedErr.Attempts,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
