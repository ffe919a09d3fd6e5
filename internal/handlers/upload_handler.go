package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/models"
	"alfredoptarigan/insight-compass/internal/repositories"
	"alfredoptarigan/insight-compass/internal/services"
)

type UploadHandler struct {
	noteRepo       repositories.NoteRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	noteRepo repositories.NoteRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		noteRepo:       noteRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadNote handles POST /notes. Text is extracted and cleaned at
// upload time; analysis later works from the stored text only.
func (h *UploadHandler) HandleUploadNote(c *fiber.Ctx) error {
	noteFile, err := c.FormFile("note")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No note file uploaded. Please upload 'note' as a PDF file.",
		})
	}

	if noteFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Note file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveNoteFile(noteFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save note file: %v", err),
		})
	}

	content, err := h.pdfParser.ExtractNoteText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from note: %v", err),
		})
	}

	note := models.Note{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: noteFile.Filename,
		FilePath:         filePath,
		ExtractedText:    content.Text,
		PageCount:        content.PageCount,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.noteRepo.Create(&note); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save note record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NoteUploadResponse{
		ID:           note.ID.String(),
		Filename:     note.Filename,
		OriginalName: note.OriginalFileName,
		PageCount:    note.PageCount,
		TextLength:   len([]rune(note.ExtractedText)),
	})
}
