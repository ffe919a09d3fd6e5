package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"alfredoptarigan/insight-compass/internal/models"
)

// TextGenerator is the slice of GeminiService the analyzer needs. Kept
// narrow so tests can substitute a stub service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type AnalyzerService interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	generator      TextGenerator
	promptBuilder  *PromptBuilder
	maxRetries     int
	attemptTimeout time.Duration
	temperature    float32
	sleep          func(time.Duration)
}

func NewAnalyzerService(
	generator TextGenerator,
	promptBuilder *PromptBuilder,
	maxRetries int,
	attemptTimeout time.Duration,
	temperature float32,
) AnalyzerService {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &analyzerService{
		generator:      generator,
		promptBuilder:  promptBuilder,
		maxRetries:     maxRetries,
		attemptTimeout: attemptTimeout,
		temperature:    temperature,
		sleep:          time.Sleep,
	}
}

// Analyze implements AnalyzerService. It either returns a fully schema-valid
// result or an error; there is no partial outcome. Service failures and
// malformed or schema-violating replies are retried with exponential backoff
// (1s, 2s, 4s, ...); the final attempt's cause is carried by the terminal
// error.
func (a *analyzerService) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	if err := ValidateInput(text); err != nil {
		return nil, err
	}

	startTime := time.Now()
	prompt := a.promptBuilder.Build(text)

	var lastErr error

	for attempt := 1; attempt <= a.maxRetries; attempt++ {
		parsed, rawResponse, err := a.attempt(ctx, prompt)
		if err == nil {
			return &models.AnalysisResult{
				Strengths:          parsed.Strengths,
				PotentialJobs:      parsed.PotentialJobs,
				QuantitativeScores: parsed.Scores,
				RawResponse:        rawResponse,
				ProcessingTime:     time.Since(startTime).Seconds(),
			}, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < a.maxRetries {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			log.Printf("⚠️ Attempt %d failed: %v. Retrying in %s...\n", attempt, err, backoff)
			a.sleep(backoff)
		}
	}

	return nil, &AnalysisFailedError{Attempts: a.maxRetries, LastErr: lastErr}
}

func (a *analyzerService) attempt(ctx context.Context, prompt string) (*ParsedAnalysis, string, error) {
	if a.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.attemptTimeout)
		defer cancel()
	}

	rawResponse, err := a.generator.GenerateText(ctx, prompt, a.temperature)
	if err != nil {
		return nil, "", err
	}

	parsed, err := ParseAnalysisResponse(rawResponse)
	if err != nil {
		return nil, "", err
	}

	return parsed, rawResponse, nil
}
