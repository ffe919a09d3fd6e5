package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"alfredoptarigan/insight-compass/internal/models"
)

// ParsedAnalysis is the validated payload extracted from a model reply.
// Construction goes through ParseAnalysisResponse only, so a value of this
// type always satisfies the schema: 5 strengths, 3 jobs, 6 scored dimensions.
type ParsedAnalysis struct {
	Strengths     []string
	PotentialJobs []models.PotentialJob
	Scores        map[string]int
}

const (
	expectedStrengths = 5
	expectedJobs      = 3
	minScore          = 1
	maxScore          = 10
	errorSnippetRunes = 500
)

// ParseAnalysisResponse unwraps, decodes and validates a raw model reply.
// The reply must be a single JSON object, optionally inside one markdown
// fence pair; anything else fails with a typed error naming the violation.
func ParseAnalysisResponse(raw string) (*ParsedAnalysis, error) {
	cleaned := stripCodeFence(raw)

	decoder := json.NewDecoder(strings.NewReader(cleaned))
	decoder.UseNumber()

	var data map[string]interface{}
	if err := decoder.Decode(&data); err != nil {
		return nil, &MalformedReplyError{Cause: err, Snippet: truncateRunes(raw, errorSnippetRunes)}
	}

	return validateStructure(data)
}

// stripCodeFence removes a single wrapping ```json fence pair. Pure
// prefix/suffix strip; nested or mid-text fences are left alone.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	return strings.TrimSpace(cleaned)
}

func validateStructure(data map[string]interface{}) (*ParsedAnalysis, error) {
	qualRaw, ok := data["qualitative_analysis"]
	if !ok {
		return nil, &SchemaError{Description: "必須キー 'qualitative_analysis' がレスポンスに含まれていません"}
	}

	qual, ok := qualRaw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Description: "'qualitative_analysis' がオブジェクトではありません"}
	}

	strengths, err := validateStrengths(qual)
	if err != nil {
		return nil, err
	}

	jobs, err := validateJobs(qual)
	if err != nil {
		return nil, err
	}

	scoresRaw, ok := data["quantitative_scores"]
	if !ok {
		return nil, &SchemaError{Description: "必須キー 'quantitative_scores' がレスポンスに含まれていません"}
	}

	scoresMap, ok := scoresRaw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Description: "'quantitative_scores' がオブジェクトではありません"}
	}

	scores, err := validateScores(scoresMap)
	if err != nil {
		return nil, err
	}

	return &ParsedAnalysis{
		Strengths:     strengths,
		PotentialJobs: jobs,
		Scores:        scores,
	}, nil
}

func validateStrengths(qual map[string]interface{}) ([]string, error) {
	raw, ok := qual["strengths"].([]interface{})
	if !ok || len(raw) != expectedStrengths {
		return nil, &SchemaError{Description: fmt.Sprintf("強みは%d項目である必要があります", expectedStrengths)}
	}

	strengths := make([]string, 0, expectedStrengths)
	for i, item := range raw {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, &SchemaError{Description: fmt.Sprintf("強み%dが空か、文字列ではありません", i+1)}
		}
		strengths = append(strengths, s)
	}

	return strengths, nil
}

func validateJobs(qual map[string]interface{}) ([]models.PotentialJob, error) {
	raw, ok := qual["potential_jobs"].([]interface{})
	if !ok || len(raw) != expectedJobs {
		return nil, &SchemaError{Description: fmt.Sprintf("職業適性は%d項目である必要があります", expectedJobs)}
	}

	jobs := make([]models.PotentialJob, 0, expectedJobs)
	for i, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Description: fmt.Sprintf("職業適性%dがオブジェクトではありません", i+1)}
		}

		title, _ := entry["job_title"].(string)
		reason, _ := entry["reason"].(string)
		if strings.TrimSpace(title) == "" || strings.TrimSpace(reason) == "" {
			return nil, &SchemaError{Description: fmt.Sprintf("職業適性%dにjob_titleまたはreasonが不足しています", i+1)}
		}

		jobs = append(jobs, models.PotentialJob{JobTitle: title, Reason: reason})
	}

	return jobs, nil
}

func validateScores(scoresMap map[string]interface{}) (map[string]int, error) {
	scores := make(map[string]int, len(models.CapabilityDimensions()))

	for _, dimension := range models.CapabilityDimensions() {
		value, ok := scoresMap[string(dimension)]
		if !ok {
			return nil, &SchemaError{Description: fmt.Sprintf("能力次元 '%s' がスコアに含まれていません", dimension)}
		}

		score, err := asIntegerScore(value)
		if err != nil || score < minScore || score > maxScore {
			return nil, &SchemaError{Description: fmt.Sprintf("スコア '%s' は%d-%dの整数である必要があります", dimension, minScore, maxScore)}
		}

		scores[string(dimension)] = score
	}

	return scores, nil
}

// asIntegerScore accepts only JSON integers. Booleans, floats and strings are
// rejected even when numerically coercible.
func asIntegerScore(value interface{}) (int, error) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("not a number")
	}

	if strings.ContainsAny(number.String(), ".eE") {
		return 0, fmt.Errorf("not an integer")
	}

	n, err := number.Int64()
	if err != nil {
		return 0, fmt.Errorf("not an integer: %w", err)
	}

	return int(n), nil
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
