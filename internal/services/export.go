package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/insight-compass/internal/models"
)

// Report export for completed analyses. Consumes only the validated result
// and the derived statistics; never re-reads the raw model reply.

type jsonReport struct {
	ID                 string                `json:"id"`
	Timestamp          string                `json:"timestamp"`
	InputLength        int                   `json:"input_length"`
	ProcessingTime     float64               `json:"processing_time"`
	Strengths          []string              `json:"strengths"`
	PotentialJobs      []models.PotentialJob `json:"potential_jobs"`
	QuantitativeScores map[string]int        `json:"quantitative_scores"`
	Statistics         models.StatisticsData `json:"statistics"`
	InputText          string                `json:"input_text,omitempty"`
}

// ExportJSON renders an analysis as an indented JSON report. The raw input
// text is included only when requested.
func ExportJSON(analysis *models.Analysis, includeInputText bool) (string, error) {
	result, err := analysis.Result()
	if err != nil {
		return "", fmt.Errorf("failed to load analysis result: %w", err)
	}

	report := jsonReport{
		ID:                 analysis.ID.String(),
		Timestamp:          analysis.CreatedAt.Format(time.RFC3339),
		InputLength:        analysis.InputLength,
		ProcessingTime:     analysis.ProcessingTime,
		Strengths:          result.Strengths,
		PotentialJobs:      result.PotentialJobs,
		QuantitativeScores: result.QuantitativeScores,
		Statistics:         ComputeStatistics(result.QuantitativeScores),
	}

	if includeInputText {
		report.InputText = analysis.InputText
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	return string(data), nil
}

// ExportMarkdown renders an analysis as a Markdown report with numbered
// strengths, job sections and bar-style score lines.
func ExportMarkdown(analysis *models.Analysis) (string, error) {
	result, err := analysis.Result()
	if err != nil {
		return "", fmt.Errorf("failed to load analysis result: %w", err)
	}

	var md strings.Builder

	md.WriteString("# 潜在能力分析結果レポート\n\n")
	md.WriteString("## 📊 分析概要\n\n")
	md.WriteString(fmt.Sprintf("- **分析日時**: %s\n", analysis.CreatedAt.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("- **入力文字数**: %d 文字\n", analysis.InputLength))
	md.WriteString(fmt.Sprintf("- **処理時間**: %.2f 秒\n\n", analysis.ProcessingTime))

	md.WriteString("## 💪 発見された強み\n\n")
	for i, strength := range result.Strengths {
		md.WriteString(fmt.Sprintf("%d. %s\n", i+1, strength))
	}

	md.WriteString("\n## 🎯 適性のある職業\n\n")
	for i, job := range result.PotentialJobs {
		md.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, job.JobTitle))
		md.WriteString(fmt.Sprintf("**理由**: %s\n\n", job.Reason))
	}

	md.WriteString("## 📈 能力スコア\n\n")
	for _, entry := range OrderedScores(result.QuantitativeScores) {
		md.WriteString(fmt.Sprintf("**%s**: %d/10 `%s` (%d%%)\n\n",
			entry.Dimension, entry.Score, scoreBar(entry.Score), entry.Score*10))
	}

	return md.String(), nil
}

func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return strings.Repeat("█", score) + strings.Repeat("░", 10-score)
}
