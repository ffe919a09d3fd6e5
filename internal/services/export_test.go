package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/insight-compass/internal/models"
)

func testAnalysis(t *testing.T) *models.Analysis {
	t.Helper()

	result := &models.AnalysisResult{
		Strengths: []string{
			"高い集中力を持つ",
			"思慮深い判断力",
			"好奇心が旺盛",
			"行動の切り替えが早い",
			"継続的な実行力",
		},
		PotentialJobs: []models.PotentialJob{
			{JobTitle: "データアナリスト", Reason: "論理的思考力と集中力を活かせる"},
			{JobTitle: "プロジェクトマネージャー", Reason: "計画性と実行力が求められる職種"},
			{JobTitle: "UXデザイナー", Reason: "創造性と共感力を活用できる"},
		},
		QuantitativeScores: fixtureScores(),
		RawResponse:        `{"mock":"response"}`,
		ProcessingTime:     1.23,
	}

	analysis, err := models.NewAnalysis("クライアントは人見知りだが、一つのことに長く没頭する傾向がある。", nil, result)
	require.NoError(t, err)
	return analysis
}

func TestExportJSON(t *testing.T) {
	analysis := testAnalysis(t)

	report, err := ExportJSON(analysis, false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(report), &decoded))

	assert.Equal(t, analysis.ID.String(), decoded["id"])
	assert.Len(t, decoded["strengths"], 5)
	assert.Len(t, decoded["potential_jobs"], 3)
	assert.Len(t, decoded["quantitative_scores"], 6)
	assert.NotContains(t, decoded, "input_text")

	stats := decoded["statistics"].(map[string]interface{})
	assert.InDelta(t, 7.5, stats["mean"].(float64), 1e-9)
}

func TestExportJSON_IncludesInputTextOnRequest(t *testing.T) {
	analysis := testAnalysis(t)

	report, err := ExportJSON(analysis, true)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(report), &decoded))
	assert.Equal(t, analysis.InputText, decoded["input_text"])
}

func TestExportMarkdown(t *testing.T) {
	analysis := testAnalysis(t)

	report, err := ExportMarkdown(analysis)
	require.NoError(t, err)

	assert.Contains(t, report, "# 潜在能力分析結果レポート")
	assert.Contains(t, report, "1. 高い集中力を持つ")
	assert.Contains(t, report, "### 1. データアナリスト")
	assert.Contains(t, report, "**理由**: 論理的思考力と集中力を活かせる")
	// 論理・分析力 scored 9: nine filled cells, one empty.
	assert.Contains(t, report, "**論理・分析力**: 9/10 `█████████░` (90%)")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "██████████", scoreBar(10))
	assert.Equal(t, "█░░░░░░░░░", scoreBar(1))
	assert.Equal(t, "░░░░░░░░░░", scoreBar(0))
	assert.Equal(t, "██████████", scoreBar(15))
}
