package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysis_RoundTrip(t *testing.T) {
	result := &AnalysisResult{
		Strengths: []string{"強み1", "強み2", "強み3", "強み4", "強み5"},
		PotentialJobs: []PotentialJob{
			{JobTitle: "職業1", Reason: "理由1"},
			{JobTitle: "職業2", Reason: "理由2"},
			{JobTitle: "職業3", Reason: "理由3"},
		},
		QuantitativeScores: map[string]int{
			"継続・集中力": 8,
			"実行・行動力": 7,
			"共感・協調性": 6,
			"論理・分析力": 9,
			"創造・発想力": 7,
			"計画・堅実性": 8,
		},
		RawResponse:    `{"mock":"response"}`,
		ProcessingTime: 2.5,
	}

	analysis, err := NewAnalysis("面談記録テキスト", nil, result)
	require.NoError(t, err)

	assert.NotEqual(t, analysis.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, len([]rune("面談記録テキスト")), analysis.InputLength)
	assert.False(t, analysis.Indexed)

	restored, err := analysis.Result()
	require.NoError(t, err)
	assert.Equal(t, result.Strengths, restored.Strengths)
	assert.Equal(t, result.PotentialJobs, restored.PotentialJobs)
	assert.Equal(t, result.QuantitativeScores, restored.QuantitativeScores)
	assert.Equal(t, result.RawResponse, restored.RawResponse)
	assert.Equal(t, result.ProcessingTime, restored.ProcessingTime)
}

func TestCapabilityDimensions(t *testing.T) {
	dims := CapabilityDimensions()

	require.Len(t, dims, 6)
	assert.Equal(t, DimensionPersistence, dims[0])
	assert.Equal(t, DimensionPlanning, dims[5])

	for _, d := range dims {
		assert.True(t, IsValidDimension(string(d)))
	}
	assert.False(t, IsValidDimension("存在しない次元"))
}
