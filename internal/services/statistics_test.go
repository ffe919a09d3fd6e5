package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/insight-compass/internal/models"
)

// Fixture in canonical dimension order: 8, 7, 6, 9, 7, 8.
func fixtureScores() map[string]int {
	return map[string]int{
		"継続・集中力": 8,
		"実行・行動力": 7,
		"共感・協調性": 6,
		"論理・分析力": 9,
		"創造・発想力": 7,
		"計画・堅実性": 8,
	}
}

func TestComputeStatistics(t *testing.T) {
	stats := ComputeStatistics(fixtureScores())

	assert.InDelta(t, 7.5, stats.Mean, 1e-9)
	assert.InDelta(t, 9, stats.Max, 1e-9)
	assert.InDelta(t, 6, stats.Min, 1e-9)
	assert.InDelta(t, 7.5, stats.Median, 1e-9)
	assert.InDelta(t, 45, stats.Sum, 1e-9)
	assert.InDelta(t, 3, stats.Range, 1e-9)
	// Population standard deviation: sqrt(5.5/6)
	assert.InDelta(t, 0.9574271077563381, stats.StdDev, 1e-9)
}

func TestTopN(t *testing.T) {
	top := TopN(fixtureScores(), 3)

	require.Len(t, top, 3)
	assert.Equal(t, models.ScoreEntry{Dimension: "論理・分析力", Score: 9}, top[0])
	// The two 8s keep canonical dimension order.
	assert.Equal(t, models.ScoreEntry{Dimension: "継続・集中力", Score: 8}, top[1])
	assert.Equal(t, models.ScoreEntry{Dimension: "計画・堅実性", Score: 8}, top[2])
}

func TestBottomN(t *testing.T) {
	bottom := BottomN(fixtureScores(), 2)

	require.Len(t, bottom, 2)
	assert.Equal(t, models.ScoreEntry{Dimension: "共感・協調性", Score: 6}, bottom[0])
	assert.Equal(t, models.ScoreEntry{Dimension: "実行・行動力", Score: 7}, bottom[1])
}

func TestTopN_ClampsCount(t *testing.T) {
	assert.Len(t, TopN(fixtureScores(), 100), 6)
	assert.Empty(t, TopN(fixtureScores(), 0))
	assert.Empty(t, BottomN(fixtureScores(), -1))
}

func TestOrderedScores(t *testing.T) {
	entries := OrderedScores(fixtureScores())

	require.Len(t, entries, 6)
	for i, dimension := range models.CapabilityDimensions() {
		assert.Equal(t, string(dimension), entries[i].Dimension)
	}
	assert.Equal(t, 8, entries[0].Score)
	assert.Equal(t, 8, entries[5].Score)
}
