package services

import (
	"math"
	"sort"

	"alfredoptarigan/insight-compass/internal/models"
)

// Score statistics over the six-dimension vector. Pure functions, shared by
// the statistics endpoint and the export reports.

// ComputeStatistics returns the aggregate measures of a score map. Standard
// deviation is the population form, matching a full census of the six axes.
func ComputeStatistics(scores map[string]int) models.StatisticsData {
	values := make([]float64, 0, len(scores))
	for _, dimension := range models.CapabilityDimensions() {
		values = append(values, float64(scores[string(dimension)]))
	}

	var sum, max, min float64
	max = math.Inf(-1)
	min = math.Inf(1)

	for _, v := range values {
		sum += v
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return models.StatisticsData{
		Mean:   mean,
		Max:    max,
		Min:    min,
		StdDev: math.Sqrt(variance),
		Median: median(values),
		Sum:    sum,
		Range:  max - min,
	}
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// OrderedScores lists the scores in canonical dimension order.
func OrderedScores(scores map[string]int) []models.ScoreEntry {
	entries := make([]models.ScoreEntry, 0, len(models.CapabilityDimensions()))
	for _, dimension := range models.CapabilityDimensions() {
		entries = append(entries, models.ScoreEntry{
			Dimension: string(dimension),
			Score:     scores[string(dimension)],
		})
	}
	return entries
}

// TopN returns the n highest-scoring dimensions, descending by score; ties
// keep canonical dimension order.
func TopN(scores map[string]int, n int) []models.ScoreEntry {
	entries := OrderedScores(scores)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return clampEntries(entries, n)
}

// BottomN returns the n lowest-scoring dimensions, ascending by score; ties
// keep canonical dimension order.
func BottomN(scores map[string]int, n int) []models.ScoreEntry {
	entries := OrderedScores(scores)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	return clampEntries(entries, n)
}

func clampEntries(entries []models.ScoreEntry, n int) []models.ScoreEntry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
