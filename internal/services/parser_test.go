package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponseData() map[string]interface{} {
	return map[string]interface{}{
		"qualitative_analysis": map[string]interface{}{
			"strengths": []interface{}{
				"高い集中力を持つ",
				"思慮深い判断力",
				"好奇心が旺盛",
				"行動の切り替えが早い",
				"継続的な実行力",
			},
			"potential_jobs": []interface{}{
				map[string]interface{}{
					"job_title": "データアナリスト",
					"reason":    "論理的思考力と集中力を活かせる",
				},
				map[string]interface{}{
					"job_title": "プロジェクトマネージャー",
					"reason":    "計画性と実行力が求められる職種",
				},
				map[string]interface{}{
					"job_title": "UXデザイナー",
					"reason":    "創造性と共感力を活用できる",
				},
			},
		},
		"quantitative_scores": map[string]interface{}{
			"継続・集中力": 8,
			"実行・行動力": 7,
			"共感・協調性": 6,
			"論理・分析力": 9,
			"創造・発想力": 7,
			"計画・堅実性": 8,
		},
	}
}

func encodeResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return string(raw)
}

func TestParseAnalysisResponse_Valid(t *testing.T) {
	raw := encodeResponse(t, sampleResponseData())

	parsed, err := ParseAnalysisResponse(raw)
	require.NoError(t, err)

	assert.Len(t, parsed.Strengths, 5)
	assert.Equal(t, "高い集中力を持つ", parsed.Strengths[0])
	assert.Len(t, parsed.PotentialJobs, 3)
	assert.Equal(t, "データアナリスト", parsed.PotentialJobs[0].JobTitle)
	assert.Len(t, parsed.Scores, 6)
	assert.Equal(t, 9, parsed.Scores["論理・分析力"])
}

func TestParseAnalysisResponse_StripsCodeFence(t *testing.T) {
	raw := encodeResponse(t, sampleResponseData())
	fenced := fmt.Sprintf("```json\n%s\n```", raw)

	plain, err := ParseAnalysisResponse(raw)
	require.NoError(t, err)

	wrapped, err := ParseAnalysisResponse(fenced)
	require.NoError(t, err)

	assert.Equal(t, plain, wrapped)
}

func TestParseAnalysisResponse_MalformedJSON(t *testing.T) {
	longGarbage := "これはJSONではありません " + strings.Repeat("x", 1000)

	_, err := ParseAnalysisResponse(longGarbage)
	require.Error(t, err)

	var malformed *MalformedReplyError
	require.ErrorAs(t, err, &malformed)
	assert.LessOrEqual(t, len([]rune(malformed.Snippet)), 500)
	assert.Contains(t, err.Error(), "JSON解析に失敗しました")
}

func TestParseAnalysisResponse_MissingSections(t *testing.T) {
	t.Run("missing qualitative_analysis", func(t *testing.T) {
		data := sampleResponseData()
		delete(data, "qualitative_analysis")

		_, err := ParseAnalysisResponse(encodeResponse(t, data))
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Description, "qualitative_analysis")
	})

	t.Run("missing quantitative_scores", func(t *testing.T) {
		data := sampleResponseData()
		delete(data, "quantitative_scores")

		_, err := ParseAnalysisResponse(encodeResponse(t, data))
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Description, "quantitative_scores")
	})
}

func TestParseAnalysisResponse_WrongStrengthCount(t *testing.T) {
	for _, count := range []int{4, 6} {
		t.Run(fmt.Sprintf("%d strengths", count), func(t *testing.T) {
			data := sampleResponseData()
			strengths := make([]interface{}, count)
			for i := range strengths {
				strengths[i] = fmt.Sprintf("強み%d", i+1)
			}
			data["qualitative_analysis"].(map[string]interface{})["strengths"] = strengths

			_, err := ParseAnalysisResponse(encodeResponse(t, data))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, schemaErr.Description, "強みは5項目")
		})
	}
}

func TestParseAnalysisResponse_WrongJobCount(t *testing.T) {
	data := sampleResponseData()
	qual := data["qualitative_analysis"].(map[string]interface{})
	qual["potential_jobs"] = qual["potential_jobs"].([]interface{})[:2]

	_, err := ParseAnalysisResponse(encodeResponse(t, data))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Description, "職業適性は3項目")
}

func TestParseAnalysisResponse_JobMissingReason(t *testing.T) {
	data := sampleResponseData()
	qual := data["qualitative_analysis"].(map[string]interface{})
	jobs := qual["potential_jobs"].([]interface{})
	jobs[1] = map[string]interface{}{"job_title": "研究者"}

	_, err := ParseAnalysisResponse(encodeResponse(t, data))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Description, "職業適性2")
}

func TestParseAnalysisResponse_MissingDimension(t *testing.T) {
	data := sampleResponseData()
	scores := data["quantitative_scores"].(map[string]interface{})
	delete(scores, "創造・発想力")

	_, err := ParseAnalysisResponse(encodeResponse(t, data))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Description, "創造・発想力")
}

func TestParseAnalysisResponse_InvalidScores(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
	}{
		{"zero", 0},
		{"eleven", 11},
		{"negative", -3},
		{"float", 7.5},
		{"boolean", true},
		{"string", "8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := sampleResponseData()
			data["quantitative_scores"].(map[string]interface{})["共感・協調性"] = tc.value

			_, err := ParseAnalysisResponse(encodeResponse(t, data))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, schemaErr.Description, "共感・協調性")
			assert.Contains(t, schemaErr.Description, "1-10の整数")
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`  {"a":1}  `))
	// Only a single wrapping pair is stripped.
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json{\"a\":1}```"))
}
