package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_Build(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.Build("面談記録のテキスト")

	assert.True(t, strings.HasPrefix(prompt, DefaultSystemPrompt))
	assert.Contains(t, prompt, "## 分析対象テキスト\n面談記録のテキスト")
	// Deterministic: same input, same prompt.
	assert.Equal(t, prompt, pb.Build("面談記録のテキスト"))
}

func TestPromptBuilder_CustomTemplate(t *testing.T) {
	pb := NewPromptBuilderWithTemplate("テスト用テンプレート")
	prompt := pb.Build("入力")

	assert.Equal(t, "テスト用テンプレート\n\n## 分析対象テキスト\n入力", prompt)
}

func TestDefaultSystemPrompt_Contract(t *testing.T) {
	// The template must name the reframing rule, both answer sections and
	// every dimension the parser validates against.
	assert.Contains(t, DefaultSystemPrompt, "リフレーミング")
	assert.Contains(t, DefaultSystemPrompt, "qualitative_analysis")
	assert.Contains(t, DefaultSystemPrompt, "quantitative_scores")
	assert.Contains(t, DefaultSystemPrompt, "strengths")
	assert.Contains(t, DefaultSystemPrompt, "potential_jobs")

	for _, dimension := range []string{"継続・集中力", "実行・行動力", "共感・協調性", "論理・分析力", "創造・発想力", "計画・堅実性"} {
		assert.Contains(t, DefaultSystemPrompt, dimension)
	}
}
