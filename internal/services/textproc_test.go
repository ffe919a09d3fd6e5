package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessText(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "一行目 二行目 三行目", PreprocessText("  一行目\n\n二行目\t 三行目  "))
	})

	t.Run("dedupes repeated punctuation", func(t *testing.T) {
		assert.Equal(t, "すごい！本当？そう。", PreprocessText("すごい！！！本当？？そう。。。"))
	})

	t.Run("normalizes curly quotes", func(t *testing.T) {
		assert.Equal(t, `"quoted" and 'single'`, PreprocessText("“quoted” and ‘single’"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", PreprocessText(""))
	})
}

func TestCleanExtractedText(t *testing.T) {
	input := "  一行目  \n\n\n  二行目\n\n三行目   \n"
	assert.Equal(t, "一行目\n二行目\n三行目", CleanExtractedText(input))
}
