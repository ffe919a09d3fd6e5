package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	t.Run("empty text rejected", func(t *testing.T) {
		err := ValidateInput("")
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Reason, "空です")
	})

	t.Run("whitespace only rejected", func(t *testing.T) {
		err := ValidateInput("   \n\t  ")
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Reason, "空です")
	})

	t.Run("nine characters rejected as too short", func(t *testing.T) {
		err := ValidateInput(strings.Repeat("あ", 9))
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Reason, "短すぎます")
	})

	t.Run("ten characters accepted", func(t *testing.T) {
		assert.NoError(t, ValidateInput(strings.Repeat("あ", 10)))
	})

	t.Run("ten thousand characters accepted", func(t *testing.T) {
		assert.NoError(t, ValidateInput(strings.Repeat("あ", 10000)))
	})

	t.Run("over limit rejected with actual length", func(t *testing.T) {
		err := ValidateInput(strings.Repeat("あ", 10001))
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Reason, "長すぎます")
		assert.Contains(t, inputErr.Reason, "10001")
	})

	t.Run("typical note accepted", func(t *testing.T) {
		assert.NoError(t, ValidateInput("これは有効なテストテキストです。十分な長さがあります。"))
	})
}
