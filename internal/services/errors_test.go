package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(&InputError{Reason: "入力テキストが空です"}))
	assert.True(t, IsRetryable(&MalformedReplyError{Cause: errors.New("unexpected end of JSON input")}))
	assert.True(t, IsRetryable(&SchemaError{Description: "強みは5項目である必要があります"}))
	assert.True(t, IsRetryable(errors.New("service unavailable")))
}

func TestAnalysisFailedError_Message(t *testing.T) {
	err := &AnalysisFailedError{Attempts: 3, LastErr: errors.New("タイムアウト")}

	assert.Contains(t, err.Error(), "3回試行")
	assert.Contains(t, err.Error(), "タイムアウト")
	assert.ErrorContains(t, errors.Unwrap(err), "タイムアウト")
}
