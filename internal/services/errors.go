package services

import (
	"errors"
	"fmt"
)

// Error taxonomy for the analysis pipeline. Input and configuration problems
// are never retried; transport, malformed-reply and schema errors are retried
// until no attempts remain, then wrapped in AnalysisFailedError.

// InputError rejects text before any prompt is built or network call made.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// MalformedReplyError means the model reply could not be decoded as JSON.
// Snippet holds at most the first 500 characters of the raw reply.
type MalformedReplyError struct {
	Cause   error
	Snippet string
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("JSON解析に失敗しました: %v\nレスポンス: %s", e.Cause, e.Snippet)
}

func (e *MalformedReplyError) Unwrap() error {
	return e.Cause
}

// SchemaError means the decoded reply violates the fixed result shape.
// Description names the specific missing key, wrong count or bad score.
type SchemaError struct {
	Description string
}

func (e *SchemaError) Error() string {
	return e.Description
}

// AnalysisFailedError is terminal: every attempt failed. LastErr is the
// failure of the final attempt.
type AnalysisFailedError struct {
	Attempts int
	LastErr  error
}

func (e *AnalysisFailedError) Error() string {
	return fmt.Sprintf("API呼び出しが失敗しました（%d回試行）: %v", e.Attempts, e.LastErr)
}

func (e *AnalysisFailedError) Unwrap() error {
	return e.LastErr
}

// IsRetryable reports whether a failed attempt may be retried. Only input
// errors are final mid-loop; everything the service or parser produces can
// succeed on the next call.
func IsRetryable(err error) bool {
	var inputErr *InputError
	return !errors.As(err, &inputErr)
}
