package services

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minInputLength = 10
	maxInputLength = 10000
)

// ValidateInput checks counseling note text before analysis. Length limits
// count runes, not bytes, since input is mostly Japanese.
func ValidateInput(text string) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return &InputError{Reason: "入力テキストが空です。分析対象のテキストを入力してください。"}
	}

	if utf8.RuneCountInString(trimmed) < minInputLength {
		return &InputError{Reason: "入力テキストが短すぎます。より詳細な内容を入力してください。"}
	}

	if length := utf8.RuneCountInString(text); length > maxInputLength {
		return &InputError{
			Reason: fmt.Sprintf("入力テキストが長すぎます。%d文字ですが、上限は%d文字です。", length, maxInputLength),
		}
	}

	return nil
}
