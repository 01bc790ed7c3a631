package tokenizer

import (
	"errors"
	"fmt"
)

// Splitting errors
var (
	// ErrUnterminatedQuote indicates the input ended while a quoted region
	// was still open.
	ErrUnterminatedQuote = errors.New("words: unterminated quote")

	// ErrDanglingEscape indicates the input ended with an escape leader
	// that was never resolved.
	ErrDanglingEscape = errors.New("words: dangling escape")
)

// UnrecognizedEscapeError reports an escape sequence whose trigger rune is
// not registered in EscapePairs.
type UnrecognizedEscapeError struct {
	// Char is the rune that followed the escape leader.
	Char rune
}

// Error returns a formatted error message naming the offending rune.
func (e *UnrecognizedEscapeError) Error() string {
	return fmt.Sprintf("words: unrecognized escape %q", e.Char)
}

// ConfigError represents an invalid dialect configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "words: invalid " + e.Field + ": " + e.Message
}
