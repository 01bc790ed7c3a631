package words

import (
	"github.com/shapestone/shape-words/internal/tokenizer"
)

// Splitting errors. The machine lives in internal/tokenizer; the values
// and types are re-exported here so callers only ever import this
// package. Compare sentinels with errors.Is and structured errors with
// errors.As.
var (
	// ErrUnterminatedQuote indicates the input ended while a quoted
	// region was still open.
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote

	// ErrDanglingEscape indicates the input ended with an escape leader
	// that was never resolved.
	ErrDanglingEscape = tokenizer.ErrDanglingEscape
)

// UnrecognizedEscapeError reports an escape sequence whose trigger rune
// is not registered in the dialect's EscapePairs. Char is the rune that
// followed the escape leader.
type UnrecognizedEscapeError = tokenizer.UnrecognizedEscapeError

// ConfigError represents an invalid dialect configuration, whether built
// in code or loaded from a file.
type ConfigError = tokenizer.ConfigError
