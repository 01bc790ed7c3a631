// Package words splits lines of text into words with configurable quoting
// and escape-sequence rules.
//
// It provides POSIX-shell-like and C-like lexical splitting without any
// expansion semantics: no variable substitution, no command substitution,
// no globbing. Programs that accept command lines (shells, REPLs, config
// parsers) use it to turn a raw line into an argument vector.
//
// # Presets
//
// Three stock dialects cover the common cases:
//
//   - Whitespace: no quoting or escaping; words are maximal runs of
//     non-whitespace characters.
//   - Shell: '...' is literal, "..." honors escapes, and a backslash
//     escapes any single character.
//   - C: "..." honors escapes, and backslash sequences such as \n and \t
//     translate to their C meanings.
//
// Custom dialects are built directly as a Config, or loaded from a YAML
// description with LoadConfig.
//
// # One-call splitting
//
//	args, err := words.Split(`cp "my file" /tmp`)
//	// args = ["cp", "my file", "/tmp"]
//
// Split trims leading and trailing whitespace from the line before
// splitting. Whitespace inside quotes is always preserved.
//
// # Incremental use
//
// A Tokenizer accepts input piecewise, which suits interactive callers
// that may need to ask for continuation lines:
//
//	tok := words.NewTokenizer(words.Shell())
//	tok.AddString(`echo "hello `)
//	tok.AddString(`world"`)
//	args, err := tok.Strings()
//
// Strings finalizes the tokenizer. It returns either the full word list
// or exactly one error; a tokenizer that has been finalized is spent, and
// retrying means building a fresh one from the same Config.
//
// # Thread Safety
//
// A Config is immutable once built and safe to share across goroutines.
// A Tokenizer owns mutable state and must be confined to one goroutine.
package words

import (
	"github.com/shapestone/shape-words/internal/tokenizer"
)

// Tokenizer accumulates input incrementally and produces the completed
// word list on finalization. Create one with NewTokenizer.
type Tokenizer struct {
	inner *tokenizer.Tokenizer
}

// NewTokenizer creates an empty Tokenizer for the dialect described by cfg.
func NewTokenizer(cfg Config) *Tokenizer {
	return &Tokenizer{inner: tokenizer.New(cfg.internal())}
}

// AddRune feeds a single rune. It returns the receiver so calls chain.
func (t *Tokenizer) AddRune(r rune) *Tokenizer {
	t.inner.AddRune(r)
	return t
}

// AddRunes feeds runes in order.
func (t *Tokenizer) AddRunes(rs []rune) *Tokenizer {
	t.inner.AddRunes(rs)
	return t
}

// AddString feeds every rune of s in order.
func (t *Tokenizer) AddString(s string) *Tokenizer {
	t.inner.AddString(s)
	return t
}

// AddLine trims leading and trailing whitespace from s and feeds the
// rest. Only the edges of the input are trimmed, never individual words.
func (t *Tokenizer) AddLine(s string) *Tokenizer {
	t.inner.AddLine(s)
	return t
}

// Strings finalizes the tokenizer and returns the completed words in
// input order. It fails with ErrUnterminatedQuote if a quote is still
// open, ErrDanglingEscape if an escape leader is unresolved, or an
// UnrecognizedEscapeError recorded during feeding. No partial word list
// accompanies an error.
func (t *Tokenizer) Strings() ([]string, error) {
	return t.inner.Strings()
}

// Split trims line at the edges and splits it under c in one call.
func (c Config) Split(line string) ([]string, error) {
	return NewTokenizer(c).AddLine(line).Strings()
}

// Split splits line with the Shell dialect.
func Split(line string) ([]string, error) {
	return Shell().Split(line)
}

// SplitC splits line with the C dialect.
func SplitC(line string) ([]string, error) {
	return C().Split(line)
}

// SplitWhitespace splits line on runs of whitespace with no quoting or
// escaping, like strings.Fields.
func SplitWhitespace(line string) ([]string, error) {
	return Whitespace().Split(line)
}
