// Package tokenizer implements the word-splitting state machine behind
// pkg/words.
//
// The tokenizer consumes runes one at a time against a Config describing
// quote pairs and escape sequences, and accumulates completed words. The
// public package mirrors these types; everything here is internal wiring.
package tokenizer

import (
	"fmt"
	"unicode"
)

// QuoteMode selects how escape sequences behave between a quote pair.
type QuoteMode int

const (
	// IgnoreEscapes treats everything up to the closing quote as literal
	// text; the escape leader has no special meaning. This is POSIX shell
	// single-quoting.
	IgnoreEscapes QuoteMode = iota

	// ParseEscapes honors escape sequences between the quotes. This is
	// roughly POSIX shell double-quoting.
	ParseEscapes
)

// String returns the string representation of QuoteMode.
func (m QuoteMode) String() string {
	switch m {
	case IgnoreEscapes:
		return "ignore-escapes"
	case ParseEscapes:
		return "parse-escapes"
	default:
		return fmt.Sprintf("QuoteMode(%d)", int(m))
	}
}

// QuotePair holds the closing half of a quote pair and the escape handling
// that applies between the quotes.
type QuotePair struct {
	// Close is the rune that ends the quoted region.
	Close rune
	// Mode selects whether escape sequences are honored inside the quotes.
	Mode QuoteMode
}

// Config describes a word-splitting dialect. A Config is treated as
// immutable once built and may back any number of Tokenizers.
type Config struct {
	// QuotePairs maps an opening quote rune to its closing rune and mode.
	// At most one quote context is ever active: an opener seen inside a
	// quoted region is a literal character.
	QuotePairs map[rune]QuotePair

	// EscapePairs maps the rune following the escape leader to the literal
	// rune it produces. An empty map means identity escaping: any rune
	// after the leader stands for itself. A non-empty map makes unlisted
	// runes an error.
	EscapePairs map[rune]rune

	// Leader is the rune that introduces an escape sequence.
	// 0 disables escape processing entirely, even inside ParseEscapes
	// quotes.
	Leader rune
}

// Validate reports configurations that cannot behave the way they read.
// Validation is advisory: an unvalidated Config still tokenizes, with the
// quote-open check taking priority over the escape leader.
func (c Config) Validate() error {
	for open, pair := range c.QuotePairs {
		if unicode.IsSpace(open) {
			return &ConfigError{Field: "QuotePairs", Message: fmt.Sprintf("opener %q is whitespace", open)}
		}
		if unicode.IsSpace(pair.Close) {
			return &ConfigError{Field: "QuotePairs", Message: fmt.Sprintf("closer %q is whitespace", pair.Close)}
		}
		if c.Leader != 0 && open == c.Leader {
			return &ConfigError{Field: "QuotePairs", Message: fmt.Sprintf("opener %q is also the escape leader", open)}
		}
	}
	if c.Leader != 0 && unicode.IsSpace(c.Leader) {
		return &ConfigError{Field: "Leader", Message: fmt.Sprintf("leader %q is whitespace", c.Leader)}
	}
	if c.Leader == 0 && len(c.EscapePairs) > 0 {
		return &ConfigError{Field: "EscapePairs", Message: "escape pairs registered without a leader"}
	}
	return nil
}
