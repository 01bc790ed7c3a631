package words

import (
	"github.com/shapestone/shape-words/internal/tokenizer"
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
	return tokenizer.QuoteMode(m).String()
}

// QuotePair holds the closing half of a quote pair and the escape
// handling that applies between the quotes.
type QuotePair struct {
	// Close is the rune that ends the quoted region.
	Close rune
	// Mode selects whether escape sequences are honored inside the quotes.
	Mode QuoteMode
}

// Config describes a word-splitting dialect.
//
// The zero Config splits purely on whitespace. A Config is treated as
// immutable once built: every Tokenizer takes its own copy, so a single
// Config may back any number of concurrent splits.
type Config struct {
	// QuotePairs maps an opening quote rune to its closing rune and mode.
	// At most one quote context is ever active; an opener seen inside a
	// quoted region is a literal character.
	QuotePairs map[rune]QuotePair

	// EscapePairs maps the rune following the escape leader to the
	// literal rune it produces. An empty map means identity escaping: any
	// rune after the leader stands for itself. A non-empty map makes
	// unlisted runes an error.
	EscapePairs map[rune]rune

	// Leader is the rune that introduces an escape sequence.
	// 0 disables escape processing entirely, even inside ParseEscapes
	// quotes.
	Leader rune
}

// Validate reports configurations that cannot behave the way they read,
// such as an escape leader that is also a quote opener. Validation is
// advisory: an unvalidated Config still splits, with the quote-open check
// taking priority over the escape leader.
func (c Config) Validate() error {
	return c.internal().Validate()
}

// internal converts c into the internal representation, copying both maps
// so later mutation of the caller's Config cannot reach a running
// Tokenizer.
func (c Config) internal() tokenizer.Config {
	cfg := tokenizer.Config{Leader: c.Leader}
	if len(c.QuotePairs) > 0 {
		cfg.QuotePairs = make(map[rune]tokenizer.QuotePair, len(c.QuotePairs))
		for open, pair := range c.QuotePairs {
			cfg.QuotePairs[open] = tokenizer.QuotePair{
				Close: pair.Close,
				Mode:  tokenizer.QuoteMode(pair.Mode),
			}
		}
	}
	if len(c.EscapePairs) > 0 {
		cfg.EscapePairs = make(map[rune]rune, len(c.EscapePairs))
		for trigger, lit := range c.EscapePairs {
			cfg.EscapePairs[trigger] = lit
		}
	}
	return cfg
}
