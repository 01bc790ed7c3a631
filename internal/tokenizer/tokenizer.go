package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits a stream of runes into words under a Config.
//
// A Tokenizer is fed input incrementally; each Add method returns the
// receiver so calls chain. Strings finalizes the tokenizer, after which it
// is spent: callers wanting to retry build a fresh one from the Config.
//
// The machine is in exactly one of three states at any time: normal
// (quote == nil, !escaping), quoting (quote != nil), or resolving an
// escape (escaping). An escape always returns to the state encoded by
// quote, so escape depth never exceeds one and quotes never nest.
type Tokenizer struct {
	cfg Config

	words    []string
	buf      []rune
	inWord   bool
	quote    *QuotePair // non-nil while inside a quoted region
	escaping bool       // leader seen; the next rune resolves the escape
	err      error      // sticky; the first error wins
}

// New creates a Tokenizer with empty state for the given Config.
func New(cfg Config) *Tokenizer {
	return &Tokenizer{cfg: cfg}
}

// AddRune feeds a single rune to the tokenizer.
func (t *Tokenizer) AddRune(r rune) *Tokenizer {
	switch {
	case t.err != nil:
		// Fail-fast: everything after the first error is ignored.
	case t.escaping:
		t.resolveEscape(r)
	case t.quote != nil:
		t.quotedRune(r)
	default:
		t.normalRune(r)
	}
	return t
}

// AddRunes feeds runes in order.
func (t *Tokenizer) AddRunes(rs []rune) *Tokenizer {
	for _, r := range rs {
		t.AddRune(r)
	}
	return t
}

// AddString feeds every rune of s in order.
func (t *Tokenizer) AddString(s string) *Tokenizer {
	for _, r := range s {
		t.AddRune(r)
	}
	return t
}

// AddLine trims leading and trailing whitespace from s and feeds the rest.
// Whitespace inside s is still significant; only the input's edges are
// trimmed, never individual words.
func (t *Tokenizer) AddLine(s string) *Tokenizer {
	return t.AddString(strings.TrimSpace(s))
}

// Strings finalizes the tokenizer and returns the completed words in the
// order their boundaries were reached. On error no partial word list is
// returned.
func (t *Tokenizer) Strings() ([]string, error) {
	switch {
	case t.err != nil:
		return nil, t.err
	case t.escaping:
		return nil, ErrDanglingEscape
	case t.quote != nil:
		return nil, ErrUnterminatedQuote
	}
	if t.inWord {
		t.flush()
	}
	return t.words, nil
}

// resolveEscape handles the rune following the escape leader.
func (t *Tokenizer) resolveEscape(r rune) {
	t.escaping = false
	if len(t.cfg.EscapePairs) == 0 {
		// Identity escaping: the rune stands for itself.
		t.emit(r)
		return
	}
	lit, ok := t.cfg.EscapePairs[r]
	if !ok {
		t.err = &UnrecognizedEscapeError{Char: r}
		return
	}
	t.emit(lit)
}

// normalRune handles a rune outside any quote or escape.
func (t *Tokenizer) normalRune(r rune) {
	if unicode.IsSpace(r) {
		// Runs of whitespace collapse; leading whitespace yields no word.
		if t.inWord {
			t.flush()
		}
		return
	}
	if pair, ok := t.cfg.QuotePairs[r]; ok {
		// The opener is consumed, not emitted. inWord is set here so an
		// immediately closed quote still yields an empty word.
		t.quote = &pair
		t.inWord = true
		return
	}
	if t.cfg.Leader != 0 && r == t.cfg.Leader {
		t.escaping = true
		t.inWord = true
		return
	}
	t.emit(r)
}

// quotedRune handles a rune between quotes.
func (t *Tokenizer) quotedRune(r rune) {
	switch {
	case r == t.quote.Close:
		// The closer is consumed without flushing: quoted content fuses
		// with whatever follows before the next separator.
		t.quote = nil
	case t.quote.Mode == ParseEscapes && t.cfg.Leader != 0 && r == t.cfg.Leader:
		t.escaping = true
	default:
		// Every other rune is literal, including openers of this or any
		// other quote pair.
		t.emit(r)
	}
}

// emit appends r to the word in progress.
func (t *Tokenizer) emit(r rune) {
	t.buf = append(t.buf, r)
	t.inWord = true
}

// flush completes the word in progress, even when it is empty.
func (t *Tokenizer) flush() {
	t.words = append(t.words, string(t.buf))
	t.buf = t.buf[:0]
	t.inWord = false
}
