package tokenizer

import (
	"errors"
	"reflect"
	"testing"
)

// shellConfig returns a POSIX-shell-like dialect: single quotes literal,
// double quotes with escapes, identity escaping via backslash.
func shellConfig() Config {
	return Config{
		QuotePairs: map[rune]QuotePair{
			'\'': {Close: '\'', Mode: IgnoreEscapes},
			'"':  {Close: '"', Mode: ParseEscapes},
		},
		Leader: '\\',
	}
}

// cConfig returns a C-string-like dialect with a fixed escape map.
func cConfig() Config {
	return Config{
		QuotePairs: map[rune]QuotePair{
			'"': {Close: '"', Mode: ParseEscapes},
		},
		EscapePairs: map[rune]rune{
			'n': '\n', 'r': '\r', 't': '\t', '"': '"', '\'': '\'', '\\': '\\',
		},
		Leader: '\\',
	}
}

// TestTokenizer_Split tests end-to-end splitting across dialects.
func TestTokenizer_Split(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			cfg:      shellConfig(),
			input:    "",
			expected: nil,
		},
		{
			name:     "single word",
			cfg:      shellConfig(),
			input:    "abc",
			expected: []string{"abc"},
		},
		{
			name:     "multiple words",
			cfg:      shellConfig(),
			input:    "one two three",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "whitespace runs collapse",
			cfg:      shellConfig(),
			input:    "a  \t b",
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace only",
			cfg:      Config{},
			input:    " \t ",
			expected: nil,
		},
		{
			name:     "no quoting or escaping treats delimiters literally",
			cfg:      Config{},
			input:    `this "ignores quotes" and \slashes`,
			expected: []string{"this", `"ignores`, `quotes"`, "and", `\slashes`},
		},
		{
			name:     "empty quoted word survives",
			cfg:      shellConfig(),
			input:    `a "" b`,
			expected: []string{"a", "", "b"},
		},
		{
			name:     "empty single-quoted word survives",
			cfg:      shellConfig(),
			input:    "a '' b",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "escaped space joins words",
			cfg:      shellConfig(),
			input:    `a\ b`,
			expected: []string{"a b"},
		},
		{
			name:     "closing a quote does not end the word",
			cfg:      shellConfig(),
			input:    `"ab"cd`,
			expected: []string{"abcd"},
		},
		{
			name:     "word continues into a quote",
			cfg:      shellConfig(),
			input:    `ab"cd ef"`,
			expected: []string{"abcd ef"},
		},
		{
			name:     "single quotes keep leader literal",
			cfg:      shellConfig(),
			input:    `'word\ "4"'`,
			expected: []string{`word\ "4"`},
		},
		{
			name:     "double quotes honor identity escapes",
			cfg:      shellConfig(),
			input:    `"word\ 3"`,
			expected: []string{"word 3"},
		},
		{
			name:     "other openers are literal inside quotes",
			cfg:      shellConfig(),
			input:    `"it's" 'a "b"'`,
			expected: []string{"it's", `a "b"`},
		},
		{
			name:     "same opener inside ignore-escapes quote closes it",
			cfg:      shellConfig(),
			input:    "'ab'cd'ef'",
			expected: []string{"abcdef"},
		},
		{
			name:     "c-style escape translation",
			cfg:      cConfig(),
			input:    `"a\nb"`,
			expected: []string{"a\nb"},
		},
		{
			name:     "c-style escape outside quotes",
			cfg:      cConfig(),
			input:    `abc\nde`,
			expected: []string{"abc\nde"},
		},
		{
			name:     "c-style escaped backslashes",
			cfg:      cConfig(),
			input:    `enqueue file "C:\\Users\\Test\\Artist - Title.mp3" 1`,
			expected: []string{"enqueue", "file", `C:\Users\Test\Artist - Title.mp3`, "1"},
		},
		{
			name:     "leader disabled leaves ParseEscapes quotes literal",
			cfg:      Config{QuotePairs: map[rune]QuotePair{'"': {Close: '"', Mode: ParseEscapes}}},
			input:    `"a\nb"`,
			expected: []string{`a\nb`},
		},
		{
			name:     "multibyte runes pass through",
			cfg:      shellConfig(),
			input:    `héllo "wörld two"`,
			expected: []string{"héllo", "wörld two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg).AddString(tt.input).Strings()
			if err != nil {
				t.Fatalf("Strings() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Strings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestTokenizer_Errors tests the terminal failure modes.
func TestTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		input string
		want  error
	}{
		{
			name:  "unterminated double quote",
			cfg:   shellConfig(),
			input: `"abc`,
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "unterminated single quote",
			cfg:   shellConfig(),
			input: "'abc",
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "dangling escape",
			cfg:   shellConfig(),
			input: `abc\`,
			want:  ErrDanglingEscape,
		},
		{
			name:  "dangling escape inside quote",
			cfg:   shellConfig(),
			input: `"abc\`,
			want:  ErrDanglingEscape,
		},
		{
			name:  "c-style unterminated quote",
			cfg:   cConfig(),
			input: `"abcde`,
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "c-style dangling escape",
			cfg:   cConfig(),
			input: `zxcvbn m\`,
			want:  ErrDanglingEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg).AddString(tt.input).Strings()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Strings() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("Strings() returned words %q alongside error", got)
			}
		})
	}
}

// TestTokenizer_UnrecognizedEscape tests the structured escape error.
func TestTokenizer_UnrecognizedEscape(t *testing.T) {
	_, err := New(cConfig()).AddString(`"a\qb"`).Strings()
	var escErr *UnrecognizedEscapeError
	if !errors.As(err, &escErr) {
		t.Fatalf("Strings() error = %v, want *UnrecognizedEscapeError", err)
	}
	if escErr.Char != 'q' {
		t.Errorf("Char = %q, want %q", escErr.Char, 'q')
	}
}

// TestTokenizer_FailFast verifies that input after the first error is
// ignored and the original error is the one reported.
func TestTokenizer_FailFast(t *testing.T) {
	tok := New(cConfig()).AddString(`\q`)
	tok.AddString(` perfectly "fine input"`)

	_, err := tok.Strings()
	var escErr *UnrecognizedEscapeError
	if !errors.As(err, &escErr) {
		t.Fatalf("Strings() error = %v, want *UnrecognizedEscapeError", err)
	}
	if escErr.Char != 'q' {
		t.Errorf("Char = %q, want %q", escErr.Char, 'q')
	}
}

// TestTokenizer_Incremental verifies that feeding rune by rune matches
// feeding the whole string, including across construct boundaries.
func TestTokenizer_Incremental(t *testing.T) {
	input := `one "two three" four\ five`

	tok := New(shellConfig())
	for _, r := range input {
		tok = tok.AddRune(r)
	}
	got, err := tok.Strings()
	if err != nil {
		t.Fatalf("Strings() error = %v", err)
	}

	want, err := New(shellConfig()).AddString(input).Strings()
	if err != nil {
		t.Fatalf("Strings() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rune-by-rune = %q, all-at-once = %q", got, want)
	}
}

// TestTokenizer_AddRunes tests the rune-slice entry point.
func TestTokenizer_AddRunes(t *testing.T) {
	got, err := New(shellConfig()).AddRunes([]rune{'a', 'b', ' ', 'c'}).Strings()
	if err != nil {
		t.Fatalf("Strings() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"ab", "c"}) {
		t.Errorf("Strings() = %q, want %q", got, []string{"ab", "c"})
	}
}

// TestTokenizer_AddLine verifies trimming happens on the input's edges,
// never on individual words.
func TestTokenizer_AddLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"leading whitespace", "     abc def", []string{"abc", "def"}},
		{"trailing whitespace", "ghi jkl     \n", []string{"ghi", "jkl"}},
		{"quoted whitespace survives", `  " a b "  `, []string{" a b "}},
		{"blank line", "   \t\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(shellConfig()).AddLine(tt.input).Strings()
			if err != nil {
				t.Fatalf("Strings() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Strings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestTokenizer_EmptyConfigIsPlainSplit verifies the zero Config behaves
// like whitespace splitting with no further interpretation.
func TestTokenizer_EmptyConfigIsPlainSplit(t *testing.T) {
	got, err := New(Config{}).AddString("  a\tb\nc  ").Strings()
	if err != nil {
		t.Fatalf("Strings() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Strings() = %q, want %q", got, []string{"a", "b", "c"})
	}
}
