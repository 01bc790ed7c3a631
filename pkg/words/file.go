package words

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
)

// fileConfig is the YAML shape of a dialect description.
//
//	leader: "\\"
//	quotes:
//	  - open: '"'
//	    mode: parse-escapes
//	  - open: "'"
//	    mode: ignore-escapes
//	escapes:
//	  n: "\n"
//	  t: "\t"
type fileConfig struct {
	Leader  string            `yaml:"leader"`
	Quotes  []fileQuote       `yaml:"quotes"`
	Escapes map[string]string `yaml:"escapes"`
}

type fileQuote struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
	Mode  string `yaml:"mode"`
}

// LoadConfig reads a YAML dialect description from path.
func LoadConfig(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("words: reading config: %w", err)
	}
	return ParseConfig(buf)
}

// ParseConfig parses a YAML dialect description.
//
// Every character field must hold exactly one rune. A quote entry's close
// defaults to its open, and its mode defaults to ignore-escapes. The
// resulting Config is validated before it is returned.
func ParseConfig(buf []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return Config{}, fmt.Errorf("words: parsing config: %w", err)
	}

	var cfg Config
	if fc.Leader != "" {
		leader, err := singleRune("leader", fc.Leader)
		if err != nil {
			return Config{}, err
		}
		cfg.Leader = leader
	}

	if len(fc.Quotes) > 0 {
		cfg.QuotePairs = make(map[rune]QuotePair, len(fc.Quotes))
		for _, q := range fc.Quotes {
			open, err := singleRune("quotes.open", q.Open)
			if err != nil {
				return Config{}, err
			}
			closer := open
			if q.Close != "" {
				closer, err = singleRune("quotes.close", q.Close)
				if err != nil {
					return Config{}, err
				}
			}
			mode, err := parseMode(q.Mode)
			if err != nil {
				return Config{}, err
			}
			if _, dup := cfg.QuotePairs[open]; dup {
				return Config{}, &ConfigError{Field: "quotes", Message: fmt.Sprintf("duplicate opener %q", open)}
			}
			cfg.QuotePairs[open] = QuotePair{Close: closer, Mode: mode}
		}
	}

	if len(fc.Escapes) > 0 {
		cfg.EscapePairs = make(map[rune]rune, len(fc.Escapes))
		for trigger, lit := range fc.Escapes {
			tr, err := singleRune("escapes", trigger)
			if err != nil {
				return Config{}, err
			}
			lr, err := singleRune("escapes", lit)
			if err != nil {
				return Config{}, err
			}
			cfg.EscapePairs[tr] = lr
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseMode maps the YAML mode names onto QuoteMode. An empty mode means
// ignore-escapes.
func parseMode(s string) (QuoteMode, error) {
	switch s {
	case "", "ignore-escapes":
		return IgnoreEscapes, nil
	case "parse-escapes":
		return ParseEscapes, nil
	default:
		return 0, &ConfigError{Field: "quotes.mode", Message: fmt.Sprintf("unknown mode %q", s)}
	}
}

// singleRune decodes s as exactly one rune.
func singleRune(field, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, &ConfigError{Field: field, Message: fmt.Sprintf("%q is not a single character", s)}
	}
	return r, nil
}
