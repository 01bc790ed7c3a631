package words

// Whitespace returns a Config with no quoting or escaping: words are
// maximal runs of non-whitespace characters, like strings.Fields.
func Whitespace() Config {
	return Config{}
}

// Shell returns a POSIX-shell-style Config. Single quotes delimit literal
// text, double quotes honor escapes, and a backslash outside single
// quotes escapes any single character to itself.
func Shell() Config {
	return Config{
		QuotePairs: map[rune]QuotePair{
			'\'': {Close: '\'', Mode: IgnoreEscapes},
			'"':  {Close: '"', Mode: ParseEscapes},
		},
		Leader: '\\',
	}
}

// C returns a C-string-style Config. Double quotes honor escapes, and the
// backslash sequences \n, \r, \t, \", \', and \\ translate to their C
// meanings. Any other character after a backslash is an error.
func C() Config {
	return Config{
		QuotePairs: map[rune]QuotePair{
			'"': {Close: '"', Mode: ParseEscapes},
		},
		EscapePairs: map[rune]rune{
			'n':  '\n',
			'r':  '\r',
			't':  '\t',
			'"':  '"',
			'\'': '\'',
			'\\': '\\',
		},
		Leader: '\\',
	}
}
