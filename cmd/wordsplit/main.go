// Command wordsplit splits lines into words with configurable quoting and
// escape rules.
//
// With arguments, it splits them as a single line and prints one word per
// output line:
//
//	$ wordsplit 'cp "my file" /tmp'
//	cp
//	my file
//	/tmp
//
// Without arguments it reads stdin line by line. When stdin is a terminal
// it prompts, and asks for continuation lines while a quote or escape is
// still open.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/shapestone/shape-words/pkg/words"
)

var cli struct {
	Style  string   `short:"s" default:"shell" enum:"shell,c,whitespace" help:"Stock dialect to split with (shell, c or whitespace)."`
	Config string   `short:"c" type:"existingfile" help:"YAML dialect description; overrides --style."`
	Zero   bool     `short:"0" help:"Separate output words with NUL instead of newline."`
	Line   []string `arg:"" optional:"" help:"Line to split; stdin is read line by line when omitted."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("wordsplit"),
		kong.Description("Split lines into words with configurable quoting and escapes."),
	)

	cfg, err := dialect()
	kctx.FatalIfErrorf(err)

	if len(cli.Line) > 0 {
		args, err := cfg.Split(strings.Join(cli.Line, " "))
		kctx.FatalIfErrorf(err)
		writeWords(args)
		return
	}

	os.Exit(run(cfg, os.Stdin))
}

// dialect resolves the flags into a Config.
func dialect() (words.Config, error) {
	if cli.Config != "" {
		return words.LoadConfig(cli.Config)
	}
	switch cli.Style {
	case "c":
		return words.C(), nil
	case "whitespace":
		return words.Whitespace(), nil
	default:
		return words.Shell(), nil
	}
}

// run reads lines from in and prints their words. Interactively, a line
// whose quote or escape is still open is held and joined with the next
// line instead of failing.
func run(cfg words.Config, in *os.File) int {
	interactive := term.IsTerminal(int(in.Fd()))

	exit := 0
	var pending string
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			if pending == "" {
				fmt.Print("> ")
			} else {
				fmt.Print("... ")
			}
		}
		if !sc.Scan() {
			break
		}

		line := sc.Text()
		if pending != "" {
			line = pending + "\n" + line
		}

		args, err := cfg.Split(line)
		if err != nil && interactive && wantsContinuation(err) {
			pending = line
			continue
		}
		pending = ""
		if err != nil {
			fmt.Fprintln(os.Stderr, "wordsplit:", err)
			exit = 1
			continue
		}
		writeWords(args)
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "wordsplit:", err)
		exit = 1
	}
	if pending != "" {
		// Input ended with a construct still open.
		if _, err := cfg.Split(pending); err != nil {
			fmt.Fprintln(os.Stderr, "wordsplit:", err)
		}
		exit = 1
	}
	return exit
}

// wantsContinuation reports whether err can be cured by more input.
func wantsContinuation(err error) bool {
	return errors.Is(err, words.ErrUnterminatedQuote) || errors.Is(err, words.ErrDanglingEscape)
}

func writeWords(args []string) {
	sep := byte('\n')
	if cli.Zero {
		sep = 0
	}
	out := bufio.NewWriter(os.Stdout)
	for _, w := range args {
		out.WriteString(w)
		out.WriteByte(sep)
	}
	out.Flush()
}
