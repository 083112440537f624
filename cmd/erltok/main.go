package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"

	erltok "github.com/ironclause/erl-tokenize"
)

const (
	appName     = "erltok"
	historyFile = ".erltok_history"
	prompt      = "erl> "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "tokenize":
		os.Exit(cmdTokenize(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(erltok.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`erltok %s — Erlang source tokenizer

Usage:
  %s tokenize <file.erl> [--silent] [--json] [--no-hidden]   Tokenize a file.
  %s repl                                                    Tokenize lines interactively.
  %s version                                                 Print the version.

tokenize prints one line per token ("[line:col] text"), then the token count
and the elapsed wall time. It aborts with a caret-annotated diagnostic on the
first lexical error.
`, erltok.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// tokenize
// -----------------------------------------------------------------------------

func cmdTokenize(args []string) int {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	silent := fs.Bool("silent", false, "suppress per-token output")
	asJSON := fs.Bool("json", false, "emit NDJSON: one JSON object per token")
	noHidden := fs.Bool("no-hidden", false, "drop comment and whitespace tokens from the output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokenize <file.erl> [--silent] [--json] [--no-hidden]\n", appName)
		return 2
	}
	file := fs.Arg(0)

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	start := time.Now()
	count := 0
	enc := json.NewEncoder(os.Stdout)

	tz := erltok.New(string(src))
	for {
		tok, err := tz.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, erltok.WrapErrorWithName(err, file, string(src)).Error())
			return 1
		}
		if tok.Kind == erltok.EOF {
			break
		}
		if *noHidden && tok.IsHidden() {
			continue
		}
		count++
		if *silent {
			continue
		}
		if *asJSON {
			if err := enc.Encode(toOutToken(tok)); err != nil {
				fmt.Fprintf(os.Stderr, "%s: encode json: %v\n", appName, err)
				return 1
			}
			continue
		}
		fmt.Printf("[%s] %q\n", tok.Start, tok.Text)
	}

	fmt.Printf("TOKEN COUNT: %d\n", count)
	fmt.Printf("ELAPSED: %v seconds\n", time.Since(start).Seconds())
	return 0
}

type outToken struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text"`
	Value interface{} `json:"value,omitempty"`
	Line  int         `json:"line"`
	Col   int         `json:"col"`
	Byte  int         `json:"byte"`
}

func toOutToken(tok erltok.Token) outToken {
	return outToken{
		Kind:  tok.Kind.String(),
		Text:  tok.Text,
		Value: jsonValue(tok),
		Line:  tok.Start.Line,
		Col:   tok.Start.Col,
		Byte:  tok.Start.Byte,
	}
}

// jsonValue flattens decoded values to JSON-friendly types. Big integers
// render as decimal strings so they survive any 53-bit consumer.
func jsonValue(tok erltok.Token) interface{} {
	switch tok.Kind {
	case erltok.INTEGER:
		return tok.Int().String()
	case erltok.FLOAT:
		return tok.Float()
	case erltok.CHAR, erltok.WHITESPACE:
		return string(tok.Char())
	case erltok.ATOM, erltok.STRING, erltok.COMMENT, erltok.VARIABLE:
		return tok.Str()
	case erltok.KEYWORD, erltok.SYMBOL:
		return tok.Text
	}
	return nil
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Printf("erltok %s — type Erlang source, one line at a time. Ctrl+D exits.\n", erltok.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return 0
		}
		dumpLine(line)
		ln.AppendHistory(line)
	}
}

func dumpLine(src string) {
	toks, err := erltok.New(src).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(erltok.WrapErrorWithSource(err, src).Error()))
		return
	}
	for _, tok := range toks {
		if tok.Kind == erltok.EOF || tok.Kind == erltok.WHITESPACE {
			continue
		}
		line := fmt.Sprintf("[%s] %-10s %q", tok.Start, tok.Kind, tok.Text)
		if tok.Kind == erltok.COMMENT {
			fmt.Println(green(line))
		} else {
			fmt.Println(line)
		}
	}
}
