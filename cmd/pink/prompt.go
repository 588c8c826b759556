package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/pinkerton/pink"
	"github.com/peterh/liner"
)

const continuationPrompt = "....> "

func promptCommand(args []string) error {
	fs := flag.NewFlagSet("prompt", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "load interpreter settings from a YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath, newLogger(false))
	if err != nil {
		return err
	}
	return runPrompt(cfg, os.Stdout)
}

// runPrompt is the line-oriented session: numbered prompts, history kept
// between sessions and tab completion of keywords and globals. Input with
// open brackets or an open string keeps reading on continuation lines.
func runPrompt(cfg pink.Config, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	cfg.Stdout = out
	cfg.Stdin = &promptReader{line: line}
	cfg.OnError = func(err error) {
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
	}
	interp, err := pink.NewInterpreter(cfg)
	if err != nil {
		return fmt.Errorf("configure interpreter: %w", err)
	}

	line.SetCompleter(func(input string) []string {
		prefix, word := splitLastWord(input)
		if word == "" {
			return nil
		}
		matches := completeWord(interp, word)
		for i, match := range matches {
			matches[i] = prefix + match
		}
		return matches
	})

	if historyFile, err := historyPath(); err == nil {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.OpenFile(historyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600); err == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Fprintln(out, headerStyle.Render("Pinkerton"))
	fmt.Fprintln(out, mutedStyle.Render("Ctrl+D to quit, Tab to complete"))

	var pending strings.Builder
	entry := 1
	for {
		prompt := fmt.Sprintf("pink[%d]> ", entry)
		if pending.Len() > 0 {
			prompt = continuationPrompt
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				pending.Reset()
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if pending.Len() == 0 && strings.TrimSpace(input) == "" {
			continue
		}
		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(input)

		source := pending.String()
		if needsMoreInput(interp, source) {
			continue
		}
		pending.Reset()
		line.AppendHistory(source)
		entry++

		evaluateEntry(interp, source, out)
	}
}

// promptReader feeds readLine and read from the same line editor that reads
// entries, so a script's input comes from the lines typed after it.
type promptReader struct {
	line    *liner.State
	pending []byte
}

func (r *promptReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		text, err := r.line.Prompt("")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return 0, io.EOF
			}
			return 0, err
		}
		r.pending = []byte(text + "\n")
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// historyPath places the history in the per-user config directory.
func historyPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "pinkerton")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// evaluateEntry runs source. A lone expression echoes its value; runtime
// errors from other statements are printed through Config.OnError.
func evaluateEntry(interp *pink.Interpreter, source string, out io.Writer) {
	ctx := context.Background()
	stmts, err := interp.Parse(source)
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
		return
	}
	if len(stmts) == 1 {
		if stmt, ok := stmts[0].(*pink.ExprStmt); ok {
			val, err := interp.Evaluate(ctx, stmt.Expr)
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
				return
			}
			fmt.Fprintln(out, resultStyle.Render(val.Inspect()))
			return
		}
	}
	_ = interp.Run(ctx, source)
}

// needsMoreInput reports whether source ends inside brackets or a string.
func needsMoreInput(interp *pink.Interpreter, source string) bool {
	tokens, err := interp.Scan(source)
	if err != nil && strings.Contains(err.Error(), "Unterminated string") {
		return true
	}
	depth := 0
	for _, tok := range tokens {
		if _, ok := tok.Literal.(string); ok {
			continue
		}
		switch tok.Lexeme {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
	}
	return depth > 0
}

func splitLastWord(input string) (string, string) {
	i := len(input)
	for i > 0 && isWordByte(input[i-1]) {
		i--
	}
	return input[:i], input[i:]
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// completeWord returns keyword spellings and global names starting with word.
func completeWord(interp *pink.Interpreter, word string) []string {
	seen := make(map[string]struct{})
	var completions []string
	add := func(candidates []string) {
		for _, c := range candidates {
			if !strings.HasPrefix(c, word) {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			completions = append(completions, c)
		}
	}
	add(interp.Keywords().Words())
	add(interp.Globals().Names())
	return completions
}
