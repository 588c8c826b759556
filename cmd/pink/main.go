package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/mgomes/pinkerton/pink"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "check":
		return runCommand(append([]string{"-check"}, args[2:]...))
	case "ast":
		return astCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "prompt":
		return promptCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "load interpreter settings from a YAML file")
	watch := fs.Bool("watch", false, "re-run the script whenever it changes")
	checkOnly := fs.Bool("check", false, "only parse the script without executing")
	verbose := fs.Bool("verbose", false, "log diagnostic events to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("pink run: script path required")
	}
	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}

	logger := newLogger(*verbose)
	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		return err
	}

	if *checkOnly {
		in, err := pink.NewInterpreter(cfg)
		if err != nil {
			return fmt.Errorf("configure interpreter: %w", err)
		}
		input, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if _, err := in.Parse(string(input)); err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *watch {
		return watchScript(ctx, scriptPath, logger, func() error {
			return executeScript(ctx, scriptPath, cfg, logger)
		})
	}
	return executeScript(ctx, scriptPath, cfg, logger)
}

// executeScript runs the file in a fresh interpreter. Runtime errors are
// printed as they happen and do not stop the remaining statements.
func executeScript(ctx context.Context, scriptPath string, cfg pink.Config, logger *slog.Logger) error {
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	failures := 0
	cfg.OnError = func(err error) {
		failures++
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	}
	in, err := pink.NewInterpreter(cfg)
	if err != nil {
		return fmt.Errorf("configure interpreter: %w", err)
	}

	start := time.Now()
	err = in.Run(ctx, string(input))
	logger.Debug("script finished", "path", scriptPath, "elapsed", time.Since(start), "errors", failures)

	var syntaxErrs pink.SyntaxErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &syntaxErrs):
		return fmt.Errorf("parse failed: %w", err)
	default:
		return fmt.Errorf("pink run: %d runtime error(s)", failures)
	}
}

func astCommand(args []string) error {
	in, source, err := loadScriptArg("ast", args)
	if err != nil {
		return err
	}
	stmts, err := in.Parse(source)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	fmt.Print(pink.FormatAST(stmts))
	return nil
}

func tokensCommand(args []string) error {
	in, source, err := loadScriptArg("tokens", args)
	if err != nil {
		return err
	}
	tokens, err := in.Scan(source)
	for _, tok := range tokens {
		fmt.Println(tok.String())
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}

// loadScriptArg handles the flags shared by the inspection commands and
// returns an interpreter configured for them along with the script text.
func loadScriptArg(name string, args []string) (*pink.Interpreter, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "load interpreter settings from a YAML file")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return nil, "", fmt.Errorf("pink %s: script path required", name)
	}
	cfg, err := loadConfig(*configPath, newLogger(false))
	if err != nil {
		return nil, "", err
	}
	in, err := pink.NewInterpreter(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("configure interpreter: %w", err)
	}
	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return nil, "", fmt.Errorf("read script: %w", err)
	}
	return in, string(input), nil
}

func loadConfig(path string, logger *slog.Logger) (pink.Config, error) {
	if path == "" {
		return pink.Config{}, nil
	}
	cfg, err := pink.LoadConfigFile(path)
	if err != nil {
		return pink.Config{}, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded", "path", path, "keywords", len(cfg.Keywords), "comment_char", cfg.CommentChar)
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-config file] [-watch] [-check] [-verbose] <script>")
	fmt.Fprintln(os.Stderr, "    execute a script")
	fmt.Fprintln(os.Stderr, "  check [-config file] <script>")
	fmt.Fprintln(os.Stderr, "    parse a script without executing it")
	fmt.Fprintln(os.Stderr, "  ast [-config file] <script>")
	fmt.Fprintln(os.Stderr, "    print the parsed syntax tree")
	fmt.Fprintln(os.Stderr, "  tokens [-config file] <script>")
	fmt.Fprintln(os.Stderr, "    print the scanned tokens")
	fmt.Fprintln(os.Stderr, "  analyze <script>")
	fmt.Fprintln(os.Stderr, "    report unreachable statements")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] <path>...")
	fmt.Fprintln(os.Stderr, "    normalize whitespace in .pink files")
	fmt.Fprintln(os.Stderr, "  repl [-config file]")
	fmt.Fprintln(os.Stderr, "    start the interactive session")
	fmt.Fprintln(os.Stderr, "  prompt [-config file]")
	fmt.Fprintln(os.Stderr, "    start the line-oriented session")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
