package pink

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
)

// Interpreter executes Pinkerton programs. Globals persist across Run calls,
// so successive runs behave like one REPL session. An Interpreter must not be
// used from several goroutines at once.
type Interpreter struct {
	config   Config
	keywords *KeywordTable
	comment  rune
	globals  *Env
	stdout   io.Writer
	stdin    *bufio.Reader
	random   *rand.Rand
}

// NewInterpreter validates cfg, applies defaults and registers the native
// library into a fresh global scope.
func NewInterpreter(cfg Config) (*Interpreter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	comment, _ := cfg.commentRune()
	keywords, _ := NewKeywordTable(cfg.Keywords)

	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Random == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		cfg.Random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	in := &Interpreter{
		config:   cfg,
		keywords: keywords,
		comment:  comment,
		globals:  newEnv(nil),
		stdout:   cfg.Stdout,
		stdin:    bufio.NewReader(cfg.Stdin),
		random:   cfg.Random,
	}
	registerNatives(in)
	return in, nil
}

// MustNewInterpreter is NewInterpreter for configurations known to be valid.
func MustNewInterpreter(cfg Config) *Interpreter {
	in, err := NewInterpreter(cfg)
	if err != nil {
		panic(err)
	}
	return in
}

// Globals returns the global scope.
func (in *Interpreter) Globals() *Env {
	return in.globals
}

// Keywords returns the keyword table in effect.
func (in *Interpreter) Keywords() *KeywordTable {
	return in.keywords
}

// RegisterNative adds a built-in to the global scope, replacing any binding
// with the same name.
func (in *Interpreter) RegisterNative(name string, minArgs, maxArgs int, fn NativeFunc) {
	in.globals.Define(name, NewNative(name, minArgs, maxArgs, fn))
}

// Scan tokenizes source with this interpreter's keywords and comment character.
func (in *Interpreter) Scan(source string) ([]Token, error) {
	return scanWith(source, in.keywords, in.comment)
}

// Parse scans and parses source. Scan errors are reported before any
// parsing happens.
func (in *Interpreter) Parse(source string) ([]Statement, error) {
	tokens, err := in.Scan(source)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, source)
}

// Run parses the whole source and, when it is free of syntax errors,
// executes each top-level statement in order. A runtime error aborts only
// the statement that raised it: it is handed to Config.OnError and the
// remaining statements still run. The returned error joins every runtime
// error. Cancellation and quota exhaustion stop the run immediately.
func (in *Interpreter) Run(ctx context.Context, source string) error {
	statements, err := in.Parse(source)
	if err != nil {
		return err
	}

	exec := in.newExecution(ctx, source)
	var errs []error
	for _, stmt := range statements {
		err := exec.runTopLevel(stmt)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if in.config.OnError != nil {
			in.config.OnError(err)
		}
		if isHaltError(err) {
			break
		}
	}
	return errors.Join(errs...)
}

// Execute runs one statement in the global scope.
func (in *Interpreter) Execute(ctx context.Context, stmt Statement) error {
	return in.newExecution(ctx, "").runTopLevel(stmt)
}

// Evaluate computes an expression in the global scope.
func (in *Interpreter) Evaluate(ctx context.Context, expr Expression) (Value, error) {
	exec := in.newExecution(ctx, "")
	return exec.eval(expr, in.globals)
}

// Call invokes a function or native value with the given arguments.
func (in *Interpreter) Call(ctx context.Context, callee Value, args ...Value) (Value, error) {
	exec := in.newExecution(ctx, "")
	return exec.callValue(callee, args, Position{})
}

func (in *Interpreter) newExecution(ctx context.Context, source string) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Execution{
		interp:       in,
		ctx:          ctx,
		source:       source,
		quota:        in.config.StepQuota,
		recursionCap: in.config.RecursionLimit,
	}
}
