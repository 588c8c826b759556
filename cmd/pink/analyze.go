package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mgomes/pinkerton/pink"
)

const topLevelScope = "<script>"

type lintWarning struct {
	Scope   string
	Pos     pink.Position
	Message string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "load interpreter settings from a YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("pink analyze: script path required")
	}

	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	cfg, err := loadConfig(*configPath, newLogger(false))
	if err != nil {
		return err
	}
	in, err := pink.NewInterpreter(cfg)
	if err != nil {
		return fmt.Errorf("configure interpreter: %w", err)
	}
	stmts, err := in.Parse(string(input))
	if err != nil {
		return fmt.Errorf("analysis parse failed: %w", err)
	}

	warnings := analyzeProgram(stmts)
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		line := max(warning.Pos.Line, 1)
		column := max(warning.Pos.Column, 1)
		fmt.Printf("%s:%d:%d: %s (%s)\n", scriptPath, line, column, warning.Message, warning.Scope)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

func analyzeProgram(stmts []pink.Statement) []lintWarning {
	warnings := make([]lintWarning, 0)
	for _, stmt := range stmts {
		// Stray jumps at top level are runtime errors, not dead code.
		lintStatement(topLevelScope, stmt, &warnings)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		if warnings[i].Pos.Column != warnings[j].Pos.Column {
			return warnings[i].Pos.Column < warnings[j].Pos.Column
		}
		return warnings[i].Scope < warnings[j].Scope
	})

	return warnings
}

func lintStatements(scope string, statements []pink.Statement, warnings *[]lintWarning) bool {
	terminated := false
	for _, stmt := range statements {
		if terminated {
			*warnings = append(*warnings, lintWarning{
				Scope:   scope,
				Pos:     stmt.Pos(),
				Message: "unreachable statement",
			})
			continue
		}
		if lintStatement(scope, stmt, warnings) {
			terminated = true
		}
	}
	return terminated
}

// lintStatement reports dead code nested inside stmt and whether control
// can never fall through it.
func lintStatement(scope string, stmt pink.Statement, warnings *[]lintWarning) bool {
	switch typed := stmt.(type) {
	case *pink.ReturnStmt, *pink.BreakStmt, *pink.ContinueStmt:
		return true
	case *pink.BlockStmt:
		return lintStatements(scope, typed.Statements, warnings)
	case *pink.IfStmt:
		thenTerminated := lintStatement(scope, typed.Then, warnings)
		if typed.Else == nil {
			return false
		}
		elseTerminated := lintStatement(scope, typed.Else, warnings)
		return thenTerminated && elseTerminated
	case *pink.WhileStmt:
		lintStatement(scope, typed.Body, warnings)
		return false
	case *pink.ForStmt:
		lintStatement(scope, typed.Body, warnings)
		return false
	case *pink.FunctionStmt:
		lintStatements(typed.Name.Lexeme, typed.Body, warnings)
		return false
	case *pink.VarStmt:
		if fn, ok := typed.Initializer.(*pink.FunctionExpr); ok {
			lintStatements(typed.Name.Lexeme, fn.Body, warnings)
		}
		return false
	default:
		return false
	}
}
