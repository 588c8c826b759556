package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"pink", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"pink", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"pink"})
	if err == nil || !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("expected invalid command error, got %v", err)
	}
}

func TestRunCommandPrintsOutput(t *testing.T) {
	scriptPath := writeScript(t, `function greet(name) = "hello " & name
println greet("pink")
println 1 + 2`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "hello pink\n3\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandContinuesAfterRuntimeError(t *testing.T) {
	scriptPath := writeScript(t, "println missing\nprintln 2")

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err == nil || !strings.Contains(err.Error(), "1 runtime error(s)") {
		t.Fatalf("expected runtime error summary, got %v", err)
	}
	if out != "2\n" {
		t.Fatalf("expected later statements to run, got %q", out)
	}
}

func TestRunCommandSyntaxErrorRunsNothing(t *testing.T) {
	scriptPath := writeScript(t, "println 1\nlet = 2")

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err == nil || !strings.Contains(err.Error(), "parse failed") {
		t.Fatalf("expected parse failure, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	scriptPath := writeScript(t, `println "ok"`)
	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-check", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand check failed: %v", err)
	}
	if out != "" {
		t.Fatalf("check must not execute, got %q", out)
	}

	broken := writeScript(t, "if x then")
	if err := runCommand([]string{"-check", broken}); err == nil {
		t.Fatalf("expected check to report parse errors")
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	err := runCommand(nil)
	if err == nil {
		t.Fatalf("expected script path error")
	}
	if !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandUsesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pink.yaml")
	config := "keywords:\n  println: say\ncomment_char: \"#\"\n"
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	scriptPath := writeScript(t, "say 5 # shout it")

	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-config", configPath, scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandRejectsBadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pink.yaml")
	if err := os.WriteFile(configPath, []byte("keywords:\n  lambda: fn\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	scriptPath := writeScript(t, "println 1")

	err := runCommand([]string{"-config", configPath, scriptPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestASTCommand(t *testing.T) {
	scriptPath := writeScript(t, "let x = 1 + 2\nprintln x")
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"pink", "ast", scriptPath})
	})
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	if out != "(let x (+ 1 2))\n(println x)\n" {
		t.Fatalf("unexpected ast output: %q", out)
	}
}

func TestTokensCommand(t *testing.T) {
	scriptPath := writeScript(t, "let x = 1")
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"pink", "tokens", scriptPath})
	})
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 tokens including EOF, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "IDENT") || !strings.Contains(lines[3], "NUMBER") {
		t.Fatalf("unexpected tokens: %q", out)
	}
}

func TestAnalyzeCommandNoIssues(t *testing.T) {
	scriptPath := writeScript(t, `function run() {
  let value = 1
  return value
}`)

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("analyzeCommand failed: %v", err)
	}
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("unexpected analyze output: %q", out)
	}
}

func TestAnalyzeCommandReportsUnreachableStatements(t *testing.T) {
	scriptPath := writeScript(t, `function run() {
  return 1
  println 2
}`)

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{scriptPath})
	})
	if err == nil {
		t.Fatalf("expected analyze command to report lint failures")
	}
	if !strings.Contains(err.Error(), "analysis found 1 issue(s)") {
		t.Fatalf("unexpected analyze error: %v", err)
	}
	if !strings.Contains(out, ":3:3: unreachable statement (run)") {
		t.Fatalf("expected unreachable statement warning, got %q", out)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.pink")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	out := <-done
	_ = r.Close()
	return string(out), runErr
}
