package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgomes/pinkerton/pink"
)

func newTestModel(t *testing.T) replModel {
	t.Helper()
	m, err := newREPLModel(pink.Config{Seed: 1})
	if err != nil {
		t.Fatalf("newREPLModel failed: %v", err)
	}
	return m
}

func submit(t *testing.T, m replModel, input string) (replModel, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return rm, cmd
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	rm, cmd := submit(t, newTestModel(t), ":quit")

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	rm, cmd := submit(t, newTestModel(t), ":help")

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
}

func TestUpdateUnknownCommandIsReported(t *testing.T) {
	rm, _ := submit(t, newTestModel(t), ":bogus")
	last := rm.history[len(rm.history)-1]
	if !last.isErr || !strings.Contains(last.output, "Unknown command: :bogus") {
		t.Fatalf("unexpected history entry %+v", last)
	}
}

func TestEntriesShareGlobals(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "let score = 40")
	m, _ = submit(t, m, "score = score + 2")
	m, _ = submit(t, m, "score")

	if len(m.history) != 3 || len(m.cmdHistory) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m.history))
	}
	last := m.history[2]
	if last.isErr || last.output != "42" {
		t.Fatalf("unexpected result %+v", last)
	}
}

func TestEvaluateCapturesPrintedOutput(t *testing.T) {
	m := newTestModel(t)

	output, isErr := m.evaluate(`println "hi"
print "there"`)
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "hi\nthere" {
		t.Fatalf("unexpected output %q", output)
	}

	output, _ = m.evaluate("let x = 1")
	if output != "ok" {
		t.Fatalf("expected ok for silent statement, got %q", output)
	}

	output, _ = m.evaluate(`"quoted"`)
	if output != `"quoted"` {
		t.Fatalf("expected inspected string, got %q", output)
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	m := newTestModel(t)

	output, isErr := m.evaluate("let = 1")
	if !isErr || !strings.Contains(output, "Expect variable name.") {
		t.Fatalf("expected syntax error, got %q", output)
	}

	output, isErr = m.evaluate("nope + 1")
	if !isErr || !strings.Contains(output, "Undefined variable 'nope'.") {
		t.Fatalf("expected runtime error, got %q", output)
	}
}

func TestResetClearsGlobals(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "let kept = 1")
	m, _ = submit(t, m, ":reset")

	if _, err := m.interp.Globals().Get("kept"); err == nil {
		t.Fatalf("expected globals to be reset")
	}
	if _, err := m.interp.Globals().Get("sqrt"); err != nil {
		t.Fatalf("natives should survive reset: %v", err)
	}
	output, isErr := m.evaluate(`println "after"`)
	if isErr || output != "after" {
		t.Fatalf("reset interpreter should still capture output, got %q", output)
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "let uniqueName = 1")
	m.textInput.SetValue("println uniq")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	rm := model.(replModel)
	if got := rm.textInput.Value(); got != "println uniqueName" {
		t.Fatalf("unexpected completion %q", got)
	}
}

func TestHistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "1")
	m, _ = submit(t, m, "2")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "2" {
		t.Fatalf("expected latest entry, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "1" {
		t.Fatalf("expected first entry, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.(replModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(replModel)
	if m.textInput.Value() != "" || m.historyIdx != -1 {
		t.Fatalf("expected empty input after leaving history, got %q", m.textInput.Value())
	}
}

func TestViewRendersGlobals(t *testing.T) {
	m := newTestModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(replModel)
	m, _ = submit(t, m, "let answer = 42")
	m, _ = submit(t, m, ":vars")

	view := m.View()
	if !strings.Contains(view, "answer") || !strings.Contains(view, "42") {
		t.Fatalf("expected globals panel in view:\n%s", view)
	}
	if strings.Contains(view, "sqrt") {
		t.Fatalf("natives should not be listed:\n%s", view)
	}
}

func TestReadNativesSeeEmptyInput(t *testing.T) {
	m := newTestModel(t)

	output, isErr := m.evaluate("readLine()")
	if isErr || output != "null" {
		t.Fatalf("expected readLine to report end of input, got %q", output)
	}
	output, isErr = m.evaluate("read()")
	if isErr || output != "null" {
		t.Fatalf("expected read to report end of input, got %q", output)
	}
}
