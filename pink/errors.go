package pink

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError reports a lexical or grammatical problem at a source position.
type SyntaxError struct {
	Pos     Position
	Where   string
	Message string
	source  string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] Error%s: %s", e.Pos.Line, e.Where, e.Message)
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// SyntaxErrors collects every syntax error found in one source text.
type SyntaxErrors []*SyntaxError

func (errs SyntaxErrors) Error() string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (errs SyntaxErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

// ErrorKind classifies runtime failures.
type ErrorKind string

const (
	KindUndefinedVariable ErrorKind = "UndefinedVariable"
	KindTypeError         ErrorKind = "TypeError"
	KindArityError        ErrorKind = "ArityError"
	KindIndexError        ErrorKind = "IndexError"
	KindRangeError        ErrorKind = "RangeError"
	KindControlFlowError  ErrorKind = "ControlFlowError"
	KindRecursionError    ErrorKind = "RecursionError"
	KindInputError        ErrorKind = "InputError"
	KindRuntimeError      ErrorKind = "RuntimeError"
)

// StackFrame names a function activation in a runtime error trace.
type StackFrame struct {
	Function string
	Pos      Position
}

// RuntimeError aborts the top-level statement that raised it.
type RuntimeError struct {
	Kind      ErrorKind
	Message   string
	Pos       Position
	CodeFrame string
	Frames    []StackFrame
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

func (re *RuntimeError) Error() string {
	var b strings.Builder
	if re.Pos.Line > 0 {
		fmt.Fprintf(&b, "[line %d] %s: %s", re.Pos.Line, re.Kind, re.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s", re.Kind, re.Message)
	}
	if re.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(re.CodeFrame)
	}
	renderFrame := func(frame StackFrame) {
		if frame.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}

	if len(re.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, frame := range re.Frames {
			renderFrame(frame)
		}
		return b.String()
	}

	for _, frame := range re.Frames[:runtimeErrorFrameHead] {
		renderFrame(frame)
	}
	omitted := len(re.Frames) - (runtimeErrorFrameHead + runtimeErrorFrameTail)
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", omitted)
	for _, frame := range re.Frames[len(re.Frames)-runtimeErrorFrameTail:] {
		renderFrame(frame)
	}
	return b.String()
}

// kindError is returned by natives and helpers that do not know the call
// position; the interpreter converts it into a RuntimeError at the call site.
type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func errorf(kind ErrorKind, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// ErrorKindOf reports the kind of a runtime error, or "" when err is not one.
func ErrorKindOf(err error) ErrorKind {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Kind
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return ""
}
