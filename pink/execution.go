package pink

import (
	"context"
	"errors"
	"fmt"
)

// ErrStepQuotaExceeded is returned when a run exceeds Config.StepQuota.
var ErrStepQuotaExceeded = errors.New("step quota exceeded")

// Execution is the state of one Run, Execute, Evaluate or Call. Natives
// receive it so they can call back into the interpreter and reach its I/O.
type Execution struct {
	interp       *Interpreter
	ctx          context.Context
	source       string
	quota        int
	recursionCap int
	steps        int
	callStack    []callFrame
}

type callFrame struct {
	Function string
	Pos      Position
}

// Interpreter returns the interpreter this execution belongs to.
func (exec *Execution) Interpreter() *Interpreter {
	return exec.interp
}

// Call invokes callee from inside a native, attributing errors to the
// native's call site.
func (exec *Execution) Call(callee Value, args ...Value) (Value, error) {
	return exec.callValue(callee, args, exec.currentPos())
}

func (exec *Execution) currentPos() Position {
	if len(exec.callStack) == 0 {
		return Position{}
	}
	return exec.callStack[len(exec.callStack)-1].Pos
}

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return fmt.Errorf("%w (%d)", ErrStepQuotaExceeded, exec.quota)
	}
	select {
	case <-exec.ctx.Done():
		return exec.ctx.Err()
	default:
	}
	return nil
}

func isHaltError(err error) bool {
	return errors.Is(err, ErrStepQuotaExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (exec *Execution) pushFrame(function string, pos Position) error {
	if exec.recursionCap > 0 && len(exec.callStack) >= exec.recursionCap {
		return exec.errorAt(KindRecursionError, pos, "recursion depth exceeded (limit %d)", exec.recursionCap)
	}
	exec.callStack = append(exec.callStack, callFrame{Function: function, Pos: pos})
	return nil
}

func (exec *Execution) popFrame() {
	if len(exec.callStack) == 0 {
		return
	}
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
}

func (exec *Execution) errorAt(kind ErrorKind, pos Position, format string, args ...any) error {
	return exec.newRuntimeError(kind, fmt.Sprintf(format, args...), pos)
}

func (exec *Execution) newRuntimeError(kind ErrorKind, message string, pos Position) error {
	frames := make([]StackFrame, 0, len(exec.callStack)+1)
	if len(exec.callStack) > 0 {
		current := exec.callStack[len(exec.callStack)-1]
		if current.Pos != pos {
			frames = append(frames, StackFrame{Function: current.Function, Pos: pos})
		}
		for i := len(exec.callStack) - 1; i >= 0; i-- {
			frames = append(frames, StackFrame(exec.callStack[i]))
		}
	} else {
		frames = append(frames, StackFrame{Function: "<script>", Pos: pos})
	}
	return &RuntimeError{
		Kind:      kind,
		Message:   message,
		Pos:       pos,
		CodeFrame: formatCodeFrame(exec.source, pos),
		Frames:    frames,
	}
}

// wrapError attaches a position and stack to errors raised without one.
func (exec *Execution) wrapError(err error, pos Position) error {
	if err == nil {
		return nil
	}
	if isHaltError(err) {
		return err
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}
	kind := ErrorKindOf(err)
	if kind == "" {
		kind = KindRuntimeError
	}
	return exec.newRuntimeError(kind, err.Error(), pos)
}

// runTopLevel executes a statement in the global scope and rejects control
// signals that escaped every loop and function.
func (exec *Execution) runTopLevel(stmt Statement) error {
	c, err := exec.execStatement(stmt, exec.interp.globals)
	if err != nil {
		return err
	}
	switch c.kind {
	case completeBreak:
		return exec.errorAt(KindControlFlowError, c.pos, "break used outside of loop")
	case completeContinue:
		return exec.errorAt(KindControlFlowError, c.pos, "continue used outside of loop")
	case completeReturn:
		return exec.errorAt(KindControlFlowError, c.pos, "return used outside of function")
	}
	return nil
}
