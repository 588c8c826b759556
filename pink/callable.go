package pink

import "strconv"

// Callable is anything a call expression can invoke.
type Callable interface {
	Name() string
	// Arity reports the accepted argument count bounds. max < 0 means unbounded.
	Arity() (min, max int)
	// Call runs the callable once its frame is on the stack. pos is the call site.
	Call(exec *Execution, args []Value, pos Position) (Value, error)
}

func (f *Function) Name() string {
	if f.name == "" {
		return "<anonymous>"
	}
	return f.name
}

func (f *Function) Arity() (int, int) {
	return len(f.params), len(f.params)
}

func (f *Function) Call(exec *Execution, args []Value, pos Position) (Value, error) {
	return exec.callFunction(f, args)
}

func (n *NativeFunction) Name() string { return n.name }

func (n *NativeFunction) Arity() (int, int) {
	return n.minArgs, n.maxArgs
}

func (n *NativeFunction) Call(exec *Execution, args []Value, pos Position) (Value, error) {
	val, err := n.fn(exec, args)
	if err != nil {
		return NewNull(), exec.wrapError(err, pos)
	}
	return val, nil
}

func arityLabel(c Callable) string {
	lo, hi := c.Arity()
	switch {
	case lo == hi:
		return pluralArgs(lo)
	case hi < 0:
		return "at least " + pluralArgs(lo)
	default:
		return strconv.Itoa(lo) + " to " + pluralArgs(hi)
	}
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return strconv.Itoa(n) + " arguments"
}

func checkArity(c Callable, got int) error {
	lo, hi := c.Arity()
	if got < lo || (hi >= 0 && got > hi) {
		return errorf(KindArityError, "%s expects %s but got %d.", c.Name(), arityLabel(c), got)
	}
	return nil
}
