package pink

func (exec *Execution) evalCall(e *CallExpr, env *Env) (Value, error) {
	callee, err := exec.eval(e.Callee, env)
	if err != nil {
		return NewNull(), err
	}
	args := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		val, err := exec.eval(arg, env)
		if err != nil {
			return NewNull(), err
		}
		args = append(args, val)
	}
	return exec.callValue(callee, args, e.Pos())
}

func (exec *Execution) callValue(callee Value, args []Value, pos Position) (Value, error) {
	fn := callee.Callable()
	if fn == nil {
		return NewNull(), exec.errorAt(KindTypeError, pos, "Can only call functions, got %s.", callee.Kind())
	}
	if err := checkArity(fn, len(args)); err != nil {
		return NewNull(), exec.wrapError(err, pos)
	}

	if err := exec.pushFrame(fn.Name(), pos); err != nil {
		return NewNull(), err
	}
	defer exec.popFrame()

	return fn.Call(exec, args, pos)
}

// callFunction binds arguments in a scope enclosed by the closure and runs
// the body. Break and continue may not escape the function.
func (exec *Execution) callFunction(fn *Function, args []Value) (Value, error) {
	callEnv := newEnv(fn.closure)
	for i, param := range fn.params {
		callEnv.Define(param.Lexeme, args[i])
	}

	c, err := exec.execBlock(fn.body, callEnv)
	if err != nil {
		return NewNull(), err
	}
	switch c.kind {
	case completeReturn:
		return c.value, nil
	case completeBreak:
		return NewNull(), exec.errorAt(KindControlFlowError, c.pos, "break cannot cross call boundary")
	case completeContinue:
		return NewNull(), exec.errorAt(KindControlFlowError, c.pos, "continue cannot cross call boundary")
	}
	return NewNull(), nil
}
