package pink

func (exec *Execution) eval(expr Expression, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return literalValue(e.Value), nil
	case *GroupingExpr:
		return exec.eval(e.Inner, env)
	case *VariableExpr:
		val, err := env.Get(e.Name.Lexeme)
		if err != nil {
			return NewNull(), exec.wrapError(err, e.Pos())
		}
		return val, nil
	case *AssignExpr:
		val, err := exec.eval(e.Value, env)
		if err != nil {
			return NewNull(), err
		}
		if err := env.Assign(e.Name.Lexeme, val); err != nil {
			return NewNull(), exec.wrapError(err, e.Name.Pos)
		}
		return val, nil
	case *UnaryExpr:
		right, err := exec.eval(e.Right, env)
		if err != nil {
			return NewNull(), err
		}
		val, err := unaryOp(e.Operator, right)
		if err != nil {
			return NewNull(), exec.wrapError(err, e.Pos())
		}
		return val, nil
	case *BinaryExpr:
		return exec.evalBinary(e, env)
	case *CallExpr:
		return exec.evalCall(e, env)
	case *IndexExpr:
		target, err := exec.eval(e.Target, env)
		if err != nil {
			return NewNull(), err
		}
		index, err := exec.eval(e.Index, env)
		if err != nil {
			return NewNull(), err
		}
		val, err := indexValue(target, index)
		if err != nil {
			return NewNull(), exec.wrapError(err, e.Pos())
		}
		return val, nil
	case *ArrayLiteral:
		items := make([]Value, 0, len(e.Elements))
		for _, el := range e.Elements {
			val, err := exec.eval(el, env)
			if err != nil {
				return NewNull(), err
			}
			items = append(items, val)
		}
		return NewList(items), nil
	case *RangeExpr:
		return exec.evalRange(e, env)
	case *SelectExpr:
		cond, err := exec.eval(e.Condition, env)
		if err != nil {
			return NewNull(), err
		}
		if cond.Truthy() {
			return exec.eval(e.Then, env)
		}
		return exec.eval(e.Else, env)
	case *InExpr:
		left, err := exec.eval(e.Left, env)
		if err != nil {
			return NewNull(), err
		}
		right, err := exec.eval(e.Right, env)
		if err != nil {
			return NewNull(), err
		}
		found, err := contains(right, left)
		if err != nil {
			return NewNull(), exec.wrapError(err, e.Pos())
		}
		return NewBool(found), nil
	case *FunctionExpr:
		return newFunction("", e.Params, e.Body, env, e.Pos()), nil
	default:
		return NewNull(), exec.errorAt(KindRuntimeError, expr.Pos(), "unsupported expression %T", expr)
	}
}

func (exec *Execution) evalBinary(e *BinaryExpr, env *Env) (Value, error) {
	left, err := exec.eval(e.Left, env)
	if err != nil {
		return NewNull(), err
	}
	switch e.Operator.Type {
	case tokenOr:
		if left.Truthy() {
			return left, nil
		}
		return exec.eval(e.Right, env)
	case tokenAnd:
		if !left.Truthy() {
			return left, nil
		}
		return exec.eval(e.Right, env)
	}

	right, err := exec.eval(e.Right, env)
	if err != nil {
		return NewNull(), err
	}
	val, err := binaryOp(e.Operator, left, right)
	if err != nil {
		return NewNull(), exec.wrapError(err, e.Pos())
	}
	return val, nil
}

func (exec *Execution) evalRange(e *RangeExpr, env *Env) (Value, error) {
	start, err := exec.eval(e.Start, env)
	if err != nil {
		return NewNull(), err
	}
	end, err := exec.eval(e.End, env)
	if err != nil {
		return NewNull(), err
	}
	var step *Value
	if e.Step != nil {
		s, err := exec.eval(e.Step, env)
		if err != nil {
			return NewNull(), err
		}
		step = &s
	}
	val, err := makeRange(start, end, step)
	if err != nil {
		return NewNull(), exec.wrapError(err, e.Pos())
	}
	return val, nil
}
