package pink

import "fmt"

type completionKind int

const (
	completeNormal completionKind = iota
	completeBreak
	completeContinue
	completeReturn
)

// completion is how a statement finished. Loops consume break and continue,
// calls consume return; anything else propagates to the enclosing statement.
type completion struct {
	kind  completionKind
	value Value
	pos   Position
}

var normalCompletion = completion{kind: completeNormal}

func (exec *Execution) execStatement(stmt Statement, env *Env) (completion, error) {
	if err := exec.step(); err != nil {
		return normalCompletion, err
	}

	switch s := stmt.(type) {
	case *ExprStmt:
		_, err := exec.eval(s.Expr, env)
		return normalCompletion, err
	case *PrintStmt:
		val, err := exec.eval(s.Expr, env)
		if err != nil {
			return normalCompletion, err
		}
		if s.Newline {
			_, err = fmt.Fprintln(exec.interp.stdout, val.String())
		} else {
			_, err = fmt.Fprint(exec.interp.stdout, val.String())
		}
		if err != nil {
			return normalCompletion, exec.errorAt(KindRuntimeError, s.Pos(), "write output: %v", err)
		}
		return normalCompletion, nil
	case *VarStmt:
		val := NewNull()
		if s.Initializer != nil {
			var err error
			val, err = exec.eval(s.Initializer, env)
			if err != nil {
				return normalCompletion, err
			}
		}
		env.Define(s.Name.Lexeme, val)
		return normalCompletion, nil
	case *BlockStmt:
		return exec.execBlock(s.Statements, newEnv(env))
	case *IfStmt:
		cond, err := exec.eval(s.Condition, env)
		if err != nil {
			return normalCompletion, err
		}
		if cond.Truthy() {
			return exec.execStatement(s.Then, env)
		}
		if s.Else != nil {
			return exec.execStatement(s.Else, env)
		}
		return normalCompletion, nil
	case *WhileStmt:
		return exec.execWhile(s, env)
	case *ForStmt:
		return exec.execFor(s, env)
	case *BreakStmt:
		return completion{kind: completeBreak, pos: s.Pos()}, nil
	case *ContinueStmt:
		return completion{kind: completeContinue, pos: s.Pos()}, nil
	case *ReturnStmt:
		val := NewNull()
		if s.Value != nil {
			var err error
			val, err = exec.eval(s.Value, env)
			if err != nil {
				return normalCompletion, err
			}
		}
		return completion{kind: completeReturn, value: val, pos: s.Pos()}, nil
	case *FunctionStmt:
		env.Define(s.Name.Lexeme, newFunction(s.Name.Lexeme, s.Params, s.Body, env, s.Pos()))
		return normalCompletion, nil
	default:
		return normalCompletion, exec.errorAt(KindRuntimeError, stmt.Pos(), "unsupported statement %T", stmt)
	}
}

// execBlock runs statements in env, stopping at the first error or
// non-normal completion.
func (exec *Execution) execBlock(stmts []Statement, env *Env) (completion, error) {
	for _, stmt := range stmts {
		c, err := exec.execStatement(stmt, env)
		if err != nil || c.kind != completeNormal {
			return c, err
		}
	}
	return normalCompletion, nil
}

func (exec *Execution) execWhile(s *WhileStmt, env *Env) (completion, error) {
	for {
		cond, err := exec.eval(s.Condition, env)
		if err != nil {
			return normalCompletion, err
		}
		if !cond.Truthy() {
			return normalCompletion, nil
		}
		c, err := exec.execStatement(s.Body, env)
		if err != nil {
			return normalCompletion, err
		}
		switch c.kind {
		case completeBreak:
			return normalCompletion, nil
		case completeReturn:
			return c, nil
		}
		if err := exec.step(); err != nil {
			return normalCompletion, err
		}
	}
}

// execFor gives every iteration its own copy of the loop scope, so closures
// created in the body keep the values of the iteration that made them.
func (exec *Execution) execFor(s *ForStmt, env *Env) (completion, error) {
	iterEnv := newEnv(env)
	if s.Initializer != nil {
		if _, err := exec.execStatement(s.Initializer, iterEnv); err != nil {
			return normalCompletion, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := exec.eval(s.Condition, iterEnv)
			if err != nil {
				return normalCompletion, err
			}
			if !cond.Truthy() {
				return normalCompletion, nil
			}
		}

		c, err := exec.execStatement(s.Body, iterEnv)
		if err != nil {
			return normalCompletion, err
		}
		switch c.kind {
		case completeBreak:
			return normalCompletion, nil
		case completeReturn:
			return c, nil
		}

		iterEnv = iterEnv.cloneShallow()
		if s.Increment != nil {
			if _, err := exec.eval(s.Increment, iterEnv); err != nil {
				return normalCompletion, err
			}
		}
		if err := exec.step(); err != nil {
			return normalCompletion, err
		}
	}
}
