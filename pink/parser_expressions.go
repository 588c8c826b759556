package pink

const (
	lowestPrec = iota
	precAndOr
	precIn
	precEquality
	precComparison
	precConcat
	precRange
	precSum
	precProduct
)

var precedences = map[TokenType]int{
	tokenAnd:      precAndOr,
	tokenOr:       precAndOr,
	tokenIn:       precIn,
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenLT:       precComparison,
	tokenLTE:      precComparison,
	tokenGT:       precComparison,
	tokenGTE:      precComparison,
	tokenConcat:   precConcat,
	tokenRange:    precRange,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
	tokenPercent:  precProduct,
}

func (p *parser) expression() Expression {
	return p.assignment()
}

func (p *parser) assignment() Expression {
	expr := p.pipeline()
	if p.match(tokenAssign, tokenWalrus) {
		equals := p.previous()
		value := p.assignment()
		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: value, position: equals.Pos}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

// pipeline rewrites `x |> f(a)` into `f(x, a)` and `x |> f` into `f(x)`.
func (p *parser) pipeline() Expression {
	expr := p.logicalNot()
	for p.match(tokenPipe) {
		op := p.previous()
		right := p.logicalNot()
		if call, ok := right.(*CallExpr); ok {
			args := make([]Expression, 0, len(call.Arguments)+1)
			args = append(args, expr)
			args = append(args, call.Arguments...)
			expr = &CallExpr{Callee: call.Callee, Paren: call.Paren, Arguments: args, position: call.position}
			continue
		}
		expr = &CallExpr{Callee: right, Paren: op, Arguments: []Expression{expr}, position: right.Pos()}
	}
	return expr
}

// logicalNot handles the keyword form, which binds looser than and/or:
// `not a and b` negates the whole conjunction.
func (p *parser) logicalNot() Expression {
	if p.match(tokenNot) {
		op := p.previous()
		right := p.logicalNot()
		return &UnaryExpr{Operator: op, Right: right, position: op.Pos}
	}
	return p.binary(precAndOr)
}

func (p *parser) binary(minPrec int) Expression {
	left := p.unary()
	for {
		op := p.peek()
		prec, ok := precedences[op.Type]
		if !ok || prec < minPrec {
			return left
		}
		p.advance()

		switch op.Type {
		case tokenRange:
			end := p.binary(prec + 1)
			var step Expression
			if p.match(tokenStep) {
				step = p.binary(prec + 1)
			}
			left = &RangeExpr{Start: left, End: end, Step: step, position: op.Pos}
			if p.check(tokenRange) {
				p.fail(p.peek(), "Range expressions cannot be chained.")
			}
		case tokenIn:
			right := p.binary(prec + 1)
			left = &InExpr{Left: left, Right: right, position: op.Pos}
		default:
			right := p.binary(prec + 1)
			left = &BinaryExpr{Left: left, Operator: op, Right: right, position: op.Pos}
		}
	}
}

func (p *parser) unary() Expression {
	if p.match(tokenBang, tokenMinus, tokenNot) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: op, Right: right, position: op.Pos}
	}
	return p.postfix()
}

func (p *parser) postfix() Expression {
	expr := p.primary()
	for {
		switch {
		case p.match(tokenLParen):
			expr = p.finishCall(expr)
		case p.match(tokenLBracket):
			bracket := p.previous()
			index := p.expression()
			p.consume(tokenRBracket, "Expect ']' after index.")
			expr = &IndexExpr{Target: expr, Index: index, position: bracket.Pos}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee Expression) Expression {
	var args []Expression
	if !p.check(tokenRParen) {
		for {
			if len(args) >= maxCallArguments {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(tokenComma) {
				break
			}
		}
	}
	paren := p.consume(tokenRParen, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args, position: callee.Pos()}
}

func (p *parser) primary() Expression {
	tok := p.peek()
	switch tok.Type {
	case tokenFalse:
		p.advance()
		return &LiteralExpr{Value: false, position: tok.Pos}
	case tokenTrue:
		p.advance()
		return &LiteralExpr{Value: true, position: tok.Pos}
	case tokenNull:
		p.advance()
		return &LiteralExpr{Value: nil, position: tok.Pos}
	case tokenNumber, tokenString, tokenChar:
		p.advance()
		return &LiteralExpr{Value: tok.Literal, position: tok.Pos}
	case tokenIdent:
		p.advance()
		return &VariableExpr{Name: tok, position: tok.Pos}
	case tokenLParen:
		p.advance()
		inner := p.expression()
		p.consume(tokenRParen, "Expect ')' after expression.")
		return &GroupingExpr{Inner: inner, position: tok.Pos}
	case tokenLBracket:
		p.advance()
		return p.arrayLiteral(tok)
	case tokenSelect:
		p.advance()
		return p.selectExpression(tok)
	case tokenFunction, tokenProcedure:
		p.advance()
		params, body := p.functionRest("'" + tok.Lexeme + "'")
		return &FunctionExpr{Params: params, Body: body, position: tok.Pos}
	}
	p.fail(tok, "Expect expression.")
	return nil
}

func (p *parser) arrayLiteral(open Token) Expression {
	var elements []Expression
	if !p.check(tokenRBracket) {
		for {
			elements = append(elements, p.expression())
			if !p.match(tokenSemicolon) {
				break
			}
		}
	}
	p.consume(tokenRBracket, "Expect ']' after list elements.")
	return &ArrayLiteral{Elements: elements, position: open.Pos}
}

func (p *parser) selectExpression(keyword Token) Expression {
	condition := p.expression()
	p.consume(tokenThen, "Expect 'then' after select condition.")
	thenValue := p.expression()
	p.consume(tokenElse, "Expect 'else' after select value.")
	elseValue := p.expression()
	return &SelectExpr{Condition: condition, Then: thenValue, Else: elseValue, position: keyword.Pos}
}
