package pink

const maxCallArguments = 255

type parser struct {
	tokens  []Token
	current int
	source  string

	errors SyntaxErrors
}

// bailout unwinds the parser to the nearest statement boundary after a
// syntax error has been recorded.
type bailout struct{}

func newParser(tokens []Token, source string) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != tokenEOF {
		var pos Position
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: tokenEOF, Pos: pos})
	}
	return &parser{tokens: tokens, source: source}
}

// Parse converts a token sequence into statements. Every syntax error is
// collected; the parser resynchronizes at the next statement keyword so a
// single mistake reports once.
func Parse(tokens []Token) ([]Statement, error) {
	return parseTokens(tokens, "")
}

// ParseSource scans and parses source text with the default keyword table.
func ParseSource(source string) ([]Statement, error) {
	tokens, err := Scan(source)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, source)
}

func parseTokens(tokens []Token, source string) ([]Statement, error) {
	p := newParser(tokens, source)
	statements := p.parseProgram()
	if len(p.errors) > 0 {
		return statements, p.errors
	}
	return statements, nil
}

func (p *parser) parseProgram() []Statement {
	var statements []Statement
	for !p.atEnd() {
		if p.match(tokenSemicolon) {
			continue
		}
		if stmt := p.declarationOrSync(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *parser) declarationOrSync() (stmt Statement) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize(start)
			stmt = nil
		}
	}()
	return p.declaration()
}

func (p *parser) synchronize(start int) {
	if p.current == start {
		p.advance()
	}
	for !p.atEnd() {
		switch p.peek().Type {
		case tokenLet, tokenFunction, tokenProcedure, tokenIf, tokenWhile, tokenReturn, tokenElse:
			return
		}
		p.advance()
	}
}

func (p *parser) declaration() Statement {
	switch p.peek().Type {
	case tokenLet:
		p.advance()
		return p.varDeclaration()
	case tokenFunction, tokenProcedure:
		if p.peekNext().Type == tokenIdent {
			p.advance()
			return p.functionDeclaration()
		}
	}
	return p.statement()
}

func (p *parser) statement() Statement {
	tok := p.peek()
	switch tok.Type {
	case tokenPrint, tokenPrintln:
		p.advance()
		value := p.expression()
		return &PrintStmt{Expr: value, Newline: tok.Type == tokenPrintln, position: tok.Pos}
	case tokenLBrace:
		p.advance()
		return &BlockStmt{Statements: p.block(), position: tok.Pos}
	case tokenIf:
		p.advance()
		return p.ifStatement(tok)
	case tokenWhile:
		p.advance()
		return p.whileStatement(tok)
	case tokenFor:
		p.advance()
		return p.forStatement(tok)
	case tokenBreak:
		p.advance()
		return &BreakStmt{position: tok.Pos}
	case tokenContinue:
		p.advance()
		return &ContinueStmt{position: tok.Pos}
	case tokenReturn:
		p.advance()
		return p.returnStatement(tok)
	case tokenLet, tokenFunction, tokenProcedure:
		return p.declaration()
	}
	expr := p.expression()
	return &ExprStmt{Expr: expr, position: expr.Pos()}
}

func (p *parser) varDeclaration() Statement {
	keyword := p.previous()
	name := p.consume(tokenIdent, "Expect variable name.")
	var initializer Expression
	if p.match(tokenAssign, tokenWalrus) {
		initializer = p.expression()
	}
	return &VarStmt{Name: name, Initializer: initializer, position: keyword.Pos}
}

func (p *parser) functionDeclaration() Statement {
	keyword := p.previous()
	name := p.consume(tokenIdent, "Expect function name.")
	params, body := p.functionRest("function name")
	return &FunctionStmt{Name: name, Params: params, Body: body, position: keyword.Pos}
}

// functionRest parses `(params)` followed by either `= expr` or a block.
func (p *parser) functionRest(after string) ([]Token, []Statement) {
	p.consume(tokenLParen, "Expect '(' after "+after+".")
	var params []Token
	if !p.check(tokenRParen) {
		for {
			if len(params) >= maxCallArguments {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(tokenIdent, "Expect parameter name."))
			if !p.match(tokenComma) {
				break
			}
		}
	}
	p.consume(tokenRParen, "Expect ')' after parameters.")

	if p.match(tokenAssign) {
		eq := p.previous()
		value := p.expression()
		return params, []Statement{&ReturnStmt{Value: value, position: eq.Pos}}
	}
	p.consume(tokenLBrace, "Expect '{' before function body.")
	return params, p.block()
}

func (p *parser) block() []Statement {
	var statements []Statement
	for !p.check(tokenRBrace) && !p.atEnd() {
		if p.match(tokenSemicolon) {
			continue
		}
		statements = append(statements, p.declaration())
	}
	p.consume(tokenRBrace, "Expect '}' after block.")
	return statements
}

func (p *parser) ifStatement(keyword Token) Statement {
	condition := p.expression()
	p.consume(tokenThen, "Expect 'then' after if condition.")
	thenBranch := p.statement()

	if p.check(tokenSemicolon) && p.peekNext().Type == tokenElse {
		p.advance()
	}
	var elseBranch Statement
	if p.match(tokenElse) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch, position: keyword.Pos}
}

func (p *parser) whileStatement(keyword Token) Statement {
	condition := p.expression()
	p.consume(tokenDo, "Expect 'do' after while condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body, position: keyword.Pos}
}

func (p *parser) forStatement(keyword Token) Statement {
	p.consume(tokenLParen, "Expect '(' after 'for'.")

	var initializer Statement
	switch {
	case p.match(tokenSemicolon):
	case p.match(tokenLet):
		initializer = p.varDeclaration()
		p.consume(tokenSemicolon, "Expect ';' after loop initializer.")
	default:
		expr := p.expression()
		initializer = &ExprStmt{Expr: expr, position: expr.Pos()}
		p.consume(tokenSemicolon, "Expect ';' after loop initializer.")
	}

	var condition Expression
	if !p.check(tokenSemicolon) {
		condition = p.expression()
	}
	p.consume(tokenSemicolon, "Expect ';' after loop condition.")

	var increment Expression
	if !p.check(tokenRParen) {
		increment = p.expression()
	}
	p.consume(tokenRParen, "Expect ')' after for clauses.")

	body := p.statement()
	return &ForStmt{Initializer: initializer, Condition: condition, Increment: increment, Body: body, position: keyword.Pos}
}

func (p *parser) returnStatement(keyword Token) Statement {
	var value Expression
	next := p.peek()
	switch next.Type {
	case tokenRBrace, tokenSemicolon, tokenEOF, tokenElse:
	default:
		if next.Pos.Line == keyword.Pos.Line {
			value = p.expression()
		}
	}
	return &ReturnStmt{Value: value, position: keyword.Pos}
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) atEnd() bool {
	return p.peek().Type == tokenEOF
}

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.fail(p.peek(), message)
	return Token{}
}
