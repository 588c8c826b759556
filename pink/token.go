package pink

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"
	tokenChar   TokenType = "CHAR"

	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"
	tokenComma     TokenType = ","
	tokenDot       TokenType = "."
	tokenSemicolon TokenType = ";"
	tokenPlus      TokenType = "+"
	tokenMinus     TokenType = "-"
	tokenAsterisk  TokenType = "*"
	tokenSlash     TokenType = "/"
	tokenPercent   TokenType = "%"
	tokenConcat    TokenType = "&"
	tokenBang      TokenType = "!"
	tokenAssign    TokenType = "="
	tokenLT        TokenType = "<"
	tokenGT        TokenType = ">"
	tokenNotEQ     TokenType = "!="
	tokenEQ        TokenType = "=="
	tokenLTE       TokenType = "<="
	tokenGTE       TokenType = ">="
	tokenRange     TokenType = ".."
	tokenWalrus    TokenType = ":="
	tokenPipe      TokenType = "|>"

	tokenLet       TokenType = "LET"
	tokenFunction  TokenType = "FUNCTION"
	tokenProcedure TokenType = "PROCEDURE"
	tokenReturn    TokenType = "RETURN"
	tokenIf        TokenType = "IF"
	tokenThen      TokenType = "THEN"
	tokenElse      TokenType = "ELSE"
	tokenWhile     TokenType = "WHILE"
	tokenDo        TokenType = "DO"
	tokenFor       TokenType = "FOR"
	tokenBreak     TokenType = "BREAK"
	tokenContinue  TokenType = "CONTINUE"
	tokenPrint     TokenType = "PRINT"
	tokenPrintln   TokenType = "PRINTLN"
	tokenSelect    TokenType = "SELECT"
	tokenIn        TokenType = "IN"
	tokenStep      TokenType = "STEP"
	tokenAnd       TokenType = "AND"
	tokenOr        TokenType = "OR"
	tokenNot       TokenType = "NOT"
	tokenTrue      TokenType = "TRUE"
	tokenFalse     TokenType = "FALSE"
	tokenNull      TokenType = "NULL"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Pos     Position
}

// Position identifies a location in the source text. Lines and columns are 1-based.
type Position struct {
	Line   int
	Column int
}

func (t Token) String() string {
	switch lit := t.Literal.(type) {
	case nil:
		return fmt.Sprintf("%d:%d\t%s\t%q", t.Pos.Line, t.Pos.Column, t.Type, t.Lexeme)
	case rune:
		return fmt.Sprintf("%d:%d\t%s\t%q\t%q", t.Pos.Line, t.Pos.Column, t.Type, t.Lexeme, lit)
	case float64:
		return fmt.Sprintf("%d:%d\t%s\t%q\t%s", t.Pos.Line, t.Pos.Column, t.Type, t.Lexeme, formatNumber(lit))
	default:
		return fmt.Sprintf("%d:%d\t%s\t%q\t%v", t.Pos.Line, t.Pos.Column, t.Type, t.Lexeme, lit)
	}
}
