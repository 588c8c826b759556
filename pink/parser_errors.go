package pink

import "fmt"

// errorAt records a syntax error at tok and lets parsing continue.
func (p *parser) errorAt(tok Token, msg string) {
	p.errors = append(p.errors, &SyntaxError{
		Pos:     tok.Pos,
		Where:   errorLocation(tok),
		Message: msg,
		source:  p.source,
	})
}

// fail records a syntax error and abandons the current statement.
func (p *parser) fail(tok Token, msg string) {
	p.errorAt(tok, msg)
	panic(bailout{})
}

func errorLocation(tok Token) string {
	if tok.Type == tokenEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
