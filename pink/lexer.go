package pink

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultCommentChar = '$'

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune

	keywords *KeywordTable
	comment  rune
	errors   SyntaxErrors
}

func newLexer(input string, keywords *KeywordTable, comment rune) *lexer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	if comment == 0 {
		comment = defaultCommentChar
	}
	l := &lexer{input: input, line: 1, column: 0, keywords: keywords, comment: comment}
	l.readRune()
	return l
}

// Scan converts source text into tokens using the default keyword table.
// The returned slice always ends with an EOF token; when any character could
// not be scanned the error is a SyntaxErrors listing every failure.
func Scan(source string) ([]Token, error) {
	return scanWith(source, DefaultKeywords(), defaultCommentChar)
}

func scanWith(source string, keywords *KeywordTable, comment rune) ([]Token, error) {
	l := newLexer(source, keywords, comment)
	tokens := l.scanAll()
	if len(l.errors) > 0 {
		return tokens, l.errors
	}
	return tokens, nil
}

func (l *lexer) scanAll() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens
		}
	}
}

func (l *lexer) atEnd() bool {
	return l.width == 0
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

// NextToken returns the next token, recording and skipping anything that
// cannot be scanned.
func (l *lexer) NextToken() Token {
	for {
		l.skipWhitespaceAndComments()
		if tok, ok := l.scanToken(); ok {
			return tok
		}
	}
}

func (l *lexer) scanToken() (Token, bool) {
	pos := Position{Line: l.line, Column: l.column}
	start := l.currentOffset()

	if l.atEnd() {
		return Token{Type: tokenEOF, Pos: pos}, true
	}

	simple := func(tt TokenType) (Token, bool) {
		l.readRune()
		return Token{Type: tt, Lexeme: l.input[start:l.currentOffset()], Pos: pos}, true
	}
	pair := func(next rune, two, one TokenType) (Token, bool) {
		if l.peekRune() == next {
			l.readRune()
			return simple(two)
		}
		return simple(one)
	}

	switch l.ch {
	case '(':
		return simple(tokenLParen)
	case ')':
		return simple(tokenRParen)
	case '{':
		return simple(tokenLBrace)
	case '}':
		return simple(tokenRBrace)
	case '[':
		return simple(tokenLBracket)
	case ']':
		return simple(tokenRBracket)
	case ',':
		return simple(tokenComma)
	case ';':
		return simple(tokenSemicolon)
	case '+':
		return simple(tokenPlus)
	case '-':
		return simple(tokenMinus)
	case '*':
		return simple(tokenAsterisk)
	case '/':
		return simple(tokenSlash)
	case '%':
		return simple(tokenPercent)
	case '&':
		return simple(tokenConcat)
	case '.':
		return pair('.', tokenRange, tokenDot)
	case '!':
		return pair('=', tokenNotEQ, tokenBang)
	case '=':
		return pair('=', tokenEQ, tokenAssign)
	case '<':
		return pair('=', tokenLTE, tokenLT)
	case '>':
		return pair('=', tokenGTE, tokenGT)
	case ':':
		if l.peekRune() == '=' {
			l.readRune()
			return simple(tokenWalrus)
		}
	case '|':
		if l.peekRune() == '>' {
			l.readRune()
			return simple(tokenPipe)
		}
	case '"':
		return l.readString(pos, start)
	case '\'':
		return l.readChar(pos, start)
	default:
		switch {
		case isIdentifierStart(l.ch):
			literal := l.readIdentifier()
			return Token{Type: l.keywords.lookup(literal), Lexeme: literal, Pos: pos}, true
		case isDigit(l.ch):
			return l.readNumber(pos, start)
		}
	}

	l.addError(pos, fmt.Sprintf("Unexpected character '%c'.", l.ch))
	l.readRune()
	return Token{}, false
}

func (l *lexer) addError(pos Position, msg string) {
	l.errors = append(l.errors, &SyntaxError{Pos: pos, Message: msg, source: l.input})
}

func (l *lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case l.ch == l.comment:
			for !l.atEnd() && l.ch != '\n' {
				l.readRune()
			}
		case unicode.IsSpace(l.ch):
			l.readRune()
		default:
			return
		}
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.ch) {
		l.readRune()
	}
	return l.input[start:l.currentOffset()]
}

func (l *lexer) readNumber(pos Position, start int) (Token, bool) {
	for isDigit(l.ch) {
		l.readRune()
	}
	if l.ch == '.' && isDigit(l.peekRune()) {
		l.readRune()
		for isDigit(l.ch) {
			l.readRune()
		}
	}
	lexeme := l.input[start:l.currentOffset()]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.addError(pos, fmt.Sprintf("Invalid number literal '%s'.", lexeme))
		return Token{}, false
	}
	return Token{Type: tokenNumber, Lexeme: lexeme, Literal: value, Pos: pos}, true
}

func (l *lexer) readString(pos Position, start int) (Token, bool) {
	var sb strings.Builder
	l.readRune()
	for {
		if l.atEnd() {
			l.addError(pos, "Unterminated string.")
			return Token{}, false
		}
		switch l.ch {
		case '"':
			l.readRune()
			return Token{Type: tokenString, Lexeme: l.input[start:l.currentOffset()], Literal: sb.String(), Pos: pos}, true
		case '\\':
			l.readRune()
			if l.atEnd() {
				continue
			}
			sb.WriteRune(unescape(l.ch))
			l.readRune()
		default:
			sb.WriteRune(l.ch)
			l.readRune()
		}
	}
}

func (l *lexer) readChar(pos Position, start int) (Token, bool) {
	l.readRune()
	if l.atEnd() || l.ch == '\n' || l.ch == '\'' {
		l.addError(pos, "Unterminated char literal.")
		if l.ch == '\'' {
			l.readRune()
		}
		return Token{}, false
	}
	value := l.ch
	if l.ch == '\\' {
		l.readRune()
		if l.atEnd() {
			l.addError(pos, "Unterminated char literal.")
			return Token{}, false
		}
		value = unescape(l.ch)
	}
	l.readRune()
	if l.ch != '\'' {
		l.addError(pos, "Unterminated char literal.")
		for !l.atEnd() && l.ch != '\n' && l.ch != '\'' {
			l.readRune()
		}
		if l.ch == '\'' {
			l.readRune()
		}
		return Token{}, false
	}
	l.readRune()
	return Token{Type: tokenChar, Lexeme: l.input[start:l.currentOffset()], Literal: value, Pos: pos}, true
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
