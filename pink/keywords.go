package pink

import (
	"fmt"
	"sort"
)

// keywordNames maps the canonical keyword name, as used in configuration
// files, to its token type. The canonical name is also the default spelling.
var keywordNames = map[string]TokenType{
	"let":       tokenLet,
	"function":  tokenFunction,
	"procedure": tokenProcedure,
	"return":    tokenReturn,
	"if":        tokenIf,
	"then":      tokenThen,
	"else":      tokenElse,
	"while":     tokenWhile,
	"do":        tokenDo,
	"for":       tokenFor,
	"break":     tokenBreak,
	"continue":  tokenContinue,
	"print":     tokenPrint,
	"println":   tokenPrintln,
	"select":    tokenSelect,
	"in":        tokenIn,
	"step":      tokenStep,
	"and":       tokenAnd,
	"or":        tokenOr,
	"not":       tokenNot,
	"true":      tokenTrue,
	"false":     tokenFalse,
	"null":      tokenNull,
}

// KeywordTable resolves identifier spellings to keyword token types.
type KeywordTable struct {
	bySpelling map[string]TokenType
	byType     map[TokenType]string
}

// DefaultKeywords returns the table with every keyword spelled by its canonical name.
func DefaultKeywords() *KeywordTable {
	table, _ := NewKeywordTable(nil)
	return table
}

// NewKeywordTable builds a keyword table from the defaults with the given
// overrides applied. Overrides map canonical names to new spellings, e.g.
// {"continue": "again", "print": "write"}.
func NewKeywordTable(overrides map[string]string) (*KeywordTable, error) {
	spellings := make(map[string]string, len(keywordNames))
	for name := range keywordNames {
		spellings[name] = name
	}
	for name, spelling := range overrides {
		if _, ok := keywordNames[name]; !ok {
			return nil, fmt.Errorf("pink: unknown keyword %q", name)
		}
		if !isIdentifier(spelling) {
			return nil, fmt.Errorf("pink: keyword %q spelling %q is not an identifier", name, spelling)
		}
		spellings[name] = spelling
	}

	table := &KeywordTable{
		bySpelling: make(map[string]TokenType, len(spellings)),
		byType:     make(map[TokenType]string, len(spellings)),
	}
	names := make([]string, 0, len(spellings))
	for name := range spellings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spelling := spellings[name]
		if _, taken := table.bySpelling[spelling]; taken {
			return nil, fmt.Errorf("pink: keyword spelling %q is used more than once", spelling)
		}
		tt := keywordNames[name]
		table.bySpelling[spelling] = tt
		table.byType[tt] = spelling
	}
	return table, nil
}

func (k *KeywordTable) lookup(ident string) TokenType {
	if tt, ok := k.bySpelling[ident]; ok {
		return tt
	}
	return tokenIdent
}

// Spelling returns the source spelling of a keyword token type.
func (k *KeywordTable) Spelling(tt TokenType) (string, bool) {
	s, ok := k.byType[tt]
	return s, ok
}

// Words lists every keyword spelling in sorted order.
func (k *KeywordTable) Words() []string {
	words := make([]string, 0, len(k.bySpelling))
	for w := range k.bySpelling {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentifierStart(r) {
			return false
		}
		if !isIdentifierRune(r) {
			return false
		}
	}
	return true
}
