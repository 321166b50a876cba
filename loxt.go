package loxt

import (
	"fmt"
	"iter"
	"strings"

	"github.com/KimNorgaard/go-loxt/errors"
	"github.com/KimNorgaard/go-loxt/token"
)

// TokenList is the result of one scan. It owns the tokens, the identifier
// table and the literal stores, and is read-only once Lex returns.
//
// Accessors taking an id or an index panic when it is out of range, like
// slice indexing does.
type TokenList struct {
	tokens  []token.Token
	idents  interner
	strings literalStore[string]
	numbers literalStore[uint64]
	errs    errors.LexErrors
}

func newTokenList() *TokenList {
	return &TokenList{idents: newInterner()}
}

// Len returns the number of tokens, including the final Eof.
func (tl *TokenList) Len() int { return len(tl.tokens) }

// At returns the i-th token.
func (tl *TokenList) At(i int) token.Token { return tl.tokens[i] }

// Tokens returns a copy of the token sequence.
func (tl *TokenList) Tokens() []token.Token {
	return append([]token.Token(nil), tl.tokens...)
}

// All iterates over the tokens in source order.
func (tl *TokenList) All() iter.Seq2[int, token.Token] {
	return func(yield func(int, token.Token) bool) {
		for i, tok := range tl.tokens {
			if !yield(i, tok) {
				return
			}
		}
	}
}

// Identifier returns the spelling of the identifier with the given id.
func (tl *TokenList) Identifier(id uint32) string { return tl.idents.spelling(id) }

// IdentifierCount returns the number of distinct identifier spellings.
func (tl *TokenList) IdentifierCount() int { return tl.idents.len() }

// StringLiteral returns the decoded value of the string literal with the
// given id.
func (tl *TokenList) StringLiteral(id uint32) string { return tl.strings.at(id) }

// StringLiteralCount returns the number of string literals.
func (tl *TokenList) StringLiteralCount() int { return tl.strings.len() }

// NumberLiteral returns the decoded value of the number literal with the
// given id.
func (tl *TokenList) NumberLiteral(id uint32) uint64 { return tl.numbers.at(id) }

// NumberLiteralCount returns the number of number literals.
func (tl *TokenList) NumberLiteralCount() int { return tl.numbers.len() }

// HasError reports whether the scan found any lexical error. Callers must
// check it before handing the tokens to a later stage.
func (tl *TokenList) HasError() bool { return len(tl.errs) > 0 }

// Errors returns every lexical error in the order it was found.
func (tl *TokenList) Errors() errors.LexErrors { return tl.errs }

// Err returns the lexical errors as an error, or nil if there were none.
func (tl *TokenList) Err() error {
	if !tl.HasError() {
		return nil
	}
	return tl.errs
}

// Format renders tok for debugging, e.g.
//
//	{kind: Identifier, line: 1, column: 5, identifier: main}
func (tl *TokenList) Format(tok token.Token) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{kind: %s, line: %d, column: %d", tok.Kind, tok.Loc.Line, tok.Loc.Column)
	switch tok.Kind {
	case token.Identifier:
		fmt.Fprintf(&b, ", identifier: %s", tl.Identifier(tok.Index))
	case token.String:
		fmt.Fprintf(&b, ", literal: \"%s\"", tl.StringLiteral(tok.Index))
	case token.Number:
		fmt.Fprintf(&b, ", literal: %d", tl.NumberLiteral(tok.Index))
	}
	b.WriteByte('}')
	return b.String()
}

// String renders every token with Format, one per line.
func (tl *TokenList) String() string {
	var b strings.Builder
	for _, tok := range tl.tokens {
		b.WriteString(tl.Format(tok))
		b.WriteByte('\n')
	}
	return b.String()
}
