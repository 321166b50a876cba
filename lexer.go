package loxt

import (
	"math"
	"unicode/utf8"

	"github.com/KimNorgaard/go-loxt/errors"
	"github.com/KimNorgaard/go-loxt/token"
)

const (
	msgUnterminatedString = "string unterminated"
	msgUnrecognizedChar   = "unrecognized character"
	msgNumberOutOfRange   = "number literal out of range"
)

// punctuation maps the single-character kinds that never need lookahead.
var punctuation = func() [utf8.RuneSelf]token.Kind {
	var m [utf8.RuneSelf]token.Kind
	for i := range m {
		m[i] = token.Error
	}
	for k := token.LeftParen; k <= token.Asterisk; k++ {
		m[k.Spelling()[0]] = k
	}
	return m
}()

// lexer holds the state of a single scan.
type lexer struct {
	cur  cursor
	list *TokenList
	opts options
}

// Lex scans src and returns its tokens. It never fails: lexical errors
// become Error tokens, are sent to the configured reporter and make
// HasError report true. The returned list always ends with exactly one Eof
// token and does not retain src.
func Lex(src []byte, opts ...Option) *TokenList {
	o := options{reporter: errors.Discard, overflow: OverflowReject}
	for _, opt := range opts {
		opt(&o)
	}

	l := &lexer{cur: newCursor(src), list: newTokenList(), opts: o}
	for !l.cur.atEnd() {
		l.next()
	}
	l.emit(token.Eof, l.cur.loc, token.NoIndex)
	return l.list
}

// next scans one lexical item. Whitespace and comments produce no token.
func (l *lexer) next() {
	ch, start := l.cur.advance()
	switch ch {
	case '!':
		l.emit(l.either('=', token.BangEqual, token.Bang), start, token.NoIndex)
	case '=':
		l.emit(l.either('=', token.EqualEqual, token.Equal), start, token.NoIndex)
	case '<':
		l.emit(l.either('=', token.LessEqual, token.Less), start, token.NoIndex)
	case '>':
		l.emit(l.either('=', token.GreaterEqual, token.Greater), start, token.NoIndex)
	case '/':
		if l.cur.match('/') {
			l.skipComment()
		} else {
			l.emit(token.BackSlash, start, token.NoIndex)
		}
	case '"':
		l.readString(start)
	case ' ', '\t', '\n', '\v', '\f', '\r':
	default:
		switch {
		case ch < utf8.RuneSelf && punctuation[ch] != token.Error:
			l.emit(punctuation[ch], start, token.NoIndex)
		case isDigit(ch):
			l.readNumber(start)
		case isLetter(ch):
			l.readIdentifier(start)
		default:
			l.unrecognized(ch, start)
		}
	}
}

// either consumes expected and returns two if it is next, otherwise one.
func (l *lexer) either(expected byte, two, one token.Kind) token.Kind {
	if l.cur.match(expected) {
		return two
	}
	return one
}

func (l *lexer) skipComment() {
	for !l.cur.atEnd() && l.cur.peek() != '\n' {
		l.cur.advance()
	}
}

func (l *lexer) readString(start token.Location) {
	for !l.cur.atEnd() && l.cur.peek() != '"' {
		l.cur.advance()
	}
	if l.cur.atEnd() {
		l.fail(start, msgUnterminatedString)
		return
	}
	body := string(l.cur.since(start)[1:])
	l.cur.advance() // closing quote
	l.emit(token.String, start, l.list.strings.add(body))
}

func (l *lexer) readNumber(start token.Location) {
	for isDigit(l.cur.peek()) {
		l.cur.advance()
	}
	v, ok := parseUint(l.cur.since(start), l.opts.overflow)
	if !ok {
		l.fail(start, msgNumberOutOfRange)
		return
	}
	l.emit(token.Number, start, l.list.numbers.add(v))
}

func (l *lexer) readIdentifier(start token.Location) {
	for c := l.cur.peek(); isLetter(c) || isDigit(c); c = l.cur.peek() {
		l.cur.advance()
	}
	spelling := l.cur.since(start)
	if kind := token.LookupIdent(string(spelling)); kind != token.Identifier {
		l.emit(kind, start, token.NoIndex)
		return
	}
	l.emit(token.Identifier, start, l.list.idents.intern(spelling))
}

// unrecognized reports ch. A valid multi-byte UTF-8 sequence is consumed
// and reported as one character.
func (l *lexer) unrecognized(ch byte, start token.Location) {
	if ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(l.cur.src[start.Offset:])
		for range size - 1 {
			l.cur.advance()
		}
	}
	l.fail(start, msgUnrecognizedChar)
}

func (l *lexer) emit(kind token.Kind, at token.Location, index uint32) {
	l.list.tokens = append(l.list.tokens, token.Token{Kind: kind, Loc: at, Index: index})
}

func (l *lexer) fail(at token.Location, msg string) {
	l.emit(token.Error, at, token.NoIndex)
	l.list.errs = append(l.list.errs, errors.LexError{Message: msg, Line: at.Line, Column: at.Column})
	l.opts.reporter.Report(at.Line, at.Column, msg)
}

// parseUint decodes a run of decimal digits. It reports false only when
// the value overflows and policy is OverflowReject.
func parseUint(digits []byte, policy OverflowPolicy) (uint64, bool) {
	var v uint64
	overflow := false
	for _, c := range digits {
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			overflow = true
		}
		v = v*10 + d
	}
	if !overflow {
		return v, true
	}
	switch policy {
	case OverflowSaturate:
		return math.MaxUint64, true
	case OverflowWrap:
		return v, true
	}
	return 0, false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}
