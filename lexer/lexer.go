// Package lexer provides the character cursor the parser reads from: a single
// rune of lookahead, source positions and the classes of runes the grammar
// knows about.
package lexer

import (
	"errors"
	"io"
	"strings"
	"text/scanner"
)

// EOF is returned by Peek and Next once the input is exhausted.
const EOF rune = scanner.EOF

// Lexer reads runes from an input stream, one at a time, remembering the
// runes consumed since the last call to Mark so they can be emitted as a
// Token.
type Lexer struct {
	in *scanner.Scanner

	lastErr error

	buf   []rune
	start Position
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		buf: []rune{},
	}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(s *scanner.Scanner, msg string) {
		if lx.lastErr == nil {
			lx.lastErr = errors.New(msg)
		}
	}

	lx.in = s
	lx.Mark()
	return lx
}

// NewFromString initializes a Lexer that reads from s.
func NewFromString(s string) *Lexer {
	return New(strings.NewReader(s))
}

// Peek returns the next rune without consuming it.
func (lx *Lexer) Peek() rune {
	return lx.in.Peek()
}

// Next consumes and returns the next rune.
func (lx *Lexer) Next() rune {
	r := lx.in.Next()
	if r == EOF {
		return EOF
	}
	lx.buf = append(lx.buf, r)
	return r
}

// Accept consumes the next rune only if fn reports true for it.
func (lx *Lexer) Accept(fn func(rune) bool) bool {
	if r := lx.Peek(); r != EOF && fn(r) {
		lx.Next()
		return true
	}
	return false
}

// AcceptRun consumes runes for as long as fn reports true and returns how
// many were consumed.
func (lx *Lexer) AcceptRun(fn func(rune) bool) int {
	n := 0
	for lx.Accept(fn) {
		n++
	}
	return n
}

// SkipWhitespace discards any whitespace ahead and starts a new token.
func (lx *Lexer) SkipWhitespace() {
	lx.AcceptRun(IsWhitespace)
	lx.Mark()
}

// Pos returns the line and column of the next rune.
func (lx *Lexer) Pos() (int, int) {
	pos := lx.Position()
	return pos.Line, pos.Col
}

// Position returns the position of the next rune.
func (lx *Lexer) Position() Position {
	pos := lx.in.Pos()
	return Position{
		Line:   pos.Line,
		Col:    pos.Column,
		Offset: pos.Offset,
	}
}

// Mark starts a new token at the current position.
func (lx *Lexer) Mark() {
	lx.buf = lx.buf[0:0]
	lx.start = lx.Position()
}

// Emit returns a token made of all the runes consumed since the last Mark
// and starts a new one.
func (lx *Lexer) Emit(tt TokenType) *Token {
	tok := NewTokenAt(tt, string(lx.buf), lx.start)
	lx.Mark()
	return tok
}

// Err returns the first decoding error found in the input, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}
