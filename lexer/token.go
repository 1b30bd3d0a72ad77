package lexer

import (
	"fmt"
)

// Position is a location in the input. Line and Col start at 1, Offset is
// the byte offset from the beginning of the input.
type Position struct {
	Line   int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	pos    Position
}

// NewToken creates a lexical unit at the given line and column.
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return NewTokenAt(tt, lexeme, Position{Line: line, Col: col})
}

// NewTokenAt creates a lexical unit that starts at pos.
func NewTokenAt(tt TokenType, lexeme string, pos Position) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.pos.Line, t.pos.Col
}

// Position returns where the lexical unit starts.
func (t Token) Position() Position {
	return t.pos
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.pos.Line, t.pos.Col)
}
