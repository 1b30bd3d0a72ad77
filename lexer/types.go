package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenWhitespace                // Any unicode space: \s\f\t\r\n
	TokenWord                      // Letters ([a-zA-Z])
	TokenInteger                   // Decimal digits
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	TokenInteger:         []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenWhitespace:      "whitespace",
	TokenWord:            "word",
	TokenInteger:         "integer",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	// IsOpenExpression reports whether r opens a compound expression.
	IsOpenExpression = isTokenType(TokenOpenExpression)
	// IsCloseExpression reports whether r closes a compound expression.
	IsCloseExpression = isTokenType(TokenCloseExpression)

	// IsWord reports whether r is an ASCII letter.
	IsWord = isTokenType(TokenWord)
	// IsInteger reports whether r is an ASCII decimal digit.
	IsInteger = isTokenType(TokenInteger)
)

// IsWhitespace reports whether r is a separator. Any unicode space counts.
func IsWhitespace(r rune) bool {
	return r != EOF && unicode.IsSpace(r)
}

// Classify returns the type of the lexical unit r belongs to.
func Classify(r rune) TokenType {
	switch {
	case r == EOF:
		return TokenEOF
	case IsOpenExpression(r):
		return TokenOpenExpression
	case IsCloseExpression(r):
		return TokenCloseExpression
	case IsWhitespace(r):
		return TokenWhitespace
	case IsWord(r):
		return TokenWord
	case IsInteger(r):
		return TokenInteger
	}
	return TokenInvalid
}
