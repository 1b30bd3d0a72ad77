package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/calc/lexer"
)

// ErrorKind tells apart the ways parsing can fail.
type ErrorKind uint8

// Kinds of parse errors
const (
	UnexpectedToken ErrorKind = iota + 1
	UnknownKeyword
	UnterminatedExpression
	MissingNumber
	InvalidNumber
	TooDeep
	TrailingInput
)

var (
	ErrUnexpectedToken        = errors.New("unexpected token")
	ErrUnknownKeyword         = errors.New("unknown keyword")
	ErrUnterminatedExpression = errors.New("unterminated expression")
	ErrMissingNumber          = errors.New("missing number")
	ErrInvalidNumber          = errors.New("invalid number")
	ErrTooDeep                = errors.New("expression too deeply nested")
	ErrTrailingInput          = errors.New("trailing input")
)

var errorKinds = map[ErrorKind]error{
	UnexpectedToken:        ErrUnexpectedToken,
	UnknownKeyword:         ErrUnknownKeyword,
	UnterminatedExpression: ErrUnterminatedExpression,
	MissingNumber:          ErrMissingNumber,
	InvalidNumber:          ErrInvalidNumber,
	TooDeep:                ErrTooDeep,
	TrailingInput:          ErrTrailingInput,
}

// Err returns the sentinel error that identifies the kind.
func (k ErrorKind) Err() error {
	return errorKinds[k]
}

func (k ErrorKind) String() string {
	if err, ok := errorKinds[k]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error is returned by the parser. It matches the sentinel of its kind with
// errors.Is and unwraps to the underlying cause, if any.
type Error struct {
	Kind ErrorKind
	Tok  *lexer.Token
	Err  error
}

func newError(kind ErrorKind, tok *lexer.Token, err error) *Error {
	return &Error{
		Kind: kind,
		Tok:  tok,
		Err:  err,
	}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Tok != nil {
		msg = fmt.Sprintf("%v: %s", e.Tok.Position(), msg)
		switch {
		case e.Tok.Is(lexer.TokenEOF):
			msg += " at EOF"
		case e.Tok.Text() != "":
			msg += fmt.Sprintf(" %q", e.Tok.Text())
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the sentinel of the error kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.Err()
}

func (e *Error) Unwrap() error {
	return e.Err
}
