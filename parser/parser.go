// Package parser turns add/mult S-expressions into an AST.
//
//	expr         := number | '(' keyword-expr ')'
//	keyword-expr := "add" list | "mult" list
//	list         := { whitespace* expr } whitespace*
//	number       := digit { digit }
package parser

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/lexer"
)

// DefaultMaxDepth is the nesting limit used unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 1000

type keyword struct {
	rest string
	nt   ast.NodeType
}

// keywords are looked up by their first rune.
var keywords = map[rune]keyword{
	'a': {rest: "dd", nt: ast.NodeTypeAdd},
	'm': {rest: "ult", nt: ast.NodeTypeMult},
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits how deeply expressions may nest. Zero or less means no
// limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithStrict makes Parse fail when anything but whitespace follows the
// expression. By default trailing input is left unread.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithLogger traces every node the parser builds.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser is a recursive descent parser with one rune of lookahead. A Parser
// must not be used from more than one goroutine.
type Parser struct {
	lx *lexer.Lexer

	maxDepth int
	strict   bool
	logger   *log.Logger

	depth int
}

// New creates a parser that reads from r.
func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		lx:       lexer.New(r),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads one expression from the input.
func (p *Parser) Parse() (*ast.Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.strict {
		p.lx.SkipWhitespace()
		if p.lx.Peek() != lexer.EOF {
			return nil, newError(TrailingInput, p.peekToken(), nil)
		}
	}

	return node, nil
}

func (p *Parser) peekToken() *lexer.Token {
	r := p.lx.Peek()
	pos := p.lx.Position()
	if r == lexer.EOF {
		return lexer.NewTokenAt(lexer.TokenEOF, "", pos)
	}
	return lexer.NewTokenAt(lexer.Classify(r), string(r), pos)
}

func (p *Parser) trace(node *ast.Node) {
	if p.logger == nil {
		return
	}
	p.logger.Printf("parser: %v -- %# v", node.Token(), pretty.Formatter(node))
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	p.lx.SkipWhitespace()

	r := p.lx.Peek()
	switch {
	case lexer.IsOpenExpression(r):
		return p.parseExpression()
	case lexer.IsInteger(r):
		return p.parseNumber()
	case r == lexer.EOF:
		return nil, newError(MissingNumber, p.peekToken(), nil)
	}

	return nil, newError(UnexpectedToken, p.peekToken(), p.lx.Err())
}

func (p *Parser) parseExpression() (*ast.Node, error) {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, newError(TooDeep, p.peekToken(), fmt.Errorf("limit is %d", p.maxDepth))
	}
	p.depth++
	defer func() {
		p.depth--
	}()

	p.lx.Next()
	open := p.lx.Emit(lexer.TokenOpenExpression)

	nt, err := p.parseKeyword()
	if err != nil {
		return nil, err
	}

	args, err := p.parseList()
	if err != nil {
		return nil, err
	}

	p.lx.SkipWhitespace()
	if !p.lx.Accept(lexer.IsCloseExpression) {
		return nil, newError(UnterminatedExpression, p.peekToken(), fmt.Errorf("expected ')' to close expression opened at %v", open.Position()))
	}
	p.lx.Mark()

	var node *ast.Node
	switch nt {
	case ast.NodeTypeAdd:
		node = ast.NewAdd(open, args...)
	case ast.NodeTypeMult:
		node = ast.NewMult(open, args...)
	}

	p.trace(node)
	return node, nil
}

func (p *Parser) parseKeyword() (ast.NodeType, error) {
	p.lx.SkipWhitespace()

	r := p.lx.Peek()
	if r == lexer.EOF {
		return ast.NodeTypeInvalid, newError(UnterminatedExpression, p.peekToken(), nil)
	}

	kw, ok := keywords[r]
	if !ok {
		return ast.NodeTypeInvalid, p.keywordError()
	}
	p.lx.Next()

	for _, c := range kw.rest {
		if p.lx.Peek() != c {
			return ast.NodeTypeInvalid, p.keywordError()
		}
		p.lx.Next()
	}

	// "addition" and "mult2" are not keywords.
	if r := p.lx.Peek(); r != lexer.EOF && !lexer.IsWhitespace(r) && !lexer.IsCloseExpression(r) {
		return ast.NodeTypeInvalid, p.keywordError()
	}

	p.lx.Mark()
	return kw.nt, nil
}

// keywordError consumes what is left of the offending word so the error
// shows all of it.
func (p *Parser) keywordError() error {
	tok := p.peekToken()
	p.lx.AcceptRun(isKeywordRune)
	if word := p.lx.Emit(lexer.TokenWord); word.Text() != "" {
		tok = word
	}
	return newError(UnknownKeyword, tok, p.lx.Err())
}

func isKeywordRune(r rune) bool {
	return !lexer.IsWhitespace(r) && !lexer.IsOpenExpression(r) && !lexer.IsCloseExpression(r)
}

func (p *Parser) parseList() ([]*ast.Node, error) {
	args := []*ast.Node{}

	for {
		p.lx.SkipWhitespace()

		r := p.lx.Peek()
		if r == lexer.EOF || lexer.IsCloseExpression(r) {
			return args, nil
		}

		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, node)
	}
}

func (p *Parser) parseNumber() (*ast.Node, error) {
	if p.lx.AcceptRun(lexer.IsInteger) == 0 {
		return nil, newError(MissingNumber, p.peekToken(), nil)
	}

	tok := p.lx.Emit(lexer.TokenInteger)

	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, newError(InvalidNumber, tok, err)
	}

	node := ast.NewInt(tok, i64)
	p.trace(node)
	return node, nil
}

// Parse reads one expression from in.
func Parse(in []byte, opts ...Option) (*ast.Node, error) {
	return New(bytes.NewReader(in), opts...).Parse()
}

// ParseString reads one expression from s.
func ParseString(s string, opts ...Option) (*ast.Node, error) {
	return New(strings.NewReader(s), opts...).Parse()
}
