package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/Techdojo/Lantern/ast"
	"github.com/Techdojo/Lantern/lexer"
)

// TokenEOF is handed out when the token stream is exhausted.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser assembles the token stream into an expression tree. The root node
// is a list container holding every top-level form that was read.
type Parser struct {
	lx   *lexer.Lexer
	root *ast.Node

	lastTok *lexer.Token
	nextTok *lexer.Token

	lastErr error
	forms   int
}

// New creates a Parser that reads from r.
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.root = ast.NewList(nil)
	p.lx = lexer.New(r)
	return p
}

// Root returns the root container node.
func (p *Parser) Root() *ast.Node {
	return p.root
}

// Parse consumes the whole input.
func (p *Parser) Parse() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	for state := parserDefaultState(p); state != nil; {
		state = state(p)
	}

	if p.lastErr != nil {
		// the lexer may still be emitting tokens nobody will read
		p.lx.Stop()
	}

	if err := <-errCh; err != nil {
		return err
	}

	return p.lastErr
}

// readOne consumes tokens until exactly one top-level form has been read,
// then releases the lexer. Trailing tokens are left unread.
func (p *Parser) readOne() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	for state := parserState(parserDefaultState); state != nil; {
		state = state(p)
		if p.forms > 0 {
			break
		}
	}

	p.lx.Stop()

	if err := <-errCh; err != nil {
		return err
	}

	return p.lastErr
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.lastTok, p.nextTok = tok, nil
		return tok
	}

	tok := p.read()
	p.lastTok, p.nextTok = tok, nil
	return tok
}

func parserDefaultState(p *Parser) parserState {
	root := p.root
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil

	default:
		if state := parserStateData(root)(p); state != nil {
			return state
		}
		// a whole top-level form was read cleanly
		p.forms = len(root.List())
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserStateData(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.curr()

		switch tok.Type() {
		case lexer.TokenWhitespace, lexer.TokenNewLine:
			// continue

		case lexer.TokenAtom:
			if err := root.Push(Atom(tok)); err != nil {
				return parserErrorState(err)
			}

		case lexer.TokenOpenAngle, lexer.TokenCloseAngle:
			// bare angle brackets read as the symbols "<" and ">"
			if err := root.Push(ast.NewSymbol(tok, tok.Text())); err != nil {
				return parserErrorState(err)
			}

		case lexer.TokenOpenParen:
			child, err := root.PushList(tok)
			if err != nil {
				return parserErrorState(err)
			}
			if state := parserStateOpenList(child)(p); state != nil {
				return state
			}

		case lexer.TokenCloseParen:
			return parserErrorState(errorAt(ErrUnexpectedCloseParen, tok))
		}

		return nil
	}
}

func parserStateOpenList(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.next()

		switch tok.Type() {
		case lexer.TokenEOF:
			return parserErrorState(ErrUnexpectedEOF)

		case lexer.TokenCloseParen:
			return nil

		default:
			if state := parserStateData(root)(p); state != nil {
				return state
			}
		}

		return parserStateOpenList(root)(p)
	}
}

// Atom classifies a non-bracket token: first as a base-10 integer, then as
// a float, and finally as a plain symbol. Every token classifies to
// something.
func Atom(tok *lexer.Token) *ast.Node {
	text := tok.Text()

	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ast.NewInt(tok, i64)
	}

	if f64, err := strconv.ParseFloat(text, 64); err == nil {
		return ast.NewFloat(tok, f64)
	}

	return ast.NewSymbol(tok, text)
}

// Parse reads every top-level form in the input and returns the root
// container node.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return p.root, nil
}

// Read returns the first top-level expression in the input. Trailing
// tokens are ignored. Empty input fails with ErrUnexpectedEOF.
func Read(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.readOne(); err != nil {
		return nil, err
	}

	forms := p.root.List()
	if len(forms) == 0 {
		return nil, ErrUnexpectedEOF
	}

	return forms[0], nil
}
