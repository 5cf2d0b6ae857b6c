package lexer

import (
	"bytes"
	"io"
	"log"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)

	isOpenAngle  = isTokenType(TokenOpenAngle)
	isCloseAngle = isTokenType(TokenCloseAngle)

	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)
)

// isBoundary tells whether a rune ends an atom.
func isBoundary(r rune) bool {
	return isWhitespace(r) || isNewLine(r) ||
		isOpenParen(r) || isCloseParen(r) ||
		isOpenAngle(r) || isCloseAngle(r)
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	done    chan struct{}
	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Tokens returns a channel that is going to receive tokens as soon as they
// are detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Stop aborts the scanning loop, draining any tokens that were already
// emitted. Safe to call after Scan has finished on its own.
func (lx *Lexer) Stop() {
	for {
		select {
		case _, ok := <-lx.tokens:
			if !ok {
				// scanning already finished
				return
			}
		case lx.done <- struct{}{}:
			return
		}
	}
}

// Scan starts scanning the reader for tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			return nil
		default:
			state = state(lx)
		}
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens <- Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	}

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	lx.offset++

	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)

	case isOpenAngle(r):
		return lexAngle(TokenOpenAngle)
	case isCloseAngle(r):
		return lexAngle(TokenCloseAngle)

	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	default:
		return lexAtom

	}
}

// lexAtom collects a maximal run of non-boundary characters. The lexer does
// not tell numbers and symbols apart, that distinction belongs to the
// parser's atom classifier.
func lexAtom(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isBoundary(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

// lexAngle emits an angle bracket token, unless the bracket is followed by
// "=": "<=" and ">=" are comparison names and must survive as single atoms.
func lexAngle(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if lx.peek() == '=' {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
			lx.emit(TokenAtom)
			return lexDefaultState
		}
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		log.Printf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
