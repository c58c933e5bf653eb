// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package parser implements a recursive descent recognizer for the boolean
// assignment language:
//
//	Session             -> Identifier EqualSign
//	EqualSign           -> '=' IdentifierOrLiteral
//	IdentifierOrLiteral -> (Identifier | True | False) Operation
//	Operation           -> (Not | And | Or) IdentifierOrLiteral
//
// The grammar has no production accepting the end of input: every input is
// eventually rejected, at the latest when Operation finds token.EOF. The
// AcceptEnd option lets Operation accept the end of input instead.
//
// The parser only validates its input; it does not build a syntax tree.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/db47h/boolassign/scanner"
	"github.com/db47h/boolassign/token"
	"github.com/google/uuid"
)

// ParseError is returned when the lookahead token is not acceptable in the
// current parser state.
type ParseError struct {
	Message  string
	Found    token.Token  // offending lookahead token
	Expected []token.Kind // kinds that would have been accepted
	Pos      token.Position
}

func (e *ParseError) Error() string {
	return e.Message
}

// Option is a configuration option for a new Parser.
type Option func(*Parser)

// WithLogger sets the logger receiving trace lines. Trace lines are logged at
// debug level. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// WithLexicon sets a custom scanner lexicon. It must produce the token kinds
// expected by the grammar.
func WithLexicon(lx scanner.Lexicon) Option {
	return func(p *Parser) {
		p.lx = lx
	}
}

// AcceptEnd makes the Operation state accept the end of input, ending the
// parse successfully. By default, the end of input is an error in every state.
func AcceptEnd(accept bool) Option {
	return func(p *Parser) {
		p.acceptEnd = accept
	}
}

// A Parser holds the configuration of the recognizer. The state of a parse is
// local to each call of Parse, so a Parser can be reused sequentially, but
// not concurrently.
type Parser struct {
	log       *slog.Logger
	lx        scanner.Lexicon
	acceptEnd bool
}

// New returns a new Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		log: slog.New(slog.DiscardHandler),
		lx:  scanner.DefaultLexicon(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse parses the contents of f. It returns nil if the input is accepted
// (only possible with AcceptEnd), a *scanner.ScanError or *ParseError on the
// first error in the input, or an I/O error.
func (p *Parser) Parse(f *token.File) error {
	st := &state{
		s:         scanner.New(f, p.lx),
		acceptEnd: p.acceptEnd,
		log:       p.log.With("session", uuid.NewString(), "file", f.Name()),
	}
	if err := st.advance(); err != nil {
		return err
	}
	for fn := stateSession; fn != nil; {
		var err error
		if fn, err = fn(st); err != nil {
			return err
		}
	}
	return nil
}

// ParseString is a convenience function that parses the string src.
func (p *Parser) ParseString(name, src string) error {
	return p.Parse(token.NewFile(name, strings.NewReader(src)))
}

// ParseReader is a convenience function that parses the contents of r.
func (p *Parser) ParseReader(name string, r io.Reader) error {
	return p.Parse(token.NewFile(name, r))
}

// state holds the state of a single parse.
type state struct {
	s         *scanner.Scanner
	la        token.Token // lookahead
	acceptEnd bool
	log       *slog.Logger
}

// A stateFn is a parser state. It returns the next state, or nil when the
// parse is complete.
type stateFn func(st *state) (stateFn, error)

// advance replaces the lookahead with the next token.
func (st *state) advance() error {
	t, err := st.s.Next()
	if err != nil {
		return err
	}
	st.la = t
	return nil
}

// match consumes the lookahead if it is of kind k.
func (st *state) match(k token.Kind) error {
	if st.la.Kind != k {
		return &ParseError{
			Message:  fmt.Sprintf("found %s instead of %s", st.la.Kind, k),
			Found:    st.la,
			Expected: []token.Kind{k},
			Pos:      st.la.Pos,
		}
	}
	return st.advance()
}

// accept traces and consumes the lookahead.
func (st *state) accept(msg string, next stateFn) (stateFn, error) {
	st.log.Debug(msg,
		"kind", st.la.Kind,
		"text", st.la.Text,
		"line", st.la.Pos.Line,
		"char", st.la.Pos.Char())
	if err := st.match(st.la.Kind); err != nil {
		return nil, err
	}
	return next, nil
}

func (st *state) expected(msg string, kinds ...token.Kind) error {
	return &ParseError{
		Message:  msg,
		Found:    st.la,
		Expected: kinds,
		Pos:      st.la.Pos,
	}
}

func stateSession(st *state) (stateFn, error) {
	if st.la.Kind == token.Identifier {
		return st.accept("found identifier", stateEqualSign)
	}
	return nil, st.expected("expected identifier", token.Identifier)
}

func stateEqualSign(st *state) (stateFn, error) {
	if st.la.Kind == token.EqualSign {
		return st.accept("found equal sign", stateIdentifierOrLiteral)
	}
	return nil, st.expected("expected '='", token.EqualSign)
}

func stateIdentifierOrLiteral(st *state) (stateFn, error) {
	switch st.la.Kind {
	case token.Identifier:
		return st.accept("found identifier", stateOperation)
	case token.True, token.False:
		return st.accept("found boolean value", stateOperation)
	}
	return nil, st.expected("expected identifier or boolean literal", token.Identifier, token.True, token.False)
}

func stateOperation(st *state) (stateFn, error) {
	switch st.la.Kind {
	case token.Not, token.And, token.Or:
		return st.accept("found operation", stateIdentifierOrLiteral)
	case token.EOF:
		if st.acceptEnd {
			st.log.Debug("end of input", "line", st.la.Pos.Line, "char", st.la.Pos.Char())
			return nil, nil
		}
	}
	return nil, st.expected("expected operator (not/and/or)", token.Not, token.And, token.Or)
}
