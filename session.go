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

package boolassign

import (
	"fmt"
	"os"

	"github.com/db47h/boolassign/parser"
	"github.com/db47h/boolassign/report"
	"github.com/db47h/boolassign/token"
)

// A Session owns an open input file and the parser used to check it. It is
// meant to be used for a single parse, then closed.
type Session struct {
	// Snippet enables printing of the offending source line in reports.
	Snippet bool

	f    *os.File
	file *token.File
	p    *parser.Parser
	done bool
}

// Open opens the named file and returns a session ready to parse it with a
// parser configured with opts.
func Open(name string, opts ...parser.Option) (*Session, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Session{
		f:    f,
		file: token.NewFile(name, f),
		p:    parser.New(opts...),
	}, nil
}

// Name returns the name of the input file.
func (s *Session) Name() string {
	return s.file.Name()
}

// Run parses the input file. It returns nil if the input is accepted, or the
// first scan or parse error. Run can only be called once.
func (s *Session) Run() error {
	if s.done {
		return fmt.Errorf("session %s: already run", s.Name())
	}
	s.done = true
	return s.p.Parse(s.file)
}

// Report formats err as returned by Run. If s.Snippet is set and err carries
// a position, the offending source line is appended.
func (s *Session) Report(err error) string {
	msg := report.Format(err)
	if !s.Snippet {
		return msg
	}
	pos, ok := report.Position(err)
	if !ok {
		return msg
	}
	snip, serr := report.Snippet(s.file, pos)
	if serr != nil {
		return msg
	}
	return msg + "\n" + snip
}

// Close closes the input file.
func (s *Session) Close() error {
	return s.f.Close()
}
