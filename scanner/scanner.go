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

// Package scanner implements a maximal munch scanner driven by an ordered
// table of patterns.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/db47h/boolassign/pattern"
	"github.com/db47h/boolassign/token"
)

// fillSize is the maximum number of runes read from the input by one call to
// fill.
const fillSize = 512

// ScanError is returned by Scanner.Next when no rule of the lexicon matches
// the input at Pos.
type ScanError struct {
	Pos  token.Position
	Rune rune // offending rune
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("unrecognized input %q at line %d char %d", e.Rune, e.Pos.Line, e.Pos.Char())
}

// A Scanner reads tokens from a token.File.
//
// At each position, every rule of the lexicon is tried against the remaining
// input. The rule with the longest match wins; if several rules match the same
// length, the first one in lexicon order wins. Matches of rules of kind
// token.Ignore are skipped.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	f     *token.File
	r     *bufio.Reader
	lx    Lexicon
	buf   []rune // buffered input, not yet consumed
	sz    []int  // byte size of each rune in buf
	eof   bool   // no more input to read
	ioErr error  // if not nil, I/O error at end of buf
	pos   token.Position
	boffs int64 // byte offset of pos
	last  token.Position
}

// New returns a new Scanner reading from f with the given lexicon. If lx is
// nil, DefaultLexicon is used. The lexicon is copied.
func New(f *token.File, lx Lexicon) *Scanner {
	if lx == nil {
		lx = DefaultLexicon()
	}
	start := token.Position{Line: 1}
	return &Scanner{
		f:    f,
		r:    bufio.NewReader(f),
		lx:   append(Lexicon(nil), lx...),
		pos:  start,
		last: start,
	}
}

// File returns the file being scanned.
func (s *Scanner) File() *token.File {
	return s.f
}

// Position returns the start position of the last token returned by Next. If
// Next has returned an error, it is the position where scanning stopped.
func (s *Scanner) Position() token.Position {
	return s.last
}

// Cursor returns the position right after the last consumed input.
func (s *Scanner) Cursor() token.Position {
	return s.pos
}

// Next returns the next token. At the end of input, it returns a token.EOF
// token, and keeps doing so on subsequent calls. If no rule matches the input,
// Next returns a *ScanError and the scanner does not advance.
func (s *Scanner) Next() (token.Token, error) {
	for {
		k, n, err := s.match()
		if err != nil {
			s.last = s.pos
			return token.Token{}, err
		}
		if n == 0 {
			s.last = s.pos
			return token.Token{Kind: token.EOF, Pos: s.pos}, nil
		}
		p := s.pos
		text := s.consume(n)
		if k == token.Ignore {
			continue
		}
		s.last = p
		return token.Token{Kind: k, Text: text, Pos: p}, nil
	}
}

// All returns an iterator over the remaining tokens. The sequence ends after
// the first token.EOF token or the first error.
func (s *Scanner) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			t, err := s.Next()
			if !yield(t, err) || err != nil || t.Kind == token.EOF {
				return
			}
		}
	}
}

// match returns the kind and length of the best match at the current
// position. A zero length means end of input.
func (s *Scanner) match() (token.Kind, int, error) {
	for {
		if len(s.buf) == 0 {
			if !s.eof {
				s.fill()
				continue
			}
			if s.ioErr != nil {
				return token.EOF, 0, s.ioErr
			}
			return token.EOF, 0, nil
		}

		best, kind := -1, token.Ignore
		for i := range s.lx {
			if n := pattern.Longest(s.lx[i].Pattern, s.buf); n > best {
				best, kind = n, s.lx[i].Kind
			}
		}
		// a match reaching the end of the buffer may go on in unread input.
		// Without any match, look ahead at most fillSize runes.
		if !s.eof && (best == len(s.buf) || best < 0 && len(s.buf) < fillSize) {
			s.fill()
			continue
		}
		if best < 0 {
			return token.EOF, 0, &ScanError{Pos: s.pos, Rune: s.buf[0]}
		}
		return kind, best, nil
	}
}

// consume consumes n runes of buffered input and returns them as a string.
func (s *Scanner) consume(n int) string {
	text := string(s.buf[:n])
	line := s.pos.Line
	for i, r := range s.buf[:n] {
		s.boffs += int64(s.sz[i])
		if r == '\n' {
			line++
			s.f.AddLine(s.boffs, line)
		}
	}
	s.pos = s.pos.Advance(s.buf[:n])
	s.buf = s.buf[n:]
	s.sz = s.sz[n:]
	return text
}

// fill reads up to fillSize runes, stopping after a newline.
func (s *Scanner) fill() {
	for i := 0; i < fillSize; i++ {
		r, sz, err := s.r.ReadRune()
		if err != nil {
			s.eof = true
			if err != io.EOF {
				s.ioErr = fmt.Errorf("read %s: %w", s.f.Name(), err)
			}
			return
		}
		s.buf = append(s.buf, r)
		s.sz = append(s.sz, sz)
		if r == '\n' {
			return
		}
	}
}
