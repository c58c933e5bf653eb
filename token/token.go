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

// Package token defines the lexical tokens of the boolean assignment language
// and the types used to track their position in source text.
package token

import "fmt"

// Kind represents the kind of a token.
type Kind int

// Token kinds. Ignore is never returned by a scanner, it marks lexicon rules
// whose matches are skipped (e.g. white space).
const (
	Ignore     Kind = iota - 1
	EOF             // end of input
	Identifier      // letter followed by letters or digits
	EqualSign       // =
	Not             // not
	And             // and
	Or              // or
	True            // true, t, 1 (any case)
	False           // false, f, 0 (any case)
)

var kindNames = [...]string{
	EOF:        "EndOfInput",
	Identifier: "Identifier",
	EqualSign:  "EqualSign",
	Not:        "Not",
	And:        "And",
	Or:         "Or",
	True:       "True",
	False:      "False",
}

// String returns the name of k, as used in diagnostics.
func (k Kind) String() string {
	if k == Ignore {
		return "Ignore"
	}
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Position describes a location in the input stream.
type Position struct {
	Offset int // rune index from the start of the input
	Line   int // 1-based line number
	Column int // 0-based rune index within the line
}

// Char returns the 1-based column, as displayed in diagnostics.
func (p Position) Char() int {
	return p.Column + 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Char())
}

// Advance returns the position reached after consuming the runes in s.
func (p Position) Advance(s []rune) Position {
	for _, r := range s {
		p.Offset++
		if r == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// Token is a lexeme produced by a scanner.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("%s: %s", t.Pos, t.Kind)
	}
	return fmt.Sprintf("%s: %s %q", t.Pos, t.Kind, t.Text)
}
