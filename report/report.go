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

// Package report formats scanner and parser errors for display.
package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/boolassign/parser"
	"github.com/db47h/boolassign/scanner"
	"github.com/db47h/boolassign/token"
	"golang.org/x/text/width"
)

// Position returns the position reported by err, if err is (or wraps) a
// *scanner.ScanError or a *parser.ParseError.
func Position(err error) (token.Position, bool) {
	var se *scanner.ScanError
	if errors.As(err, &se) {
		return se.Pos, true
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return token.Position{}, false
}

// Format returns a one line description of err:
//
//	Scanner Error: at line 1 char 3
//	Parser Error: expected '=' at line 2 char 1
//
// Errors of any other type are formatted as "Error: " followed by err.Error().
// Format returns an empty string if err is nil.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var se *scanner.ScanError
	if errors.As(err, &se) {
		return fmt.Sprintf("Scanner Error: at line %d char %d", se.Pos.Line, se.Pos.Char())
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("Parser Error: %s at line %d char %d", pe.Message, pe.Pos.Line, pe.Pos.Char())
	}
	return "Error: " + err.Error()
}

// Snippet returns the source line of f at pos followed by a line with a caret
// under the column of pos:
//
//	|x = y @ z
//	|      ^
//
// The caret is aligned in terminal cells, East Asian wide and fullwidth runes
// counting as two cells. The reader of f must implement io.ReadSeeker.
func Snippet(f *token.File, pos token.Position) (string, error) {
	l, err := f.GetLineBytes(pos.Line)
	if err != nil {
		return "", err
	}
	// pos.Column is a rune index
	b := 0
	for c := 0; c < pos.Column && b < len(l); c++ {
		_, sz := utf8.DecodeRune(l[b:])
		b += sz
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "|%s\n", l)
	fmt.Fprintf(&sb, "|%s^", padding(l[:b]))
	return sb.String(), nil
}

// padding returns the blank text taking as many terminal cells as l, supposing
// rendering with a UTF-8 locale and monospaced font. Tabs are kept as is.
func padding(l []byte) string {
	var sb strings.Builder
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			sb.WriteString("  ")
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK, 1 otherwise.
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
