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

package scanner

import (
	"github.com/db47h/boolassign/pattern"
	"github.com/db47h/boolassign/token"
)

// A Rule maps a pattern to the kind of token it produces. Rules of kind
// token.Ignore consume their match without producing a token.
type Rule struct {
	Pattern pattern.Pattern
	Kind    token.Kind
}

// A Lexicon is an ordered list of rules. Order matters: when several rules
// match input of the same length, the first one wins.
type Lexicon []Rule

// DefaultLexicon returns the lexicon of the boolean assignment language.
//
// Keywords come before identifiers so that "not", "and" and "or" are not
// scanned as identifiers. Boolean literals are case insensitive and also come
// before identifiers, so "t" and "F" are literals, not identifiers.
func DefaultLexicon() Lexicon {
	letter := pattern.Range("AZaz")
	digit := pattern.Range("09")

	return Lexicon{
		{pattern.Str("not"), token.Not},
		{pattern.Str("and"), token.And},
		{pattern.Str("or"), token.Or},
		{pattern.Str("="), token.EqualSign},
		{pattern.NoCase(pattern.Str("true", "t", "1")), token.True},
		{pattern.NoCase(pattern.Str("false", "f", "0")), token.False},
		{pattern.Seq(letter, pattern.Rep(pattern.Alt(letter, digit))), token.Identifier},
		{pattern.Rep1(pattern.Any(" \t\n")), token.Ignore},
	}
}
