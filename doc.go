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

/*
Package boolassign recognizes a tiny boolean assignment language:

	x = y and z or true

An identifier, an equal sign, then an identifier or a boolean literal followed
by an operator (not, and, or) and a further identifier or literal, and so on.

# Scanning

The scanner package turns a character stream into tokens. The lexicon is an
ordered table of patterns built with the pattern package. At each position the
longest match wins, ties going to the first rule in table order. This is why
"not" is a keyword while "notx" is an identifier, and why "1abc" is scanned as
the literal "1" followed by the identifier "abc": identifiers cannot start with
a digit. Boolean literals are case insensitive: true, t and 1 are all True,
false, f and 0 are all False. Spaces, tabs and newlines are skipped.

# Parsing

The parser package is a recursive descent recognizer holding a single token of
look-ahead, with one state function per grammar rule. It does not build a
syntax tree: it either rejects the input with an error or, with the AcceptEnd
option, accepts it.

Note that, as written, the grammar has no way to end: after every operand an
operator is expected, including at the end of input. Parsing "x = y and z"
therefore fails with

	Parser Error: expected operator (not/and/or) at line 1 char 12

The AcceptEnd option changes that behavior by accepting the end of input where
an operator is expected.

# Errors

Parsing stops at the first error. Errors are either a *scanner.ScanError (no
lexicon rule matches the input) or a *parser.ParseError (unexpected token). The
report package formats them for display:

	Scanner Error: at line 2 char 5
	Parser Error: expected '=' at line 1 char 3

Lines are 1-based. Columns are tracked 0-based and displayed 1-based.

# Sessions

A Session ties an input file to a parser for the duration of a single parse:

	s, err := boolassign.Open("test.txt")
	if err != nil {
		// handle error
	}
	defer s.Close()
	if err := s.Run(); err != nil {
		fmt.Println(s.Report(err))
	}
*/
package boolassign
