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

// Package pattern provides composable matchers used to describe the lexicon of
// a scanner.
//
// A Pattern reports every prefix length of its input that it matches, which
// lets a scanner pick the longest match across several patterns without
// having to compile them into a single automaton.
//
//	letter := pattern.Range("AZaz")
//	digit := pattern.Range("09")
//	name := pattern.Seq(letter, pattern.Rep(pattern.Alt(letter, digit)))
package pattern

import (
	"sort"

	"golang.org/x/text/cases"
)

// A Pattern matches prefixes of a rune slice.
type Pattern interface {
	// Ends returns the lengths of all prefixes of in matched by the pattern,
	// in ascending order and without duplicates. A zero length means that the
	// pattern matches the empty string.
	Ends(in []rune) []int
}

// Longest returns the length of the longest non-empty prefix of in matched by
// p, or -1 if there is none.
func Longest(p Pattern, in []rune) int {
	ends := p.Ends(in)
	if len(ends) == 0 || ends[len(ends)-1] == 0 {
		return -1
	}
	return ends[len(ends)-1]
}

// set builds a sorted list of unique ends.
type set map[int]struct{}

func (s set) add(n int) { s[n] = struct{}{} }

func (s set) list() []int {
	if len(s) == 0 {
		return nil
	}
	l := make([]int, 0, len(s))
	for n := range s {
		l = append(l, n)
	}
	sort.Ints(l)
	return l
}

// runeFn matches a single rune.
type runeFn func(r rune) bool

func (f runeFn) Ends(in []rune) []int {
	if len(in) > 0 && f(in[0]) {
		return []int{1}
	}
	return nil
}

// Range returns a pattern matching a single rune in any of the inclusive
// ranges given as consecutive pairs of runes in spec. For example,
// Range("AZaz") matches any ASCII letter. Range panics if spec has an odd
// number of runes.
func Range(spec string) Pattern {
	rs := []rune(spec)
	if len(rs)%2 != 0 {
		panic("pattern.Range: odd number of runes in " + spec)
	}
	return runeFn(func(r rune) bool {
		for i := 0; i < len(rs); i += 2 {
			if r >= rs[i] && r <= rs[i+1] {
				return true
			}
		}
		return false
	})
}

// Any returns a pattern matching any single rune in chars.
func Any(chars string) Pattern {
	rs := []rune(chars)
	return runeFn(func(r rune) bool {
		for _, c := range rs {
			if r == c {
				return true
			}
		}
		return false
	})
}

type str struct {
	alts [][]rune
	fold func(rune) rune
}

// Str returns a pattern matching any of the given strings exactly.
func Str(alts ...string) Pattern {
	s := &str{alts: make([][]rune, len(alts))}
	for i, a := range alts {
		s.alts[i] = []rune(a)
	}
	return s
}

func (s *str) Ends(in []rune) []int {
	m := make(set)
	for _, a := range s.alts {
		if len(a) > len(in) {
			continue
		}
		ok := true
		for i, r := range a {
			c := in[i]
			if s.fold != nil {
				r, c = s.fold(r), s.fold(c)
			}
			if r != c {
				ok = false
				break
			}
		}
		if ok {
			m.add(len(a))
		}
	}
	return m.list()
}

// NoCase returns a case insensitive version of p. Only patterns built with
// Str (possibly nested in Seq, Alt, Rep or Rep1) are affected; rune classes
// built with Range or Any are returned unchanged.
//
// Case folding is done rune by rune with the Unicode simple case folding
// rules so that match lengths are those of the original input.
func NoCase(p Pattern) Pattern {
	return withFold(p, foldRune)
}

func foldRune(r rune) rune {
	if r < 0x80 {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		return r
	}
	// Casers are stateful, use a fresh one.
	f := []rune(cases.Fold().String(string(r)))
	if len(f) != 1 {
		// full folding expands some runes (e.g. ß -> ss); keep the rune as is
		return r
	}
	return f[0]
}

func withFold(p Pattern, fold func(rune) rune) Pattern {
	switch p := p.(type) {
	case *str:
		return &str{alts: p.alts, fold: fold}
	case seq:
		q := make(seq, len(p))
		for i := range p {
			q[i] = withFold(p[i], fold)
		}
		return q
	case alt:
		q := make(alt, len(p))
		for i := range p {
			q[i] = withFold(p[i], fold)
		}
		return q
	case *rep:
		return &rep{p: withFold(p.p, fold), min: p.min}
	default:
		return p
	}
}

type seq []Pattern

// Seq returns a pattern matching each of ps in sequence.
func Seq(ps ...Pattern) Pattern {
	return seq(ps)
}

func (s seq) Ends(in []rune) []int {
	cur := []int{0}
	for _, p := range s {
		next := make(set)
		for _, off := range cur {
			for _, n := range p.Ends(in[off:]) {
				next.add(off + n)
			}
		}
		cur = next.list()
		if len(cur) == 0 {
			return nil
		}
	}
	return cur
}

type alt []Pattern

// Alt returns a pattern matching any of ps.
func Alt(ps ...Pattern) Pattern {
	return alt(ps)
}

func (a alt) Ends(in []rune) []int {
	m := make(set)
	for _, p := range a {
		for _, n := range p.Ends(in) {
			m.add(n)
		}
	}
	return m.list()
}

type rep struct {
	p   Pattern
	min int
}

// Rep returns a pattern matching zero or more repetitions of p.
func Rep(p Pattern) Pattern {
	return &rep{p: p}
}

// Rep1 returns a pattern matching one or more repetitions of p.
func Rep1(p Pattern) Pattern {
	return &rep{p: p, min: 1}
}

func (r *rep) Ends(in []rune) []int {
	m := make(set)
	if r.min == 0 {
		m.add(0)
	}
	seen := map[int]bool{0: true}
	cur := []int{0}
	for len(cur) > 0 {
		var next []int
		for _, off := range cur {
			for _, n := range r.p.Ends(in[off:]) {
				if n == 0 {
					// an empty match would repeat forever
					continue
				}
				e := off + n
				m.add(e)
				if !seen[e] {
					seen[e] = true
					next = append(next, e)
				}
			}
		}
		cur = next
	}
	return m.list()
}
