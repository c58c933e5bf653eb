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

package token

import (
	"bufio"
	"errors"
	"io"
)

// Common errors.
var (
	ErrSeek   = errors.New("wrong file position after seek")
	ErrNoSeek = errors.New("io.Reader does not support Seek")
	ErrLine   = errors.New("invalid line number")
)

// A File represents an input source. It's a wrapper around an io.Reader that
// keeps track of line start offsets as they are discovered by a scanner so that
// source lines can be retrieved for error reporting.
type File struct {
	name string
	io.Reader
	lines []int64 // byte offset of each line start; lines[0] is line 1
}

// NewFile returns a new File. Line 1 is registered at offset 0.
func NewFile(name string, r io.Reader) *File {
	return &File{
		name:   name,
		Reader: r,
		lines:  []int64{0},
	}
}

// Name returns the file name.
func (f *File) Name() string {
	return f.name
}

// AddLine registers the byte offset of the start of the given 1-based line.
//
// Lines already known are ignored. If line is not the last known line number
// plus one, or if offs is not past the start of the previous line, AddLine
// panics.
func (f *File) AddLine(offs int64, line int) {
	l := len(f.lines)
	if line <= l {
		return
	}
	if l+1 != line || f.lines[l-1] >= offs {
		panic(ErrLine)
	}
	f.lines = append(f.lines, offs)
}

// Lines returns the number of lines seen so far.
func (f *File) Lines() int {
	return len(f.lines)
}

// LineOffset returns the byte offset of the given 1-based line, or -1 if the
// line is unknown.
func (f *File) LineOffset(line int) int64 {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// GetLineBytes returns the contents of the given 1-based line, without its
// line terminator. The underlying reader must implement io.ReadSeeker; its
// read offset is restored before returning.
func (f *File) GetLineBytes(line int) (l []byte, err error) {
	lp := f.LineOffset(line)
	if lp < 0 {
		return nil, ErrLine
	}
	rs, ok := f.Reader.(io.ReadSeeker)
	if !ok {
		return nil, ErrNoSeek
	}
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	defer func() {
		p, serr := rs.Seek(cur, io.SeekStart)
		if err == nil {
			if serr != nil {
				err = serr
			} else if p != cur {
				err = ErrSeek
			}
		}
	}()
	fp, err := rs.Seek(lp, io.SeekStart)
	if err != nil {
		return nil, err
	}
	if fp != lp {
		return nil, ErrSeek
	}

	r := bufio.NewReader(rs)
	for {
		buf, pref, err := r.ReadLine()
		if err == io.EOF && len(l) == 0 {
			// empty last line
			return []byte{}, nil
		}
		if err != nil {
			return nil, err
		}
		l = append(l, buf...)
		if !pref {
			break
		}
	}

	return l, nil
}
