package parser_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/db47h/boolassign/parser"
	"github.com/db47h/boolassign/pattern"
	"github.com/db47h/boolassign/scanner"
	"github.com/db47h/boolassign/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(offs, line, col int) token.Position {
	return token.Position{Offset: offs, Line: line, Column: col}
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
		found token.Kind
		pos   token.Position
	}{
		{"empty", "", "expected identifier", token.EOF, pos(0, 1, 0)},
		{"equal_first", "= x", "expected identifier", token.EqualSign, pos(0, 1, 0)},
		{"literal_first", "true = x", "expected identifier", token.True, pos(0, 1, 0)},
		{"missing_equal", "x y", "expected '='", token.Identifier, pos(2, 1, 2)},
		{"truncated", "x =", "expected identifier or boolean literal", token.EOF, pos(3, 1, 3)},
		{"operator_operand", "x = and", "expected identifier or boolean literal", token.And, pos(4, 1, 4)},
		{"assignment", "x = y and z", "expected operator (not/and/or)", token.EOF, pos(11, 1, 11)},
		{"literal", "x = TRUE", "expected operator (not/and/or)", token.EOF, pos(8, 1, 8)},
		{"two_operands", "x = y z", "expected operator (not/and/or)", token.Identifier, pos(6, 1, 6)},
		{"chain", "x = true\nor f not 1", "expected operator (not/and/or)", token.EOF, pos(19, 2, 10)},
		{"second_assignment", "x = y or z\ny = x", "expected operator (not/and/or)", token.Identifier, pos(11, 2, 0)},
		{"blank_lines", "x =\n\n y and\nz\n\nw", "expected operator (not/and/or)", token.Identifier, pos(15, 6, 0)},
		{"digit_start", "1abc = t", "expected identifier", token.True, pos(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.New().ParseString("test", tt.input)
			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.msg, pe.Message)
			assert.Equal(t, tt.msg, pe.Error())
			assert.Equal(t, tt.found, pe.Found.Kind)
			assert.Equal(t, tt.pos, pe.Pos)
			assert.Equal(t, tt.pos, pe.Found.Pos)
		})
	}
}

func TestParser_Expected(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"", []token.Kind{token.Identifier}},
		{"x", []token.Kind{token.EqualSign}},
		{"x =", []token.Kind{token.Identifier, token.True, token.False}},
		{"x = y", []token.Kind{token.Not, token.And, token.Or}},
	}
	for _, tt := range tests {
		err := parser.New().ParseString("test", tt.input)
		var pe *parser.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, tt.want, pe.Expected, tt.input)
	}
}

func TestParser_ScanError(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   token.Position
	}{
		{"first", "@", pos(0, 1, 0)},
		{"lookahead", "x = y @", pos(6, 1, 6)},
		{"second_line", "x = y\n  and %", pos(12, 2, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.New().ParseString("test", tt.input)
			var se *scanner.ScanError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.pos, se.Pos)
		})
	}
}

func TestParser_AcceptEnd(t *testing.T) {
	p := parser.New(parser.AcceptEnd(true))
	for _, in := range []string{"x = y and z", "x = t", "a = b or\nc not 0\n"} {
		assert.NoError(t, p.ParseString("test", in), in)
	}

	tests := []struct {
		input string
		msg   string
	}{
		{"", "expected identifier"},
		{"x", "expected '='"},
		{"x =", "expected identifier or boolean literal"},
		{"x = y and", "expected identifier or boolean literal"},
		{"x = y z", "expected operator (not/and/or)"},
	}
	for _, tt := range tests {
		err := p.ParseString("test", tt.input)
		var pe *parser.ParseError
		require.ErrorAs(t, err, &pe, tt.input)
		assert.Equal(t, tt.msg, pe.Message, tt.input)
	}
}

func TestParser_Trace(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	err := parser.New(parser.WithLogger(log)).ParseString("test", "x = true and z")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	for i, msg := range []string{
		`msg="found identifier"`,
		`msg="found equal sign"`,
		`msg="found boolean value"`,
		`msg="found operation"`,
		`msg="found identifier"`,
	} {
		assert.Contains(t, lines[i], msg)
		assert.Contains(t, lines[i], "level=DEBUG")
		assert.Contains(t, lines[i], "session=")
		assert.Contains(t, lines[i], "file=test")
	}
	assert.Contains(t, lines[2], "kind=True text=true line=1 char=5")

	// each parse gets its own session id
	session := func(l string) string {
		i := strings.Index(l, "session=")
		return strings.Fields(l[i:])[0]
	}
	buf.Reset()
	_ = parser.New(parser.WithLogger(log)).ParseString("test", "x")
	second := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, second, 1)
	assert.NotEqual(t, session(lines[0]), session(second[0]))
}

func TestParser_Idempotent(t *testing.T) {
	p := parser.New()
	for _, in := range []string{"x = y and z", "= x", "x = @", "a = b\n  c"} {
		err1 := p.ParseReader("a", strings.NewReader(in))
		err2 := p.ParseReader("a", strings.NewReader(in))
		require.Error(t, err1)
		assert.IsType(t, err1, err2, in)
		assert.Equal(t, err1, err2, in)
	}
}

func TestParser_WithLexicon(t *testing.T) {
	// upper case keywords only
	lx := scanner.DefaultLexicon()
	lx[0].Pattern = pattern.Str("NOT")
	lx[1].Pattern = pattern.Str("AND")
	lx[2].Pattern = pattern.Str("OR")
	p := parser.New(parser.WithLexicon(lx), parser.AcceptEnd(true))
	assert.NoError(t, p.ParseString("test", "x = y AND z"))

	err := p.ParseString("test", "x = y and z")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, token.Identifier, pe.Found.Kind)
}
