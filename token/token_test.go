package token_test

import (
	"testing"

	"github.com/db47h/boolassign/token"
	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    token.Kind
		want string
	}{
		{token.EOF, "EndOfInput"},
		{token.Identifier, "Identifier"},
		{token.EqualSign, "EqualSign"},
		{token.Not, "Not"},
		{token.And, "And"},
		{token.Or, "Or"},
		{token.True, "True"},
		{token.False, "False"},
		{token.Ignore, "Ignore"},
		{token.Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.k.String())
	}
}

func TestPosition_Advance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Position
	}{
		{"empty", "", token.Position{Offset: 0, Line: 1, Column: 0}},
		{"ascii", "abc", token.Position{Offset: 3, Line: 1, Column: 3}},
		{"newline", "ab\n", token.Position{Offset: 3, Line: 2, Column: 0}},
		{"lines", "a\n\nbc", token.Position{Offset: 5, Line: 3, Column: 2}},
		{"runes", "déjà\nvu", token.Position{Offset: 7, Line: 2, Column: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := token.Position{Line: 1}.Advance([]rune(tt.input))
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPosition_String(t *testing.T) {
	p := token.Position{Offset: 12, Line: 3, Column: 4}
	assert.Equal(t, "3:5", p.String())
	assert.Equal(t, 5, p.Char())
}

func TestToken_String(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Text: "x", Pos: token.Position{Line: 1}}
	assert.Equal(t, `1:1: Identifier "x"`, tok.String())
	eof := token.Token{Kind: token.EOF, Pos: token.Position{Offset: 3, Line: 1, Column: 3}}
	assert.Equal(t, "1:4: EndOfInput", eof.String())
}
