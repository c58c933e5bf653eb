package token_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/boolassign/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_AddLine(t *testing.T) {
	f := token.NewFile("test", strings.NewReader(""))
	assert.Equal(t, "test", f.Name())
	assert.Equal(t, 1, f.Lines())
	assert.Equal(t, int64(0), f.LineOffset(1))

	f.AddLine(4, 2)
	f.AddLine(4, 2) // already known
	f.AddLine(9, 3)
	assert.Equal(t, 3, f.Lines())
	assert.Equal(t, int64(9), f.LineOffset(3))
	assert.Equal(t, int64(-1), f.LineOffset(0))
	assert.Equal(t, int64(-1), f.LineOffset(4))

	assert.PanicsWithValue(t, token.ErrLine, func() { f.AddLine(20, 5) })
	assert.PanicsWithValue(t, token.ErrLine, func() { f.AddLine(9, 4) })
}

func TestFile_GetLineBytes(t *testing.T) {
	input := "x = y\nfoo and bar\r\nlast"
	r := strings.NewReader(input)
	f := token.NewFile("test", r)
	f.AddLine(6, 2)
	f.AddLine(19, 3)

	// pretend some input has been consumed
	_, err := r.Seek(3, io.SeekStart)
	require.NoError(t, err)

	for i, want := range []string{"x = y", "foo and bar", "last"} {
		l, err := f.GetLineBytes(i + 1)
		require.NoError(t, err)
		assert.Equal(t, want, string(l))
	}

	cur, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cur, "read offset not restored")

	_, err = f.GetLineBytes(4)
	assert.ErrorIs(t, err, token.ErrLine)
}

func TestFile_GetLineBytes_emptyLastLine(t *testing.T) {
	f := token.NewFile("test", strings.NewReader("x\n"))
	f.AddLine(2, 2)
	l, err := f.GetLineBytes(2)
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestFile_GetLineBytes_noSeek(t *testing.T) {
	f := token.NewFile("test", io.MultiReader(bytes.NewReader([]byte("x"))))
	_, err := f.GetLineBytes(1)
	assert.ErrorIs(t, err, token.ErrNoSeek)
}
