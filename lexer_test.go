package erltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lexer_SkipsHiddenTokens(t *testing.T) {
	lx := NewLexer("foo   % comment\nbar.")
	var got []string
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		if tok.Kind == EOF {
			break
		}
		assert.False(t, tok.IsHidden())
		got = append(got, tok.Text)
	}
	assert.Equal(t, []string{"foo", "bar", "."}, got)
}

func Test_Lexer_PeekAndUnread(t *testing.T) {
	lx := NewLexer("a b")

	peeked, err := lx.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", peeked.Text)

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, peeked, tok)

	lx.Unread(tok)
	assert.Equal(t, tok.Start, lx.Pos())

	again, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, tok, again)

	tok, err = lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Text)

	tok, err = lx.Next()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Kind)
}

func Test_Lexer_PropagatesErrors(t *testing.T) {
	lx := NewLexer("ok \"unterminated")
	tok, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "ok", tok.Text)

	_, err = lx.Next()
	require.Error(t, err)
	assert.Equal(t, ErrUnterminatedLiteral, err.(*Error).Kind)

	// The underlying tokenizer is poisoned; the lexer stays failed too.
	_, err2 := lx.Next()
	assert.Equal(t, err, err2)
}
