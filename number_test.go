package erltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstToken(t *testing.T, src string) Token {
	t.Helper()
	tok, err := New(src).Next()
	require.NoError(t, err)
	return tok
}

func Test_Number_IntegerDecoding(t *testing.T) {
	cases := []struct {
		src  string
		want string // decimal rendering of the decoded value
	}{
		{"0", "0"},
		{"10", "10"},
		{"1_2_3", "123"},
		{"1_6#10", "16"},
		{"16#ff", "255"},
		{"16#FF", "255"},
		{"2#101", "5"},
		{"8#777", "511"},
		{"36#z", "35"},
		{"16#dead_beef", "3735928559"},
		// Erlang integers are unbounded; decoding must not truncate.
		{"123456789012345678901234567890123456789", "123456789012345678901234567890123456789"},
	}
	for _, c := range cases {
		tok := firstToken(t, c.src)
		require.Equal(t, INTEGER, tok.Kind, "source %q", c.src)
		assert.Equal(t, c.src, tok.Text, "raw text must stay verbatim")
		assert.Equal(t, c.want, tok.Int().String(), "source %q", c.src)
	}
}

func Test_Number_FloatDecoding(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1.02", 1.02},
		{"1_0.0", 10.0},
		{"3.14e-2", 0.0314},
		{"1e3", 1000.0},
		{"1.2_3e+1_0", 1.23e10},
	}
	for _, c := range cases {
		tok := firstToken(t, c.src)
		require.Equal(t, FLOAT, tok.Kind, "source %q", c.src)
		assert.Equal(t, c.src, tok.Text)
		assert.InEpsilon(t, c.want, tok.Float(), 1e-12, "source %q", c.src)
	}
}

func Test_Number_DotAndExponentLookahead(t *testing.T) {
	// A dot not followed by a digit ends the integer: `1.` is how every
	// Erlang form terminates.
	got := wantTexts(t, "1.", []string{"1", "."})
	assert.Equal(t, INTEGER, got[0].Kind)
	assert.Equal(t, SYMBOL, got[1].Kind)

	// A letter directly after digits starts a fresh token.
	wantKinds(t, "12erlang", []Kind{INTEGER, ATOM})

	// `e` with no digit in reach is not an exponent marker.
	wantKinds(t, "1e+", []Kind{INTEGER, ATOM, SYMBOL})

	// But after a fraction the marker is committed.
	_, err := New("1.2em").Scan()
	require.Error(t, err)
	assert.Equal(t, ErrMalformedNumber, err.(*Error).Kind)
}

func Test_Number_Errors(t *testing.T) {
	cases := []struct {
		src     string
		col     int // 0-based column of the offending character
		pattern string
	}{
		{"1_", 1, "digit separator"},
		{"1__2", 1, "digit separator"},
		{"1_.0", 1, "digit separator"},
		{"2#9", 2, "not a digit in base 2"},
		{"2#19", 3, "not a digit in base 2"},
		{"16#ffg", 5, "not a digit in base 16"},
		{"16#", 3, "expected a digit"},
		{"16#_f", 3, "expected a digit"},
		{"37#1", 0, "not in 2..36"},
		{"1#0", 0, "not in 2..36"},
		{"1.2e", 4, "exponent"},
		{"1.2e+", 5, "exponent"},
		{"1.2e_3", 4, "exponent"},
	}
	for _, c := range cases {
		_, err := New(c.src).Scan()
		require.Error(t, err, "source %q", c.src)
		lexErr, ok := err.(*Error)
		require.True(t, ok, "source %q: %v", c.src, err)
		assert.Equal(t, ErrMalformedNumber, lexErr.Kind, "source %q", c.src)
		assert.Equal(t, 1, lexErr.Pos.Line, "source %q", c.src)
		assert.Equal(t, c.col, lexErr.Pos.Col, "source %q", c.src)
		assert.Contains(t, lexErr.Error(), c.pattern, "source %q", c.src)
	}
}

func Test_Number_RadixStopsAtNonDigit(t *testing.T) {
	// Punctuation after radix digits ends the literal cleanly.
	got := wantTexts(t, "16#ff.", []string{"16#ff", "."})
	assert.Equal(t, "255", got[0].Int().String())
	wantKinds(t, "2#101+1", []Kind{INTEGER, SYMBOL, INTEGER})
}
