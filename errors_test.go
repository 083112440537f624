package erltok

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_ShowsCaretAndContext(t *testing.T) {
	// Two lines; the unterminated string opens on line 2, column 5.
	src := "ok.\nX = \"abc"

	_, err := New(src).Scan()
	if err == nil {
		t.Fatalf("expected a lexical error, got nil")
	}

	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "LEXICAL ERROR at 2:5")
	mustContain(t, msg, "   1 | ok.")
	mustContain(t, msg, "   2 | X = \"abc")
	mustContain(t, msg, "     |     ^")
}

func Test_ErrorWrap_WithName(t *testing.T) {
	src := "1_"
	_, err := New(src).Scan()
	if err == nil {
		t.Fatalf("expected a lexical error, got nil")
	}
	msg := WrapErrorWithName(err, "demo.erl", src).Error()
	mustContain(t, msg, "LEXICAL ERROR in demo.erl at 1:2")
	mustContain(t, msg, "   1 | 1_")
	mustContain(t, msg, "     |  ^")
}

func Test_ErrorWrap_PassesOtherErrorsThrough(t *testing.T) {
	plain := errors.New("not a lexical error")
	if got := WrapErrorWithSource(plain, "whatever"); got != plain {
		t.Fatalf("non-lexical errors must pass through unchanged, got %v", got)
	}
}

func Test_Error_MessageFormat(t *testing.T) {
	_, err := New("ok ^").Scan()
	if err == nil {
		t.Fatalf("expected a lexical error, got nil")
	}
	lexErr := err.(*Error)
	if lexErr.Kind.String() != "invalid input" {
		t.Fatalf("unexpected kind string: %q", lexErr.Kind.String())
	}
	mustContain(t, lexErr.Error(), "LEXICAL ERROR at 1:4")
}
