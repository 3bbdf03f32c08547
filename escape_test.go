package linenoise

import "testing"

func TestEscapeArrowLeftMovesCursorForInsert(t *testing.T) {
	// "ab" then left-arrow puts the cursor between 'a' and 'b'; typing
	// 'c' there should splice, not append.
	e, _, buf := newDisabledEditor("ab\x1b[Dc\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "acb" {
		t.Fatalf("got buffer %q, want %q", got, "acb")
	}
}

func TestEscapeHomeAndEnd(t *testing.T) {
	// "abc", Home, insert 'X' at the front, End, insert 'Y' at the back.
	e, _, buf := newDisabledEditor("abc\x1b[HX\x1b[FY\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "XabcY" {
		t.Fatalf("got buffer %q, want %q", got, "XabcY")
	}
}

func TestEscapeOHomeAndEnd(t *testing.T) {
	// The ESC O H / ESC O F forms (some terminals' Home/End) behave the
	// same as the ESC [ H / ESC [ F forms.
	e, _, buf := newDisabledEditor("abc\x1bOHX\x1bOFY\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "XabcY" {
		t.Fatalf("got buffer %q, want %q", got, "XabcY")
	}
}

func TestEscapeDeleteKey(t *testing.T) {
	// "abc", left-arrow (cursor before 'c'), Delete removes 'c'.
	e, _, buf := newDisabledEditor("abc\x1b[D\x1b[3~\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "ab" {
		t.Fatalf("got buffer %q, want %q", got, "ab")
	}
}

func TestEscapeUnknownThreeByteFormIsIgnored(t *testing.T) {
	// ESC [ 5 ~ (PageUp) isn't a recognized form; it must be consumed
	// without corrupting the bytes that follow it.
	e, _, buf := newDisabledEditor("\x1b[5~x\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "x" {
		t.Fatalf("got buffer %q, want %q", got, "x")
	}
}

func TestEscapeUnknownTwoByteFormIsIgnored(t *testing.T) {
	// ESC [ Z isn't in the recognized letter set either.
	e, _, buf := newDisabledEditor("\x1b[Zx\r")
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "x" {
		t.Fatalf("got buffer %q, want %q", got, "x")
	}
}
