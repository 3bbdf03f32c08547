package linenoise

import "testing"

func completionsOf(cands ...string) CompletionFunc {
	return func(buf []byte, out *Completions) {
		for _, c := range cands {
			out.AddCompletion(c)
		}
	}
}

func newCompletionEditor(input string, fn CompletionFunc) (*Editor, *fakeSink, []byte) {
	src := &fakeSource{bytes: []byte(input)}
	sink := &fakeSink{}
	host := Host{Source: src, Sink: sink, Completion: fn}
	hist := NewHistory(DefaultHistoryMaxLen)
	e := NewEditor(host, hist, WithProbeDisabled(80))
	buf := make([]byte, 64)
	return e, sink, buf
}

func TestCompletionCyclesWithoutMutatingBufferUntilAccepted(t *testing.T) {
	// Tab shows "foo", a second Tab cycles to "foobar"; a space then
	// accepts "foobar" and is itself appended.
	e, _, buf := newCompletionEditor("f\t\t \r", completionsOf("foo", "foobar"))
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "foobar " {
		t.Fatalf("got buffer %q, want %q", got, "foobar ")
	}
}

func TestCompletionEmptySetBeeps(t *testing.T) {
	e, sink, buf := newCompletionEditor("x\t\r", completionsOf())
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "x" {
		t.Fatalf("got buffer %q, want %q", got, "x")
	}
	found := false
	for _, b := range sink.written {
		if b == '\a' {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a bell byte in output, got %q", sink.written)
	}
}

func TestCompletionEscapeRestoresOriginalBuffer(t *testing.T) {
	// Tab shows "abc"; Escape backs out to the unmodified "ab". The two
	// bytes after Escape form an unrecognized (and therefore ignored)
	// escape sequence, matching the engine's fold of Escape-to-exit-
	// completion back through the ordinary Escape handler.
	e, _, buf := newCompletionEditor("ab\t\x1bXY\r", completionsOf("abc"))
	res := runToResult(t, e, buf, "> ", 64)
	if res.Kind != Committed {
		t.Fatalf("got Kind=%v, want Committed", res.Kind)
	}
	if got := string(buf[:res.N]); got != "ab" {
		t.Fatalf("got buffer %q, want %q", got, "ab")
	}
}
