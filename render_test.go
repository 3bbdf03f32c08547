package linenoise

import (
	"strings"
	"testing"
)

// chunkSink keeps every WriteBytes call as a separate chunk, so a test
// can inspect exactly what the most recent redraw painted rather than an
// undifferentiated stream.
type chunkSink struct {
	chunks [][]byte
}

func (s *chunkSink) WriteBytes(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	s.chunks = append(s.chunks, cp)
	return len(p), nil
}

func (s *chunkSink) last() string {
	if len(s.chunks) == 0 {
		return ""
	}
	return string(s.chunks[len(s.chunks)-1])
}

// TestSingleLineWindowSlidesToKeepCursorVisible exercises the horizontal
// scroll renderer's windowing math directly: with cols=5 and an empty
// prompt, typing six characters must drop the earliest ones from the
// painted window and report the cursor position relative to the
// remaining (windowed) text, not the logical buffer.
func TestSingleLineWindowSlidesToKeepCursorVisible(t *testing.T) {
	src := &fakeSource{bytes: []byte("abcdef")}
	sink := &chunkSink{}
	hist := NewHistory(DefaultHistoryMaxLen)
	e := NewEditor(Host{Source: src, Sink: sink}, hist, WithProbeDisabled(5))
	buf := make([]byte, 64)

	for i := 0; i < 6; i++ {
		res := e.Step(buf, "")
		if res.Kind != NeedMore {
			t.Fatalf("step %d: got Kind=%v, want NeedMore", i, res.Kind)
		}
	}

	last := sink.last()
	if !strings.Contains(last, "cdef") {
		t.Fatalf("expected windowed tail %q in last redraw, got %q", "cdef", last)
	}
	if strings.Contains(last, "ab") {
		t.Fatalf("expected scrolled-off head not to appear in last redraw, got %q", last)
	}
	if !strings.HasSuffix(last, "\r\x1b[4C") {
		t.Fatalf("expected cursor placed at windowed column 4, got %q", last)
	}
}

// TestMultiLineMaxRowsGrowsWithWrap exercises the row-wrapped renderer's
// bookkeeping: typing a line longer than one row at cols=5 must push
// maxrows past 1.
func TestMultiLineMaxRowsGrowsWithWrap(t *testing.T) {
	src := &fakeSource{bytes: []byte("abcdefgh")}
	sink := &chunkSink{}
	hist := NewHistory(DefaultHistoryMaxLen)
	e := NewEditor(Host{Source: src, Sink: sink}, hist, WithProbeDisabled(5), WithMultiLine(true))
	buf := make([]byte, 64)

	for i := 0; i < 8; i++ {
		res := e.Step(buf, "")
		if res.Kind != NeedMore {
			t.Fatalf("step %d: got Kind=%v, want NeedMore", i, res.Kind)
		}
	}

	if e.maxrows != 2 {
		t.Fatalf("got maxrows=%d, want 2", e.maxrows)
	}
}

// TestSingleLineOverWidePromptDoesNotPanic guards refreshSingleLine's
// windowing loops against a prompt at least as wide as the terminal,
// which empties buf before the loop conditions would naturally stop.
func TestSingleLineOverWidePromptDoesNotPanic(t *testing.T) {
	src := &fakeSource{bytes: []byte("ab")}
	sink := &chunkSink{}
	hist := NewHistory(DefaultHistoryMaxLen)
	e := NewEditor(Host{Source: src, Sink: sink}, hist, WithProbeDisabled(3))
	buf := make([]byte, 64)

	for i := 0; i < 2; i++ {
		e.Step(buf, "prompt-wider-than-cols> ")
	}
}

// TestMultiLineSingleShortLineStaysOneRow is the control case: a line
// that fits within one row never grows maxrows past 1.
func TestMultiLineSingleShortLineStaysOneRow(t *testing.T) {
	src := &fakeSource{bytes: []byte("ab")}
	sink := &chunkSink{}
	hist := NewHistory(DefaultHistoryMaxLen)
	e := NewEditor(Host{Source: src, Sink: sink}, hist, WithProbeDisabled(5), WithMultiLine(true))
	buf := make([]byte, 64)

	for i := 0; i < 2; i++ {
		e.Step(buf, "")
	}

	if e.maxrows != 1 {
		t.Fatalf("got maxrows=%d, want 1", e.maxrows)
	}
}
