package linenoise

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryAddRejectsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(10)
	if !h.Add("a") {
		t.Fatalf("first add should succeed")
	}
	if h.Add("a") {
		t.Fatalf("consecutive duplicate should be rejected")
	}
	if h.Add("b") {
		if h.Len() != 2 {
			t.Fatalf("got len=%d, want 2", h.Len())
		}
	} else {
		t.Fatalf("non-duplicate add should succeed")
	}
}

func TestHistoryZeroCapacityIsNoop(t *testing.T) {
	h := NewHistory(0)
	if h.Add("x") {
		t.Fatalf("add on zero-capacity history should fail")
	}
	if h.Len() != 0 {
		t.Fatalf("got len=%d, want 0", h.Len())
	}
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	if h.Len() != 2 {
		t.Fatalf("got len=%d, want 2", h.Len())
	}
	if got := h.Get(1); got != "b" {
		t.Fatalf("got oldest=%q, want %q", got, "b")
	}
	if got := h.Get(0); got != "c" {
		t.Fatalf("got newest=%q, want %q", got, "c")
	}
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	h := NewHistory(10)
	h.Add("one")
	h.Add("two")
	h.Add("three")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	h2 := NewHistory(10)
	if err := h2.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h2.Len() != 3 {
		t.Fatalf("got len=%d, want 3", h2.Len())
	}
	for i, want := range []string{"three", "two", "one"} {
		if got := h2.Get(i); got != want {
			t.Fatalf("entry at distance %d: got %q, want %q", i, got, want)
		}
	}
}

func TestHistoryLoadToleratesBareCR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	if err := os.WriteFile(path, []byte("one\rtwo\rthree"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h := NewHistory(10)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("got len=%d, want 3", h.Len())
	}
}

func TestHistorySetMaxLenKeepsMostRecent(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	h.SetMaxLen(2)
	if h.Len() != 2 {
		t.Fatalf("got len=%d, want 2", h.Len())
	}
	if got := h.Get(0); got != "c" {
		t.Fatalf("got newest=%q, want %q", got, "c")
	}
	if got := h.Get(1); got != "b" {
		t.Fatalf("got oldest=%q, want %q", got, "b")
	}
}
