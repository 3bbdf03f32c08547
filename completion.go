package linenoise

// Completions is a finite ordered sequence of candidate strings
// assembled by the host's CompletionProducer. Strings are copied in by
// AddCompletion, never aliased, so the engine never holds a pointer into
// host-owned storage (spec §9's ownership note).
type Completions struct {
	items []string
}

// AddCompletion appends a copy of str to the set.
func (c *Completions) AddCompletion(str string) {
	cp := make([]byte, len(str))
	copy(cp, str)
	c.items = append(c.items, string(cp))
}

func (c *Completions) len() int { return len(c.items) }

func (c *Completions) at(i int) string { return c.items[i] }

func (c *Completions) reset() { c.items = c.items[:0] }
