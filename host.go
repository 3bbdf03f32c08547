package linenoise

// ByteSource is the host's polled keyboard source. GetByte must never
// block: it returns a byte in [0,255] and ok=true when one is available,
// or ok=false if nothing is available right now. It is called at most
// once per Step.
type ByteSource interface {
	GetByte() (b byte, ok bool)
}

// ByteSink is the host's raw output sink. Write must not block
// indefinitely. Each redraw reaches it as a single write; one Step may
// still issue several writes (for example a bell followed by a redraw).
type ByteSink interface {
	WriteBytes(p []byte) (int, error)
}

// CompletionProducer populates a Completions set from the current buffer
// contents. It is optional: a nil producer means Tab has no candidates
// (the ATTR_WEAK default in the original C).
type CompletionProducer interface {
	Complete(buf []byte, out *Completions)
}

// CompletionFunc adapts a plain function to CompletionProducer.
type CompletionFunc func(buf []byte, out *Completions)

func (f CompletionFunc) Complete(buf []byte, out *Completions) { f(buf, out) }

// Hint is what a HintsProducer returns: an optional argument-placeholder
// template and a free-form description, rendered to the right of the
// buffer. Either field may be empty.
type Hint struct {
	ArgsTemplate string
	Description  string
	Color        int // ANSI SGR parameter, e.g. 90 for bright black
	Bold         bool
}

// HintsProducer supplies an inline hint for the current buffer contents.
// Optional: a nil producer means no hints are ever shown.
type HintsProducer interface {
	Hints(buf []byte) (Hint, bool)
}

// HintsFunc adapts a plain function to HintsProducer.
type HintsFunc func(buf []byte) (Hint, bool)

func (f HintsFunc) Hints(buf []byte) (Hint, bool) { return f(buf) }

// Timer is the optional deadline used by the Terminal Prober. Arm starts
// (or restarts) the deadline; Elapsed reports whether it has fired. The
// default Timer (used when Host.Timer is nil) never elapses, matching the
// weak default in the original C (linenoise_timeout_set is a no-op).
type Timer interface {
	Arm()
	Elapsed() bool
}

// Host bundles every capability the engine needs from its caller. It is
// the Go expression of the "capability record passed at construction"
// design note: no global function pointers, no package-level singletons
// for I/O.
type Host struct {
	Source     ByteSource
	Sink       ByteSink
	Completion CompletionProducer // optional
	Hints      HintsProducer      // optional
	Timer      Timer              // optional
}

type neverTimer struct{}

func (neverTimer) Arm()          {}
func (neverTimer) Elapsed() bool { return false }
