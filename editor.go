package linenoise

import "fmt"

// Editor is a single long-lived record owned by the engine. The host
// never mutates its interior directly; it drives the editor only through
// Step and the other exported operations.
type Editor struct {
	host Host
	hist *History

	mode Mode

	buf    []byte // host-owned backing array for the current session
	length int    // current logical length, <= len(buf)
	pos    int    // cursor offset, 0 <= pos <= length
	oldpos int     // cursor offset as of the previous redraw

	prompt string
	plen   int

	cols          int
	smartTerm     bool
	probeDisabled bool

	multiLine bool
	maxrows   int

	historyIndex int

	seq    [3]byte
	seqIdx int

	completionIdx int
	completions   Completions

	curPosBuf     [32]byte
	curPosIdx     int
	curPosInitial int

	ab abuf
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithMultiLine selects the row-wrapped multi-line renderer instead of the
// default horizontal-scroll single-line renderer.
func WithMultiLine(b bool) Option {
	return func(e *Editor) { e.multiLine = b }
}

// WithProbeDisabled statically disables the Terminal Prober's
// device-status-report round trip and starts the editor directly in
// smart-terminal mode at the given column count. Use this when the host
// already knows its terminal width (e.g. via golang.org/x/term.GetSize)
// and probing would just be redundant latency. This is the resolution of
// spec §9's open question: probing is optional and may be statically
// disabled, nothing more.
func WithProbeDisabled(cols int) Option {
	return func(e *Editor) {
		e.probeDisabled = true
		e.cols = cols
		e.smartTerm = true
		e.mode = ModeInit
	}
}

// NewEditor constructs an Editor bound to host and hist. hist must not be
// nil; a zero-value &History{} starts empty and adopts
// DefaultHistoryMaxLen as its capacity on first Add.
func NewEditor(host Host, hist *History, opts ...Option) *Editor {
	if host.Timer == nil {
		host.Timer = neverTimer{}
	}
	e := &Editor{
		host:      host,
		hist:      hist,
		mode:      ModeGetColumns,
		cols:      DefaultCols,
		curPosIdx: -1,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Step performs at most one input byte of progress and reports the
// result. buf is the host's line buffer; its first MaxLineLen-1 bytes
// (or len(buf)-1, whichever is smaller) are available to the editor.
// prompt is re-read on every call so UpdatePrompt-style changes between
// sessions take effect without a separate call.
func (e *Editor) Step(buf []byte, prompt string) Result {
	e.buf = buf
	e.prompt = prompt
	e.plen = len(prompt)

	if e.mode.probing() {
		// The probe may have consumed a reply byte in this call, so the
		// first key is read on the next Step.
		if e.stepGetColumns() {
			e.initState()
		}
		return needMore()
	}
	if e.mode == ModeInit {
		e.initState()
	}
	switch e.mode {
	case ModeReadRegular:
		return e.readUserInput()
	case ModeReadEsc:
		return e.readEscSequence()
	case ModeCompletion:
		return e.completionStep()
	default:
		return errResult(fmt.Errorf("linenoise: unreachable mode %d", e.mode))
	}
}

// capacity returns the usable size of buf: len(buf), capped at MaxLineLen.
// The logical length is kept at most capacity()-1.
func (e *Editor) capacity() int {
	c := len(e.buf)
	if MaxLineLen > 0 && MaxLineLen < c {
		c = MaxLineLen
	}
	return c
}

func (e *Editor) initState() {
	e.length = 0
	e.pos = 0
	e.oldpos = 0
	e.maxrows = 0
	e.historyIndex = 0

	// The latest history entry is always the current buffer, which
	// starts out as the empty string — this is the scratch slot.
	e.hist.Add("")

	if e.smartTerm {
		e.writeString(promptHdr + e.prompt + promptTlr)
	} else {
		e.writeString(e.prompt)
	}
	e.mode = ModeReadRegular
}

func (e *Editor) readUserInput() Result {
	b, ok := e.host.Source.GetByte()
	if !ok {
		return needMore()
	}
	if e.smartTerm {
		return e.handleCharacter(b)
	}
	return e.handleCharacterDumb(b)
}

func (e *Editor) writeString(s string) {
	if e.host.Sink != nil {
		e.host.Sink.WriteBytes([]byte(s)) //nolint:errcheck
	}
}

// SetMultiLine selects the renderer mode (set_multi_line).
func (e *Editor) SetMultiLine(b bool) { e.multiLine = b }

// SmartTerminalConnected reports whether the last probe (or the static
// WithProbeDisabled override) found a smart terminal.
func (e *Editor) SmartTerminalConnected() bool { return e.smartTerm }

// UpdatePrompt swaps the prompt and repaints (update_prompt).
func (e *Editor) UpdatePrompt(prompt string) {
	e.prompt = prompt
	e.plen = len(prompt)
	e.Refresh()
}

// Refresh repaints on demand (refresh_editor), e.g. after the host prints
// an asynchronous line above the edited one. A no-op on a dumb terminal
// and while the engine has not yet reached an editing mode.
func (e *Editor) Refresh() {
	if !e.smartTerm {
		return
	}
	switch e.mode {
	case ModeInit, ModeGetColumns, ModeGetColumns1, ModeGetColumns2:
		return
	case ModeCompletion:
		e.showCompletion()
	default:
		e.refreshLine()
	}
}

// ClearScreen emits the clear-and-home sequence and forces re-probing on
// the next Step, per spec §6, unless probing was disabled with
// WithProbeDisabled.
func (e *Editor) ClearScreen() {
	e.writeString("\x1b[H\x1b[2J")
	if !e.probeDisabled {
		e.mode = ModeGetColumns
	}
}
