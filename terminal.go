package linenoise

import "fmt"

// probeStatus is the three-way result of a single getCursorPosition poll.
type probeStatus int

const (
	probeMore probeStatus = iota
	probeError
	probeDone
)

// getCursorPosition implements one poll of the Device Status Report round
// trip. The first call (curPosIdx < 0) sends the query and arms the
// deadline; subsequent calls accumulate bytes until 'R' arrives, the
// scratch buffer fills, or the deadline elapses.
func (e *Editor) getCursorPosition() (cols int, status probeStatus) {
	if e.curPosIdx < 0 {
		e.curPosIdx = 0
		e.writeString("\x1b[6n")
		e.host.Timer.Arm()
		return 0, probeMore
	}

	b, ok := e.host.Source.GetByte()
	if !ok {
		if e.host.Timer.Elapsed() {
			return 0, probeError
		}
		return 0, probeMore
	}

	if e.curPosIdx == 0 && b != keyEsc {
		// Discard bytes preceding the leading ESC.
		return 0, probeMore
	}

	if e.curPosIdx < len(e.curPosBuf) {
		e.curPosBuf[e.curPosIdx] = b
		e.curPosIdx++
	}
	if b != 'R' && e.curPosIdx < len(e.curPosBuf)-1 {
		return 0, probeMore
	}

	var rows int
	n, err := fmt.Sscanf(string(e.curPosBuf[:e.curPosIdx]), "\x1b[%d;%dR", &rows, &cols)
	if err != nil || n != 2 {
		return 0, probeError
	}
	return cols, probeDone
}

// stepGetColumns drives the GetColumns/GetColumns1/GetColumns2 sub-states
// and reports whether probing has finished (success or failure) and the
// editor should proceed to Init, or whether it needs another Step call.
func (e *Editor) stepGetColumns() bool {
	if e.mode == ModeGetColumns {
		e.curPosIdx = -1
		e.mode = ModeGetColumns1
	}

	if e.mode == ModeGetColumns1 {
		cols, status := e.getCursorPosition()
		switch status {
		case probeMore:
			return false
		case probeError:
			e.probeFailed()
			return true
		}
		e.smartTerm = true
		e.curPosInitial = cols
		e.writeString("\x1b[999C")
		e.curPosIdx = -1
		e.mode = ModeGetColumns2
		// A freshly reset getCursorPosition always answers probeMore on
		// its very next call (it just sent the query), so there is no
		// point attempting it again within this Step.
		return false
	}

	// ModeGetColumns2
	cols, status := e.getCursorPosition()
	switch status {
	case probeMore:
		return false
	case probeError:
		e.probeFailed()
		return true
	}
	e.cols = cols
	if cols > e.curPosInitial {
		e.writeString(fmt.Sprintf("\x1b[%dD", cols-e.curPosInitial))
	}
	e.mode = ModeInit
	return true
}

func (e *Editor) probeFailed() {
	e.smartTerm = false
	e.cols = DefaultCols
	e.mode = ModeInit
}
