package linenoise

// handleCharacter dispatches one byte on a smart terminal, per the table
// in spec §4.5.
func (e *Editor) handleCharacter(c byte) Result {
	if c == keyTab {
		e.completeLine()
		return needMore()
	}

	switch c {
	case keyEnter:
		e.hist.Pop()
		if e.multiLine {
			e.editMoveEnd()
		}
		e.refreshLineNoHints()
		e.restartState()
		return committed(e.length)
	case ctrlC:
		return interrupted()
	case keyDEL, ctrlH:
		e.editBackspace()
	case ctrlD:
		if e.length > 0 {
			e.editDelete()
		} else {
			e.hist.Pop()
			return eofResult()
		}
	case ctrlT:
		if e.pos > 0 && e.pos < e.length {
			e.buf[e.pos-1], e.buf[e.pos] = e.buf[e.pos], e.buf[e.pos-1]
			if e.pos != e.length-1 {
				e.pos++
			}
			e.refreshLine()
		}
	case ctrlB:
		e.editMoveLeft()
	case ctrlF:
		e.editMoveRight()
	case ctrlP:
		e.editHistoryNext(historyPrev)
	case ctrlN:
		e.editHistoryNext(historyNext)
	case keyEsc:
		e.seqIdx = 0
		e.mode = ModeReadEsc
	case ctrlU:
		e.length = 0
		e.pos = 0
		e.refreshLine()
	case ctrlK:
		e.length = e.pos
		e.refreshLine()
	case ctrlA:
		e.editMoveHome()
	case ctrlE:
		e.editMoveEnd()
	case ctrlL:
		e.ClearScreen()
		e.refreshLine()
	case ctrlW:
		e.editDeletePrevWord()
	default:
		e.editInsert(c)
	}
	return needMore()
}

// handleCharacterDumb is the dumb-terminal key set: only Enter is
// special, and it commits whatever has been typed so far. Everything
// else — including Ctrl-C, Ctrl-D and Backspace — is appended to the
// buffer raw, with no decoration and no per-keystroke redraw, since a
// dumb terminal is not assumed to do local echo shaping at all.
func (e *Editor) handleCharacterDumb(c byte) Result {
	if c == '\r' || c == '\n' {
		e.hist.Pop()
		e.restartState()
		return committed(e.pos)
	}
	if e.pos < e.capacity()-1 {
		e.buf[e.pos] = c
		e.pos++
		e.length = e.pos
		if e.pos >= e.capacity()-1 {
			e.hist.Pop()
			e.restartState()
			return committed(e.pos)
		}
	}
	return needMore()
}

func (e *Editor) restartState() {
	if e.smartTerm && !e.probeDisabled {
		e.mode = ModeGetColumns
	} else {
		e.mode = ModeInit
	}
}

// editInsert grows length by one at pos and advances the cursor. When the
// cursor is at the end of the line, the terminal is in single-line mode,
// no hints are configured, and the result still fits within one row, it
// skips the full redraw and echoes
// just the inserted byte (spec §4.5's optimized partial write).
func (e *Editor) editInsert(c byte) {
	if e.length >= e.capacity()-1 {
		return
	}
	if e.pos == e.length {
		e.buf[e.pos] = c
		e.pos++
		e.length++
		if !e.multiLine && e.host.Hints == nil && e.plen+e.length < e.cols {
			e.writeString(string(c))
			return
		}
		e.refreshLine()
		return
	}
	copy(e.buf[e.pos+1:e.length+1], e.buf[e.pos:e.length])
	e.buf[e.pos] = c
	e.length++
	e.pos++
	e.refreshLine()
}

func (e *Editor) editMoveLeft() {
	if e.pos > 0 {
		e.pos--
		e.refreshLine()
	}
}

func (e *Editor) editMoveRight() {
	if e.pos != e.length {
		e.pos++
		e.refreshLine()
	}
}

func (e *Editor) editMoveHome() {
	if e.pos != 0 {
		e.pos = 0
		e.refreshLine()
	}
}

func (e *Editor) editMoveEnd() {
	if e.pos != e.length {
		e.pos = e.length
		e.refreshLine()
	}
}

// editHistoryNext substitutes the edited line with the next/previous
// history entry, preserving the in-progress edit in the scratch slot.
func (e *Editor) editHistoryNext(dir int) {
	if e.hist.Len() <= 1 {
		return
	}
	e.hist.Set(e.historyIndex, string(e.buf[:e.length]))

	if dir == historyPrev {
		e.historyIndex++
	} else {
		e.historyIndex--
	}
	if e.historyIndex < 0 {
		e.historyIndex = 0
		return
	}
	if e.historyIndex >= e.hist.Len() {
		e.historyIndex = e.hist.Len() - 1
		return
	}

	line := e.hist.Get(e.historyIndex)
	n := copy(e.buf[:e.capacity()-1], line)
	e.length = n
	e.pos = n
	e.refreshLine()
}

func (e *Editor) editDelete() {
	if e.length > 0 && e.pos < e.length {
		copy(e.buf[e.pos:e.length-1], e.buf[e.pos+1:e.length])
		e.length--
		e.refreshLine()
	}
}

func (e *Editor) editBackspace() {
	if e.pos > 0 && e.length > 0 {
		copy(e.buf[e.pos-1:e.length-1], e.buf[e.pos:e.length])
		e.pos--
		e.length--
		e.refreshLine()
	}
}

// editDeletePrevWord scans left past spaces, then left past non-spaces,
// and splices the buffer in place.
func (e *Editor) editDeletePrevWord() {
	oldPos := e.pos
	for e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}
	diff := oldPos - e.pos
	copy(e.buf[e.pos:e.length-diff], e.buf[oldPos:e.length])
	e.length -= diff
	e.refreshLine()
}
