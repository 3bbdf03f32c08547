package linenoise

// readEscSequence accumulates up to three bytes of an ESC-introduced
// sequence and, once enough bytes are present to recognize (or rule out)
// a known form, dispatches the corresponding operation and reverts to
// ReadRegular. Any unrecognized three-byte extended form is consumed and
// ignored, per spec §4.6.
func (e *Editor) readEscSequence() Result {
	c, ok := e.host.Source.GetByte()
	if !ok {
		return needMore()
	}
	if e.seqIdx >= len(e.seq) {
		e.mode = ModeReadRegular
		return needMore()
	}
	e.seq[e.seqIdx] = c
	e.seqIdx++
	if e.seqIdx < 2 {
		return needMore()
	}

	switch e.seq[0] {
	case '[':
		if e.seq[1] >= '0' && e.seq[1] <= '9' {
			if e.seqIdx < 3 {
				return needMore()
			}
			if e.seq[2] == '~' && e.seq[1] == '3' {
				e.editDelete()
			}
		} else {
			switch e.seq[1] {
			case 'A':
				e.editHistoryNext(historyPrev)
			case 'B':
				e.editHistoryNext(historyNext)
			case 'C':
				e.editMoveRight()
			case 'D':
				e.editMoveLeft()
			case 'H':
				e.editMoveHome()
			case 'F':
				e.editMoveEnd()
			}
		}
	case 'O':
		switch e.seq[1] {
		case 'H':
			e.editMoveHome()
		case 'F':
			e.editMoveEnd()
		}
	}

	e.mode = ModeReadRegular
	return needMore()
}
