package linenoise

// completeLine is invoked when the user types Tab. It asks the host's
// CompletionProducer for candidates; on an empty set it beeps and stays
// in ReadRegular, otherwise it enters Completion mode showing the first
// distinct candidate.
func (e *Editor) completeLine() {
	e.completions.reset()
	if e.host.Completion != nil {
		e.host.Completion.Complete(e.buf[:e.length], &e.completions)
	}
	if e.completions.len() == 0 {
		e.writeString("\a")
		return
	}
	e.completionIdx = 0
	e.mode = ModeCompletion
	e.showCompletion()
}

// showCompletion paints the currently selected candidate (or, at index
// len, the original buffer) in place of the live buffer, without
// mutating it.
func (e *Editor) showCompletion() {
	for e.completionIdx < e.completions.len() && e.completions.at(e.completionIdx) == string(e.buf[:e.length]) {
		e.completionIdx = (e.completionIdx + 1) % (e.completions.len() + 1)
	}

	savedLen, savedPos := e.length, e.pos
	savedBuf := e.buf

	if e.completionIdx < e.completions.len() {
		cand := e.completions.at(e.completionIdx)
		tmp := make([]byte, len(cand))
		copy(tmp, cand)
		e.buf = tmp
		e.length = len(tmp)
		e.pos = len(tmp)
	}

	e.refreshLine()

	e.buf = savedBuf
	e.length = savedLen
	e.pos = savedPos
}

// completionStep consumes one byte while in Completion mode: Tab cycles
// candidates (and the original buffer at the last slot), Escape restores
// the original buffer and exits, any other byte commits the candidate
// (copy-on-accept into the live buffer) and exits. Every byte except Tab
// is then re-dispatched through the ordinary handler, so Escape also
// starts an escape sequence there.
func (e *Editor) completionStep() Result {
	c, ok := e.host.Source.GetByte()
	if !ok {
		return needMore()
	}

	switch c {
	case keyTab:
		e.completionIdx = (e.completionIdx + 1) % (e.completions.len() + 1)
		if e.completionIdx == e.completions.len() {
			e.writeString("\a")
		}
		e.showCompletion()
		return needMore()
	case keyEsc:
		if e.completionIdx < e.completions.len() {
			e.refreshLine()
		}
	default:
		if e.completionIdx < e.completions.len() {
			n := copy(e.buf[:e.capacity()-1], e.completions.at(e.completionIdx))
			e.length = n
			e.pos = n
		}
	}

	e.mode = ModeReadRegular
	e.completions.reset()
	return e.handleCharacter(c)
}
