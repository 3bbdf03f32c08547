package linenoise

import "fmt"

// refreshLine repaints according to the selected mode, with hints.
func (e *Editor) refreshLine() {
	if e.multiLine {
		e.refreshMultiLine(true)
	} else {
		e.refreshSingleLine(true)
	}
}

// refreshLineNoHints repaints without hints — used for the final redraw
// after Enter so the committed line isn't followed by stale annotation.
func (e *Editor) refreshLineNoHints() {
	if e.multiLine {
		e.refreshMultiLine(false)
	} else {
		e.refreshSingleLine(false)
	}
}

// refreshSingleLine implements the horizontal-scroll renderer of spec
// §4.3.
func (e *Editor) refreshSingleLine(showHints bool) {
	plen := e.plen
	buf := e.buf[:e.length]
	pos := e.pos

	for len(buf) > 0 && plen+pos >= e.cols {
		buf = buf[1:]
		pos--
	}
	if pos < 0 {
		pos = 0
	}
	for len(buf) > 0 && plen+len(buf) > e.cols {
		buf = buf[:len(buf)-1]
	}

	e.ab.Reset()
	e.ab.WriteByte('\r')
	e.ab.WriteString(promptHdr)
	e.ab.WriteString(e.prompt)
	e.ab.WriteString(promptTlr)
	e.ab.Write(buf)

	if showHints {
		e.appendHints(&e.ab, plen)
	}

	e.ab.WriteString("\x1b[0K")
	e.ab.WriteString(fmt.Sprintf("\r\x1b[%dC", pos+plen))

	e.ab.flush(e.host.Sink)
}

// refreshMultiLine implements the row-wrapped renderer of spec §4.3.
func (e *Editor) refreshMultiLine(showHints bool) {
	plen := e.plen
	rows := (plen + e.length + e.cols - 1) / e.cols
	rpos := (plen + e.oldpos + e.cols) / e.cols
	oldRows := e.maxrows

	if rows > e.maxrows {
		e.maxrows = rows
	}

	e.ab.Reset()

	if oldRows-rpos > 0 {
		e.ab.WriteString(fmt.Sprintf("\x1b[%dB", oldRows-rpos))
	}
	for j := 0; j < oldRows-1; j++ {
		e.ab.WriteString("\r\x1b[0K\x1b[1A")
	}
	e.ab.WriteString("\r\x1b[0K")

	e.ab.WriteString(promptHdr)
	e.ab.WriteString(e.prompt)
	e.ab.WriteString(promptTlr)
	e.ab.Write(e.buf[:e.length])

	if showHints {
		e.appendHints(&e.ab, plen)
	}

	if e.pos != 0 && e.pos == e.length && (e.pos+plen)%e.cols == 0 {
		e.ab.WriteString("\n\r")
		rows++
		if rows > e.maxrows {
			e.maxrows = rows
		}
	}

	rpos2 := (plen + e.pos + e.cols) / e.cols
	if rows-rpos2 > 0 {
		e.ab.WriteString(fmt.Sprintf("\x1b[%dA", rows-rpos2))
	}

	col := (plen + e.pos) % e.cols
	if col != 0 {
		e.ab.WriteString(fmt.Sprintf("\r\x1b[%dC", col))
	} else {
		e.ab.WriteByte('\r')
	}

	e.oldpos = e.pos

	e.ab.flush(e.host.Sink)
}
