package linenoise

import (
	"fmt"
	"strings"
)

// appendHints asks the host for a hint and appends its rendering to ab,
// truncated to whatever columns remain after prompt+buffer. Mirrors
// refreshShowHints in the original, including the placeholder-highlight
// behavior: when the buffer contains spaces, the args template is read as
// a sequence of "[...]"-delimited placeholders and the one whose
// zero-based index equals the number of spaces in the buffer is rendered
// in reverse video.
func (e *Editor) appendHints(ab *abuf, plen int) {
	if e.host.Hints == nil {
		return
	}
	colsAvail := e.cols - (plen + e.length + 1)
	if colsAvail <= 0 {
		return
	}
	hint, ok := e.host.Hints.Hints(e.buf[:e.length])
	if !ok {
		return
	}

	color := hint.Color
	if color == 0 {
		color = 35
	}
	bold := 0
	if hint.Bold {
		bold = 1
	}
	sgr := fmt.Sprintf("\x1b[%d;%d;49m", bold, color)

	ab.WriteString(" ")
	ab.WriteString(sgr)

	if hint.ArgsTemplate != "" {
		abLen := colsAvail
		if len(hint.ArgsTemplate) < abLen {
			abLen = len(hint.ArgsTemplate)
		}
		if strings.IndexByte(string(e.buf[:e.length]), ' ') >= 0 {
			writeHighlightedArgTemplate(ab, hint.ArgsTemplate, abLen, countSpaces(e.buf[:e.length]), sgr)
		} else {
			ab.WriteString(hint.ArgsTemplate[:abLen])
		}
		colsAvail -= abLen
		if colsAvail > 0 {
			ab.WriteString(" ")
			colsAvail--
		}
	}

	if colsAvail > 0 && hint.Description != "" {
		ab.WriteString(sgr)
		abLen := colsAvail
		if len(hint.Description) < abLen {
			abLen = len(hint.Description)
		}
		ab.WriteString(hint.Description[:abLen])
	}

	ab.WriteString("\x1b[0m")
}

func countSpaces(buf []byte) int {
	n := 0
	for _, c := range buf {
		if c == ' ' {
			n++
		}
	}
	return n
}

// writeHighlightedArgTemplate walks the "[...]"-delimited placeholders of
// template, reverse-videoing the one at zero-based index argID, truncated to abLen
// bytes of the source template. sgr is the hint's base color/weight,
// restored after the reverse-video segment.
func writeHighlightedArgTemplate(ab *abuf, template string, abLen, argID int, sgr string) {
	pos := 0
	for i := 0; i <= argID; i++ {
		idx := strings.IndexByte(template[pos:], '[')
		if idx < 0 {
			// No placeholder at index argID: no highlight.
			ab.WriteString(template[:abLen])
			return
		}
		pos += idx + 1
	}
	argStart := pos
	argEnd := argStart
	if argStart > 0 {
		for argEnd < len(template) && template[argEnd] != ' ' && template[argEnd] != ']' {
			argEnd++
		}
	}
	if argStart == argEnd {
		ab.WriteString(template[:abLen])
		return
	}

	writeTrunc(ab, template[:argStart], abLen)
	abLen -= min(argStart, abLen)
	if abLen <= 0 {
		return
	}

	ab.WriteString("\x1b[7m")
	segLen := argEnd - argStart
	if segLen > abLen {
		segLen = abLen
	}
	ab.WriteString(template[argStart : argStart+segLen])
	ab.WriteString(sgr)
	abLen -= segLen
	if abLen <= 0 {
		return
	}

	writeTrunc(ab, template[argEnd:], abLen)
}

func writeTrunc(ab *abuf, s string, n int) {
	if len(s) < n {
		n = len(s)
	}
	ab.WriteString(s[:n])
}

