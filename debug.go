package linenoise

import "fmt"

// PrintKeyCodes runs the key-codes debugging mode described in spec §6: it
// spins on host.Source.GetByte (which never blocks) until a byte is ready,
// echoes its printable form, hex and decimal value, and exits as soon as
// the last four bytes typed spell "quit". It bypasses Step/Editor entirely,
// matching the original's standalone --keycodes debug path, and is meant to
// be called with the terminal already in raw mode.
func PrintKeyCodes(host Host) {
	writeLine(host.Sink, "Linenoise key codes debugging mode.\n")
	writeLine(host.Sink, "Press keys to see scan codes. Type 'quit' at any time to exit.\n")

	var quit [4]byte
	for i := range quit {
		quit[i] = ' '
	}

	for {
		var c byte
		for {
			b, ok := host.Source.GetByte()
			if ok {
				c = b
				break
			}
		}

		copy(quit[:], quit[1:])
		quit[len(quit)-1] = c
		if quit == ([4]byte{'q', 'u', 'i', 't'}) {
			return
		}

		display := c
		if !isPrint(c) {
			display = '?'
		}
		writeLine(host.Sink, fmt.Sprintf("'%c' %02x (%d) (type quit to exit)\n", display, c, c))
		writeLine(host.Sink, "\r")
	}
}

func isPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

func writeLine(sink ByteSink, s string) {
	if sink != nil {
		sink.WriteBytes([]byte(s)) //nolint:errcheck
	}
}
