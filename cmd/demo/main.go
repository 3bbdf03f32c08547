// Command demo drives a linenoise.Editor against the process's own
// controlling terminal, using golang.org/x/term to enter raw mode and
// golang.org/x/term.GetSize to pass WithProbeDisabled a known column
// count instead of round-tripping a Device Status Report.
package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/patrislav1/linenoise"
)

// stdinSource turns the blocking os.Stdin.Read into a polled source: a
// reader goroutine feeds a buffered channel, and GetByte drains it with a
// non-blocking select.
type stdinSource struct {
	raw chan byte
}

func newStdinSource() *stdinSource {
	s := &stdinSource{raw: make(chan byte, 256)}
	go s.readLoop()
	return s
}

func (s *stdinSource) readLoop() {
	b := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(b)
		if n == 1 {
			s.raw <- b[0]
		}
		if err != nil {
			close(s.raw)
			return
		}
	}
}

func (s *stdinSource) GetByte() (byte, bool) {
	select {
	case b, ok := <-s.raw:
		return b, ok
	default:
		return 0, false
	}
}

type stdoutSink struct{}

func (stdoutSink) WriteBytes(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

var historyFile = os.Getenv("HOME") + "/.linenoise_demo_history"

func main() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "demo: stdin is not a terminal")
		os.Exit(1)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo: raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, state)

	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		cols = linenoise.DefaultCols
	}

	hist := linenoise.NewHistory(linenoise.DefaultHistoryMaxLen)
	hist.Load(historyFile) //nolint:errcheck

	host := linenoise.Host{
		Source: newStdinSource(),
		Sink:   stdoutSink{},
		Hints: linenoise.HintsFunc(func(buf []byte) (linenoise.Hint, bool) {
			if strings.HasPrefix(string(buf), "git ") {
				return linenoise.Hint{ArgsTemplate: "[command] [args]", Description: "git", Color: 90, Bold: true}, true
			}
			return linenoise.Hint{}, false
		}),
	}
	ed := linenoise.NewEditor(host, hist, linenoise.WithProbeDisabled(cols))

	buf := make([]byte, 4096)
	for {
		res := ed.Step(buf, "demo> ")
		switch res.Kind {
		case linenoise.NeedMore:
			continue
		case linenoise.Committed:
			line := string(buf[:res.N])
			os.Stdout.WriteString("\r\n")
			if line != "" {
				hist.Add(line)
			}
			if line == "quit" || line == "exit" {
				hist.Save(historyFile) //nolint:errcheck
				return
			}
			os.Stdout.WriteString("you said: " + line + "\r\n")
		case linenoise.Eof, linenoise.Interrupted:
			os.Stdout.WriteString("\r\n")
			hist.Save(historyFile) //nolint:errcheck
			return
		case linenoise.Error:
			fmt.Fprintln(os.Stderr, "\r\ndemo:", res.Err)
			return
		}
	}
}
