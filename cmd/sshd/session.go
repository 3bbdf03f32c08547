package main

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"

	"github.com/patrislav1/linenoise"
	"github.com/patrislav1/linenoise/internal/elog"
)

// editSession adapts an ssh.Channel into linenoise's ByteSource/ByteSink
// pair. Reading the channel can block, so a reader goroutine feeds a
// buffered byte channel and GetByte drains it without blocking, which is
// what the engine's polled-source contract requires.
type editSession struct {
	ch   ssh.Channel
	slog *elog.Session

	rawIn chan byte
	done  chan struct{}
	once  sync.Once

	writeMu sync.Mutex

	ed   *linenoise.Editor
	hist *linenoise.History

	histPath string
	buf      [4096]byte
}

var commandSet = []string{
	"echo", "help", "history", "quit", "exit", "clear", "whoami",
}

func newEditSession(ch ssh.Channel, sessionID, histDir string, slog *elog.Session) *editSession {
	s := &editSession{
		ch:    ch,
		slog:  slog,
		rawIn: make(chan byte, 256),
		done:  make(chan struct{}),
	}
	s.histPath = filepath.Join(histDir, sessionID+".history")

	s.hist = linenoise.NewHistory(linenoise.DefaultHistoryMaxLen)
	s.hist.Load(s.histPath) //nolint:errcheck

	host := linenoise.Host{
		Source:     s,
		Sink:       s,
		Completion: linenoise.CompletionFunc(s.complete),
	}
	s.ed = linenoise.NewEditor(host, s.hist)

	go s.inputReader()
	return s
}

func (s *editSession) inputReader() {
	buf := make([]byte, 1)
	for {
		n, err := s.ch.Read(buf)
		if n > 0 {
			select {
			case s.rawIn <- buf[0]:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.closeDone()
			return
		}
	}
}

func (s *editSession) closeDone() {
	s.once.Do(func() { close(s.done) })
}

// GetByte implements linenoise.ByteSource: never blocks.
func (s *editSession) GetByte() (byte, bool) {
	select {
	case b := <-s.rawIn:
		return b, true
	default:
		return 0, false
	}
}

// WriteBytes implements linenoise.ByteSink.
func (s *editSession) WriteBytes(p []byte) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.ch.Write(p)
}

func (s *editSession) complete(buf []byte, out *linenoise.Completions) {
	prefix := string(buf)
	for _, c := range commandSet {
		if strings.HasPrefix(c, prefix) {
			out.AddCompletion(c)
		}
	}
}

func (s *editSession) run() {
	s.write("linenoise sshd demo. Type 'help' for commands.\r\n")
	for {
		res := s.ed.Step(s.buf[:], "linenoise> ")
		switch res.Kind {
		case linenoise.NeedMore:
			select {
			case <-s.done:
				return
			default:
			}
			continue
		case linenoise.Committed:
			line := string(s.buf[:res.N])
			s.write("\r\n")
			s.slog.Logf("CMD: %s", line)
			if line != "" {
				s.hist.Add(line)
			}
			if !s.dispatch(line) {
				s.hist.Save(s.histPath) //nolint:errcheck
				return
			}
		case linenoise.Eof, linenoise.Interrupted:
			s.write("\r\n")
			s.hist.Save(s.histPath) //nolint:errcheck
			return
		case linenoise.Error:
			s.slog.Logf("ERROR: %v", res.Err)
			return
		}
	}
}

// dispatch runs one committed line and returns false when the session
// should end.
func (s *editSession) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "quit", "exit":
		s.write("bye\r\n")
		return false
	case "clear":
		s.ed.ClearScreen()
	case "whoami":
		s.write("linenoise\r\n")
	case "history":
		for i := s.hist.Len() - 1; i >= 0; i-- {
			s.write(s.hist.Get(i) + "\r\n")
		}
	case "echo":
		s.write(strings.Join(fields[1:], " ") + "\r\n")
	case "help":
		names := append([]string(nil), commandSet...)
		sort.Strings(names)
		s.write(strings.Join(names, "  ") + "\r\n")
	default:
		s.write("unknown command: " + fields[0] + "\r\n")
	}
	return true
}

func (s *editSession) write(str string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.ch.Write([]byte(str)) //nolint:errcheck
}
