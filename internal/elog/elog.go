// Package elog is the ambient logging layer of the sshd command: a single
// process-wide *log.Logger fanned out to a file and stdout, plus a
// per-connection Session logger for transcripts.
package elog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	app   *log.Logger
	appMu sync.Mutex
)

// Init opens (creating if needed) logPath and points the package logger at
// it and os.Stdout. Safe to call once at process startup.
func Init(logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	appMu.Lock()
	app = log.New(io.MultiWriter(f, os.Stdout), "", log.LstdFlags)
	appMu.Unlock()
	return nil
}

// Event writes one line to the process logger in "LEVEL  SOURCE  MESSAGE"
// form. A no-op before Init, so callers need not special-case tests.
func Event(level, src, msg string) {
	appMu.Lock()
	l := app
	appMu.Unlock()
	if l != nil {
		l.Printf("%-12s %-22s %s", level, src, msg)
	}
}

// Session is a per-connection transcript logger, one file per SSH
// connection, timestamped per line.
type Session struct {
	f  *os.File
	mu sync.Mutex
}

// NewSession opens dir/<safeID>_<timestamp>.log for a new session
// transcript. id is typically a remote address or session UUID; any ':'
// or '.' in it is replaced with '_' so it is safe as a filename component.
func NewSession(dir, id string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	ts := time.Now().UTC().Format("20060102_150405")
	safe := make([]byte, 0, len(id))
	for _, c := range id {
		if c == ':' || c == '.' {
			safe = append(safe, '_')
		} else {
			safe = append(safe, byte(c))
		}
	}
	path := filepath.Join(dir, string(safe)+"_"+ts+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	return &Session{f: f}, nil
}

func (s *Session) Logf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	fmt.Fprintf(s.f, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

func (s *Session) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
