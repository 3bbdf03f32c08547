package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/ssh"

	"github.com/patrislav1/linenoise/internal/elog"
)

var hostKey ssh.Signer

// loadOrGenHostKey reads an RSA host key from path, generating and
// persisting a new one if it is missing or unparseable.
func loadOrGenHostKey(path string) (ssh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if block, _ := pem.Decode(data); block != nil {
			if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
				return ssh.NewSignerFromKey(key)
			}
		}
	}
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := pem.Encode(f, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}); err != nil {
		return nil, err
	}
	elog.Event("INFO", path, "generated new host key")
	return ssh.NewSignerFromKey(key)
}

func makeSSHConfig() *ssh.ServerConfig {
	cfg := &ssh.ServerConfig{
		ServerVersion: "SSH-2.0-linenoise-demo",
		NoClientAuth:  true,
	}
	cfg.AddHostKey(hostKey)
	return cfg
}

func handleConn(conn net.Conn, histDir, sessionLogDir string) {
	defer conn.Close()

	cfg := makeSSHConfig()
	sshConn, chans, reqs, err := ssh.NewServerConn(conn, cfg)
	if err != nil {
		return
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	id := uuid.NewString()
	ip := sshConn.RemoteAddr().String()
	elog.Event("CONNECT", ip, "session="+id)

	slog, err := elog.NewSession(sessionLogDir, id)
	if err != nil {
		elog.Event("ERROR", ip, "session log: "+err.Error())
		return
	}
	defer slog.Close()
	slog.Logf("connect ip=%s", ip)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		ch, chReqs, err := newChan.Accept()
		if err != nil {
			break
		}
		handleSession(ch, chReqs, id, histDir, slog)
	}
	elog.Event("DISCONNECT", ip, "session="+id)
}

func handleSession(ch ssh.Channel, reqs <-chan *ssh.Request, sessionID, histDir string, slog *elog.Session) {
	defer ch.Close()

	for req := range reqs {
		switch req.Type {
		case "pty-req", "env":
			req.Reply(true, nil)
		case "shell":
			req.Reply(true, nil)
			sess := newEditSession(ch, sessionID, histDir, slog)
			sess.run()
			return
		case "window-change":
			req.Reply(false, nil)
		default:
			if req.WantReply {
				req.Reply(false, nil)
			}
		}
	}
}

func runServer(addr, hostKeyFile, histDir, sessionLogDir string, maxConns int) error {
	var err error
	hostKey, err = loadOrGenHostKey(hostKeyFile)
	if err != nil {
		return fmt.Errorf("host key: %w", err)
	}
	if err := os.MkdirAll(histDir, 0o755); err != nil {
		return fmt.Errorf("history dir: %w", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	defer ln.Close()

	elog.Event("START", addr, fmt.Sprintf("histdir=%s maxconns=%d", histDir, maxConns))

	sem := make(chan struct{}, maxConns)
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		select {
		case sem <- struct{}{}:
			go func() {
				defer func() { <-sem }()
				handleConn(conn, histDir, sessionLogDir)
			}()
		default:
			elog.Event("REJECT", conn.RemoteAddr().String(), "connection limit reached")
			conn.Close()
		}
	}
}
