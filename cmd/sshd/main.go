// Command sshd is a sample host that drives a linenoise.Editor over an
// SSH channel per session: no blocking read is available on a network
// channel, which is exactly the contract Step's polled byte source was
// designed for.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/patrislav1/linenoise/internal/elog"
)

func main() {
	host := flag.String("host", "0.0.0.0", "address to bind")
	port := flag.Int("port", 2222, "port to listen on")
	conns := flag.Int("max-conns", 512, "maximum concurrent connections")
	dataDir := flag.String("data-dir", "./sshd-data", "directory for host key, history and session logs")
	flag.Parse()

	hostKeyFile := filepath.Join(*dataDir, "host_key.pem")
	histDir := filepath.Join(*dataDir, "history")
	sessionLogDir := filepath.Join(*dataDir, "sessions")
	logPath := filepath.Join(*dataDir, "sshd.log")

	if err := elog.Init(logPath); err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	if err := runServer(addr, hostKeyFile, histDir, sessionLogDir, *conns); err != nil {
		log.Fatal(err)
	}
}
