// Package linenoise implements a non-blocking, re-entrant single-line
// editor engine for interactive terminals.
//
// The engine consumes one byte of input per Step call, paints an edited
// line over a byte-oriented sink, and reports a committed line, EOF, or
// interrupt to the caller. It never blocks on I/O itself: a host supplies
// bytes through the Host capability record (see Host, ByteSource) and
// drives Step in a loop, interleaving whatever else it needs to do.
//
// This package has no opinion about where bytes come from. cmd/demo
// drives it against a local raw terminal; cmd/sshd drives one Editor per
// accepted SSH channel.
package linenoise
