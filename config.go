package linenoise

import "time"

// Runtime-overridable defaults, as package-level vars rather than
// constants so a host can tune them before constructing an Editor.
var (
	// DefaultHistoryMaxLen is the capacity a zero-value History adopts on
	// its first Add or Load; NewHistory takes its capacity as an argument.
	DefaultHistoryMaxLen = 100

	// MaxLineLen is the hard cap on a buffer's logical length, independent
	// of whatever capacity the host's buf slice happens to have.
	MaxLineLen = 4096

	// ProbeTimeout is the nominal deadline for a Device Status Report
	// reply. The engine does not read it: the Terminal Prober gives up only
	// when Host.Timer reports Elapsed, and the default Timer never elapses.
	ProbeTimeout = 100 * time.Millisecond

	// DefaultCols is the column width assumed when probing fails.
	DefaultCols = 80
)
