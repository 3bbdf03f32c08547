package linenoise

// Key byte constants, named after the original C's KEY_ACTION enum.
const (
	keyNUL   byte = 0
	ctrlA    byte = 1
	ctrlB    byte = 2
	ctrlC    byte = 3
	ctrlD    byte = 4
	ctrlE    byte = 5
	ctrlF    byte = 6
	ctrlH    byte = 8
	keyTab   byte = 9
	ctrlK    byte = 11
	ctrlL    byte = 12
	keyEnter byte = 13
	ctrlN    byte = 14
	ctrlP    byte = 16
	ctrlT    byte = 20
	ctrlU    byte = 21
	ctrlW    byte = 23
	keyEsc   byte = 27
	keyDEL   byte = 127
)

const (
	promptHdr = "\x1b[1;37;49m"
	promptTlr = "\x1b[0m"
)

// historyPrev / historyNext direction constants.
const (
	historyNext = 0
	historyPrev = 1
)
