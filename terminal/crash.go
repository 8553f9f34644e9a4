package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Escape sequences restoring a usable terminal after a crash
const (
	csiMouseOff      = "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l"
	csiCursorShow    = "\x1b[?25h"
	csiAltScreenExit = "\x1b[?1049l"
	csiSGR0          = "\x1b[0m"
)

// EmergencyReset writes the sequences that leave raw mode artifacts behind
// Used when the screen cannot be finalized through tcell
func EmergencyReset(w io.Writer) {
	io.WriteString(w, csiMouseOff+csiCursorShow+csiAltScreenExit+csiSGR0)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// exit is replaced in tests
var exit = os.Exit

// Recover is deferred at the top of every goroutine that owns the terminal
// It resets the terminal, prints the panic with its stack and exits
func Recover(where string) {
	r := recover()
	if r == nil {
		return
	}
	ReportCrash(os.Stderr, where, r, debug.Stack())
	exit(1)
}

// ReportCrash resets the terminal and prints the panic value and stack to w
func ReportCrash(w io.Writer, where string, r any, stack []byte) {
	EmergencyReset(os.Stdout)
	// \r\n keeps the output readable if raw mode survived the reset
	fmt.Fprintf(w, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}
