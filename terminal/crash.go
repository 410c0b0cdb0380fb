package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Reset sequences written when tcell cannot finalize the screen
var emergencySequences = [][]byte{
	[]byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l"), // mouse tracking off
	[]byte("\x1b[?25h"),   // cursor show
	[]byte("\x1b[?1049l"), // leave alt screen
	[]byte("\x1b[0m"),     // SGR reset
	[]byte("\x1b[?7h"),    // autowrap on
}

var (
	activeMu     sync.Mutex
	activeScreen tcell.Screen
)

// setActive registers the screen finalized by HandleCrash
func setActive(s tcell.Screen) {
	activeMu.Lock()
	activeScreen = s
	activeMu.Unlock()
}

// takeActive returns and clears the registered screen so it is finalized once
func takeActive() tcell.Screen {
	activeMu.Lock()
	defer activeMu.Unlock()
	s := activeScreen
	activeScreen = nil
	return s
}

// EmergencyReset attempts to restore the terminal to a sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range emergencySequences {
		w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// HandleCrash finalizes the screen, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := takeActive(); s != nil {
		s.Fini()
	}
	EmergencyReset(os.Stdout)

	os.Stdout.Sync()
	// \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
