package terminal

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrNotTTY is returned when stdout is not a terminal
var ErrNotTTY = errors.New("stdout is not a terminal")

// IsTTY reports whether stdout is attached to a terminal
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Open creates and initializes a tcell screen with mouse reporting enabled.
// The screen is registered for crash cleanup until Close.
func Open(mode ColorMode) (tcell.Screen, error) {
	if !IsTTY() {
		return nil, ErrNotTTY
	}

	// tcell reads this before probing terminfo
	if mode == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	Prepare(screen)
	return screen, nil
}

// Prepare configures an initialized screen for play and registers it for crash cleanup
func Prepare(screen tcell.Screen) {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	setActive(screen)
}

// Close unregisters and finalizes the screen
func Close(screen tcell.Screen) {
	takeActive()
	screen.Fini()
}
