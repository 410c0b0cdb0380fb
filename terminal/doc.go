// Package terminal hosts the game in a tcell screen.
//
// It opens the screen (refusing non-TTY output), translates mouse and key events
// into engine events on a poll goroutine, and restores the terminal on exit or
// panic. Drawing goes through render.TerminalRenderer from the driver goroutine.
package terminal
