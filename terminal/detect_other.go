//go:build !linux

package terminal

// DetectColorMode assumes true color where the environment cannot be queried
func DetectColorMode() ColorMode {
	return ColorModeTrueColor
}

// resetTerminalMode is a no-op without termios
func resetTerminalMode() {}
