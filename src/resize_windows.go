//go:build windows

package src

import "os"

// Windows has no SIGWINCH; resize notifications come only through the TUI
// event loop.
func resizeSignals() []os.Signal {
	return nil
}
