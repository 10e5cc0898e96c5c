package src

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
)

// xterm window manipulation sequences (XTWINOPS).
const (
	seqIconify  = "\x1b[2t"
	seqMaximize = "\x1b[9;1t"
	seqRestore  = "\x1b[9;0t"
)

// TermWindow implements WindowAPI against an xterm-compatible terminal using
// window-ops control sequences. The terminal does not report maximize state
// back without a raw-mode read, so IsMaximized mirrors the last commanded
// state instead of querying the emulator.
type TermWindow struct {
	mu        sync.Mutex
	out       io.Writer
	maximized bool
	onClose   func()
}

// NewTermWindow creates a terminal-backed window API writing control
// sequences to out. Terminals cannot close their own window portably, so
// Close invokes the host-provided onClose hook (typically quitting the
// program).
func NewTermWindow(out io.Writer, onClose func()) *TermWindow {
	if out == nil {
		out = os.Stdout
	}
	return &TermWindow{out: out, onClose: onClose}
}

func (t *TermWindow) Minimize() error {
	return t.write(seqIconify)
}

func (t *TermWindow) Maximize() error {
	if err := t.write(seqMaximize); err != nil {
		return err
	}
	t.mu.Lock()
	t.maximized = true
	t.mu.Unlock()
	return nil
}

func (t *TermWindow) Unmaximize() error {
	if err := t.write(seqRestore); err != nil {
		return err
	}
	t.mu.Lock()
	t.maximized = false
	t.mu.Unlock()
	return nil
}

func (t *TermWindow) IsMaximized() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maximized, nil
}

func (t *TermWindow) Close() error {
	if t.onClose == nil {
		return fmt.Errorf("termwindow: no close hook configured")
	}
	t.onClose()
	return nil
}

// OnResized subscribes to the platform resize signal (SIGWINCH on unix). On
// platforms without one the subscription is a no-op.
func (t *TermWindow) OnResized(fn func()) (cancel func()) {
	sigs := resizeSignals()
	if len(sigs) == 0 {
		return func() {}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}

func (t *TermWindow) write(seq string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.out, seq)
	return err
}
