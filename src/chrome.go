package src

import (
	"sync/atomic"

	"github.com/opdeck/opdeck/src/logging"
)

// WindowAPI is the external window-management surface the chrome controller
// drives. Any implementation satisfying it is interchangeable; tests use a
// fake and the shell ships a terminal-backed one.
type WindowAPI interface {
	Minimize() error
	Maximize() error
	Unmaximize() error
	IsMaximized() (bool, error)
	Close() error
	// OnResized registers a callback for external resize notifications and
	// returns a cancel func that releases the subscription.
	OnResized(fn func()) (cancel func())
}

// MaximizeQuery is the resolution of one async maximize-state query. Seq is
// monotonic per controller so late-resolving stale queries can be discarded
// instead of overwriting newer state.
type MaximizeQuery struct {
	Seq       uint64
	Maximized bool
	OK        bool
}

// Chrome issues window commands and mirrors maximize state. Commands are
// fire-and-forget: failures go to the operator log and are swallowed, never
// surfaced to the user. No mutex guards overlapping commands; the target
// operations are idempotent and a double-click is harmless.
type Chrome struct {
	api WindowAPI
	log *logging.Logger
	seq atomic.Uint64
}

// NewChrome creates a chrome controller over a window API.
func NewChrome(api WindowAPI, log *logging.Logger) *Chrome {
	if log == nil {
		log = logging.NewNop()
	}
	return &Chrome{api: api, log: log}
}

// Minimize iconifies the window.
func (c *Chrome) Minimize() {
	if err := c.api.Minimize(); err != nil {
		c.log.Error("window command failed", "op", "minimize", "err", err)
	}
}

// ToggleMaximize queries the current maximized state, then issues the
// opposite command.
func (c *Chrome) ToggleMaximize() {
	maximized, err := c.api.IsMaximized()
	if err != nil {
		c.log.Error("window command failed", "op", "isMaximized", "err", err)
		return
	}
	if maximized {
		err = c.api.Unmaximize()
	} else {
		err = c.api.Maximize()
	}
	if err != nil {
		c.log.Error("window command failed", "op", "toggleMaximize", "err", err)
	}
}

// Close asks the window manager to close the window.
func (c *Chrome) Close() {
	if err := c.api.Close(); err != nil {
		c.log.Error("window command failed", "op", "close", "err", err)
	}
}

// QueryMaximized resolves the current maximized state, tagged with a
// monotonic sequence number taken before the query is issued. Redundant
// queries from a resize burst are acceptable: the operation is idempotent and
// side-effect-free.
func (c *Chrome) QueryMaximized() MaximizeQuery {
	seq := c.seq.Add(1)
	maximized, err := c.api.IsMaximized()
	if err != nil {
		c.log.Error("window command failed", "op", "isMaximized", "err", err)
		return MaximizeQuery{Seq: seq}
	}
	return MaximizeQuery{Seq: seq, Maximized: maximized, OK: true}
}

// OnResized subscribes to external resize notifications.
func (c *Chrome) OnResized(fn func()) (cancel func()) {
	return c.api.OnResized(fn)
}
