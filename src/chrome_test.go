package src

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opdeck/opdeck/src/logging"
)

// fakeWindow records commands and lets tests script failures.
type fakeWindow struct {
	maximized bool
	calls     []string
	fail      map[string]error
	resized   func()
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{fail: map[string]error{}}
}

func (f *fakeWindow) call(op string) error {
	f.calls = append(f.calls, op)
	return f.fail[op]
}

func (f *fakeWindow) Minimize() error { return f.call("minimize") }

func (f *fakeWindow) Maximize() error {
	if err := f.call("maximize"); err != nil {
		return err
	}
	f.maximized = true
	return nil
}

func (f *fakeWindow) Unmaximize() error {
	if err := f.call("unmaximize"); err != nil {
		return err
	}
	f.maximized = false
	return nil
}

func (f *fakeWindow) IsMaximized() (bool, error) {
	if err := f.call("isMaximized"); err != nil {
		return false, err
	}
	return f.maximized, nil
}

func (f *fakeWindow) Close() error { return f.call("close") }

func (f *fakeWindow) OnResized(fn func()) (cancel func()) {
	f.resized = fn
	return func() { f.resized = nil }
}

func TestToggleMaximizeQueriesThenToggles(t *testing.T) {
	win := newFakeWindow()
	c := NewChrome(win, logging.NewNop())

	c.ToggleMaximize()
	assert.Equal(t, []string{"isMaximized", "maximize"}, win.calls)
	assert.True(t, win.maximized)

	win.calls = nil
	c.ToggleMaximize()
	assert.Equal(t, []string{"isMaximized", "unmaximize"}, win.calls)
	assert.False(t, win.maximized)
}

func TestCommandFailuresAreSwallowed(t *testing.T) {
	win := newFakeWindow()
	win.fail["minimize"] = errors.New("wm gone")
	win.fail["close"] = errors.New("wm gone")
	c := NewChrome(win, logging.NewNop())

	// Must not panic or surface anything.
	c.Minimize()
	c.Close()
}

func TestToggleMaximizeAbortsWhenQueryFails(t *testing.T) {
	win := newFakeWindow()
	win.fail["isMaximized"] = errors.New("no reply")
	c := NewChrome(win, logging.NewNop())

	c.ToggleMaximize()
	assert.Equal(t, []string{"isMaximized"}, win.calls)
}

func TestQueryMaximizedSequenceIsMonotonic(t *testing.T) {
	win := newFakeWindow()
	c := NewChrome(win, logging.NewNop())

	q1 := c.QueryMaximized()
	q2 := c.QueryMaximized()
	require.True(t, q1.OK)
	require.True(t, q2.OK)
	assert.Greater(t, q2.Seq, q1.Seq)
}

func TestQueryMaximizedFailureNotOK(t *testing.T) {
	win := newFakeWindow()
	win.fail["isMaximized"] = errors.New("no reply")
	c := NewChrome(win, logging.NewNop())

	q := c.QueryMaximized()
	assert.False(t, q.OK)
	assert.NotZero(t, q.Seq)
}

func TestOnResizedSubscription(t *testing.T) {
	win := newFakeWindow()
	c := NewChrome(win, logging.NewNop())

	fired := 0
	cancel := c.OnResized(func() { fired++ })
	require.NotNil(t, win.resized)
	win.resized()
	assert.Equal(t, 1, fired)

	cancel()
	assert.Nil(t, win.resized)
}
