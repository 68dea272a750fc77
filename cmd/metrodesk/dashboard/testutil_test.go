// Test helpers for driving the dashboard model without a running program.
package dashboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/portal"
)

var (
	errUploadDown = errors.New("upload service unavailable")
	errChatDown   = errors.New("chat service unavailable")
)

// TestModelOption configures a test model.
type TestModelOption func(*Model)

// NewTestModel creates a dashboard model wired to a zero-latency simulated
// backend, sized and marked ready so views render.
func NewTestModel(opts ...TestModelOption) Model {
	m := New(Config{
		Client:    portal.NewSimulated(portal.WithLatency(0)),
		Styles:    ui.NewStyles(ui.DarkTheme()),
		Logger:    zap.NewNop(),
		UploadDir: os.TempDir(),
	})
	m.width = 120
	m.height = 40
	m.ready = true
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithClient swaps the backend client.
func WithClient(c portal.Client) TestModelOption {
	return func(m *Model) {
		m.client = c
	}
}

// WithSize sets the terminal dimensions.
func WithSize(width, height int) TestModelOption {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// collect runs a command tree and gathers the messages it produces.
// Commands that do not complete promptly (toast expiry timers, cursor
// blinks) are dropped; backend calls run at zero latency so they always
// land.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		return nil
	}
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// step feeds every message produced by cmd back through Update, following
// the commands those updates return in turn. Spinner frames are skipped so
// the loop terminates.
func step(m Model, cmd tea.Cmd) Model {
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		next, followup := m.Update(msg)
		m = step(next.(Model), followup)
	}
	return m
}

// press applies a key and chases the resulting commands.
func press(m Model, key tea.KeyMsg) Model {
	next, cmd := m.Update(key)
	return step(next.(Model), cmd)
}

// typeText feeds text into whichever input currently has focus.
func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

// loginAs types a username into the fresh login form and submits it,
// landing the model on the chat tab.
func loginAs(t *testing.T, m Model, user string) Model {
	t.Helper()
	m = typeText(m, user)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session == nil {
		t.Fatalf("login as %q did not produce a session", user)
	}
	return m
}

// writeTempPDF creates a file of the given size and returns its path.
func writeTempPDF(t *testing.T, name string, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
