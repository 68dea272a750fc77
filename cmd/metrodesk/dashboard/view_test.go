package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_NotReady(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.ready = false

	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("pre-size view = %q", got)
	}
}

func TestView_LoginScreen(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	out := m.View()
	for _, want := range []string{"Metro Rail Document Intelligence", "KMRL Engineering Portal", "Employee ID", "Password"} {
		if !strings.Contains(out, want) {
			t.Errorf("login view missing %q", want)
		}
	}
}

func TestView_DashboardShowsActiveTabAndUser(t *testing.T) {
	t.Parallel()
	m := loginAs(t, NewTestModel(), "eng1")

	out := m.View()
	for _, want := range []string{"Welcome, eng1", "Chat Assistant", "Fleet Status", "Documents", "Search", "System Overview"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}

func TestView_FleetPanel(t *testing.T) {
	t.Parallel()
	m := loginAs(t, NewTestModel(), "eng1")
	m = press(m, tea.KeyMsg{Type: tea.KeyF2})

	out := m.View()
	for _, want := range []string{"MR-101", "Muttom Depot", "Safety Alerts", "Open issues"} {
		if !strings.Contains(out, want) {
			t.Errorf("fleet view missing %q", want)
		}
	}
}

func TestView_DocumentsEmptyState(t *testing.T) {
	t.Parallel()
	m := loginAs(t, NewTestModel(), "eng1")
	m = press(m, tea.KeyMsg{Type: tea.KeyF3})

	if out := m.View(); !strings.Contains(out, "No documents uploaded yet") {
		t.Error("documents view missing empty state")
	}
}

func TestView_SearchPristineVsSearched(t *testing.T) {
	t.Parallel()
	m := loginAs(t, NewTestModel(), "eng1")
	m = press(m, tea.KeyMsg{Type: tea.KeyF4})

	if out := m.View(); strings.Contains(out, "Found ") {
		t.Error("pristine search panel already shows a result count")
	}

	m = typeText(m, "safety checks")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	if !strings.Contains(out, "Safety Protocol Update") {
		t.Error("search view missing top result")
	}
	if !strings.Contains(out, "95% match") {
		t.Error("search view missing relevance badge")
	}
}
