package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/format"
	"metrodesk/internal/portal"
)

// searchPanel runs document searches. hasSearched distinguishes the
// pristine panel from an executed query with zero hits; only the latter
// shows the empty-results notice.
type searchPanel struct {
	input       textinput.Model
	results     []portal.SearchResult
	searching   bool
	hasSearched bool
	lastQuery   string
}

func newSearchPanel(styles ui.Styles) searchPanel {
	input := textinput.New()
	input.Placeholder = "Search documents, reports, manuals..."
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.CharLimit = 200
	input.Width = 48
	input.Focus()
	return searchPanel{input: input}
}

// submit starts a search for the current input. Empty queries and
// re-submission while one is running are no-ops.
func (p *searchPanel) submit() (string, bool) {
	query := strings.TrimSpace(p.input.Value())
	if query == "" || p.searching {
		return "", false
	}
	p.searching = true
	p.hasSearched = true
	p.lastQuery = query
	return query, true
}

func (p searchPanel) update(msg tea.Msg) (searchPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// relevanceStyle maps a score to the tier badge color: strong matches are
// green, moderate amber, weak muted.
func relevanceStyle(styles ui.Styles, score float64) lipgloss.Style {
	switch {
	case score >= 0.9:
		return ui.StatusStyle(ui.StatusReady)
	case score >= 0.7:
		return ui.StatusStyle(ui.StatusMaintenance)
	default:
		return styles.Muted
	}
}

func (m Model) viewSearch() string {
	var sections []string
	sections = append(sections, m.styles.Title.Render("Document Search"))
	sections = append(sections, m.search.input.View())
	sections = append(sections, m.styles.Muted.Render("enter search"), "")

	switch {
	case m.search.searching:
		sections = append(sections,
			m.spinner.View()+m.styles.Muted.Render(" Searching through documents..."))

	case m.search.hasSearched && len(m.search.results) == 0:
		sections = append(sections,
			m.styles.Muted.Render(fmt.Sprintf("No results found for %q.", m.search.lastQuery)))

	case m.search.hasSearched:
		n := len(m.search.results)
		sections = append(sections, m.styles.Subtitle.Render(
			fmt.Sprintf("Found %d %s for %q", n, format.Plural(n, "result"), m.search.lastQuery)), "")
		for _, r := range m.search.results {
			badge := relevanceStyle(m.styles, r.RelevanceScore).Render(format.Percent(r.RelevanceScore))
			card := lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Bold.Render(r.Title)+" "+badge,
				m.styles.Body.Render(r.Content),
				m.styles.Muted.Render(fmt.Sprintf("%s  •  %s  •  page %d  •  %s",
					r.DocumentName, r.DocumentType, r.PageNumber, format.Date(r.LastModified))),
			)
			sections = append(sections, m.styles.Card.Render(card))
		}

	default:
		sections = append(sections,
			m.styles.Muted.Render("Search across safety bulletins, inspection reports and manuals."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
