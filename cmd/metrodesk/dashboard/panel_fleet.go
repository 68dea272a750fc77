package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/format"
	"metrodesk/internal/portal"
)

// fleetPanel shows the live roster. The summary cards are recomputed from
// the roster on every render so the counts can never drift from the rows.
type fleetPanel struct {
	roster  []portal.TrainRecord
	loading bool
	loaded  bool
}

func newFleetPanel() fleetPanel {
	return fleetPanel{loading: true}
}

func (p *fleetPanel) receive(roster []portal.TrainRecord) {
	p.loading = false
	p.loaded = true
	p.roster = roster
}

func statusLabel(s portal.TrainStatus) string {
	switch s {
	case portal.StatusReady:
		return "Ready"
	case portal.StatusMaintenance:
		return "Maintenance"
	case portal.StatusSafety:
		return "Safety Alert"
	default:
		return string(s)
	}
}

func statusColor(s portal.TrainStatus) lipgloss.Color {
	switch s {
	case portal.StatusReady:
		return ui.StatusReady
	case portal.StatusMaintenance:
		return ui.StatusMaintenance
	default:
		return ui.StatusAlert
	}
}

func (m Model) viewFleet() string {
	var sections []string
	sections = append(sections, m.styles.Title.Render("Fleet Status"))

	if m.fleet.loading {
		sections = append(sections,
			m.spinner.View()+m.styles.Muted.Render(" Loading fleet status..."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if !m.fleet.loaded {
		sections = append(sections,
			m.styles.Error.Render("Could not load fleet status."),
			m.styles.Muted.Render("Press r to retry."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	summary := portal.SummarizeFleet(m.fleet.roster)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryCard("Ready", summary.Ready, ui.StatusReady),
		" ",
		m.summaryCard("Maintenance", summary.Maintenance, ui.StatusMaintenance),
		" ",
		m.summaryCard("Safety Alerts", summary.Safety, ui.StatusAlert),
	)
	sections = append(sections, cards, "")

	table := ui.NewSimpleTable("", []string{"Train", "Status", "Location", "Last Inspection", "Next Maintenance"})
	for _, t := range m.fleet.roster {
		table.AddRow(
			fmt.Sprintf("%s %s", t.ID, t.Name),
			statusLabel(t.Status),
			t.Location,
			format.Date(t.LastInspection),
			format.Date(t.NextMaintenance),
		)
	}
	sections = append(sections, table.View(m.styles))

	var issues []string
	for _, t := range m.fleet.roster {
		if len(t.Issues) == 0 {
			continue
		}
		badge := ui.StatusStyle(statusColor(t.Status)).Render(t.ID)
		issues = append(issues, badge+" "+m.styles.Body.Render(strings.Join(t.Issues, ", ")))
	}
	if len(issues) > 0 {
		sections = append(sections,
			m.styles.Bold.Render("Open issues"),
			strings.Join(issues, "\n"))
	}

	sections = append(sections, "", m.styles.Muted.Render("r refresh"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) summaryCard(label string, count int, color lipgloss.Color) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", count)),
		m.styles.Muted.Render(label),
	)
	return m.styles.Card.Render(body)
}
