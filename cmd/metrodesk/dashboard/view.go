package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrodesk/internal/format"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.session == nil {
		return m.viewLogin()
	}
	if m.pickerOpen {
		return m.viewPicker()
	}
	return m.viewDashboard()
}

func (m Model) viewLogin() string {
	status := m.styles.Muted.Render("enter sign in  •  tab switch field  •  ctrl+c quit")
	if m.loggingIn {
		status = m.spinner.View() + m.styles.Muted.Render(" Signing in...")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Metro Rail Document Intelligence"),
		m.styles.Subtitle.Render("KMRL Engineering Portal"),
		"",
		m.styles.Bold.Render("Employee ID"),
		m.login.username.View(),
		"",
		m.styles.Bold.Render("Password"),
		m.login.password.View(),
		"",
		status,
	)
	card := m.styles.Card.Padding(1, 3).Render(form)
	if m.toast != nil {
		card = lipgloss.JoinVertical(lipgloss.Center, card, "", m.renderToast())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) viewPicker() string {
	title := m.styles.Header.Render(" Select a PDF file to upload ")
	hint := m.styles.Muted.Render("enter select  •  esc cancel")
	content := m.styles.Content.Render(m.picker.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, hint)
}

func (m Model) viewDashboard() string {
	header := m.viewHeader()
	sidebar := m.styles.Sidebar.Render(m.viewSidebar())

	var panel string
	switch m.tab {
	case TabChat:
		panel = m.viewChat()
	case TabFleet:
		panel = m.viewFleet()
	case TabDocuments:
		panel = m.viewDocuments()
	case TabSearch:
		panel = m.viewSearch()
	}
	content := m.styles.Content.Width(m.contentWidth() + 4).Render(panel)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) viewHeader() string {
	title := "Metro Rail Document Intelligence"
	welcome := ""
	if m.session != nil && m.session.Username != "" {
		welcome = "Welcome, " + m.session.Username
	}
	pad := m.width - lipgloss.Width(title) - lipgloss.Width(welcome) - 4
	if pad < 1 {
		pad = 1
	}
	return m.styles.Header.Width(m.width).Render(title + strings.Repeat(" ", pad) + welcome)
}

func (m Model) viewSidebar() string {
	var sections []string

	var nav []string
	for _, t := range tabs {
		style := m.styles.TabInactive
		if t == m.tab {
			style = m.styles.TabActive
		}
		nav = append(nav, style.Render(t.Label())+" "+m.styles.Muted.Render(t.Hotkey()))
	}
	sections = append(sections, m.styles.Bold.Render("Navigation"), strings.Join(nav, "\n"), "")

	uploadLines := []string{
		m.styles.Bold.Render("Upload Documents"),
		m.styles.Muted.Render("ctrl+o browse  •  ctrl+p type paths"),
	}
	if m.sidebarFocused {
		uploadLines = append(uploadLines, m.sidebarUpload.input.View())
	}
	if m.sidebarUpload.busy {
		uploadLines = append(uploadLines,
			m.spinner.View()+m.styles.Muted.Render(" Processing documents..."))
	}
	sections = append(sections, strings.Join(uploadLines, "\n"), "")

	overview := []string{m.styles.Bold.Render("System Overview")}
	if m.statsLoaded {
		overview = append(overview,
			m.overviewLine("Documents", m.stats.Documents),
			m.overviewLine("Total Trains", m.stats.Trains.Total),
			m.overviewLine("Ready", m.stats.Trains.Ready),
			m.overviewLine("Maintenance", m.stats.Trains.Maintenance),
			m.overviewLine("Safety Alerts", m.stats.Trains.Safety),
		)
	} else {
		overview = append(overview, m.styles.Muted.Render("Loading..."))
	}
	n := m.docs.Len()
	overview = append(overview, "", m.styles.Muted.Render(
		fmt.Sprintf("This session: %d %s", n, format.Plural(n, "upload"))))
	sections = append(sections, strings.Join(overview, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) overviewLine(label string, value int) string {
	return m.styles.Muted.Render(label+": ") + m.styles.Bold.Render(fmt.Sprintf("%d", value))
}

func (m Model) viewFooter() string {
	hints := m.styles.Muted.Render("tab next panel  •  f1-f4 jump  •  ctrl+l logout  •  ctrl+c quit")
	if m.toast == nil {
		return hints
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderToast(), hints)
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	style := m.styles.Success
	if m.toast.kind == toastError {
		style = m.styles.Error
	}
	return style.Render(m.toast.text)
}
