package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.chat.resize(m.contentWidth(), m.contentHeight())
		if h := msg.Height - 10; h > 5 {
			m.picker.Height = h
		}
		if renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(m.contentWidth()),
		); err == nil {
			m.renderer = renderer
		}
		if m.session != nil && m.tab == TabChat {
			m.refreshTranscript()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginDoneMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.logger.Error("login failed", zap.Error(msg.err))
			cmd := m.showToast(toastError, "Login failed. Please try again.")
			return m, cmd
		}
		cmd := m.enterDashboard(msg.session)
		return m, cmd

	case statsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("system stats unavailable", zap.Error(msg.err))
			return m, nil
		}
		m.stats = msg.stats
		m.statsLoaded = true
		return m, nil

	case uploadDoneMsg:
		cmd := m.finishUpload(msg)
		return m, cmd

	case chatReplyMsg:
		if msg.epoch != m.panelEpoch || m.tab != TabChat {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("chat request failed", zap.Error(msg.err))
			m.chat.receive("Sorry, I encountered an error. Please try again.")
		} else {
			m.chat.receive(msg.reply)
		}
		m.refreshTranscript()
		return m, nil

	case fleetLoadedMsg:
		if msg.epoch != m.panelEpoch || m.tab != TabFleet {
			return m, nil
		}
		if msg.err != nil {
			m.fleet.loading = false
			m.logger.Error("fleet status failed", zap.Error(msg.err))
			cmd := m.showToast(toastError, "Could not load fleet status.")
			return m, cmd
		}
		m.fleet.receive(msg.roster)
		return m, nil

	case searchDoneMsg:
		if msg.epoch != m.panelEpoch || m.tab != TabSearch {
			return m, nil
		}
		m.search.searching = false
		if msg.err != nil {
			m.logger.Error("search failed", zap.Error(msg.err), zap.String("query", msg.query))
			cmd := m.showToast(toastError, "Search failed. Please try again.")
			return m, cmd
		}
		m.search.results = msg.results
		return m, nil

	case toastExpiredMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeMsg(msg)
}

// routeMsg forwards an unhandled message to whichever component is live:
// the file browser overlay, the login form, the sidebar path field, or the
// active panel. This is where cursor blinks and the browser's directory
// reads land.
func (m Model) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.pickerOpen {
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			src := m.pickerFor
			m.pickerOpen = false
			files, err := statFiles([]string{path})
			if err != nil {
				toastCmd := m.showToast(toastError, err.Error())
				return m, tea.Batch(cmd, toastCmd)
			}
			uploadCmd := m.startUpload(src, files)
			return m, tea.Batch(cmd, uploadCmd)
		}
		return m, cmd
	}

	if m.session == nil {
		m.login, cmd = m.login.update(msg)
		return m, cmd
	}

	if m.sidebarFocused {
		m.sidebarUpload, cmd = m.sidebarUpload.update(msg)
		return m, cmd
	}

	switch m.tab {
	case TabChat:
		m.chat, cmd = m.chat.update(msg)
	case TabDocuments:
		m.documents.upload, cmd = m.documents.upload.update(msg)
	case TabSearch:
		m.search, cmd = m.search.update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.session == nil {
		return m.handleLoginKey(msg)
	}

	if m.pickerOpen {
		if key == "esc" {
			m.pickerOpen = false
			return m, nil
		}
		return m.routeMsg(msg)
	}

	switch key {
	case "ctrl+l":
		m.logout()
		return m, textinput.Blink
	case "ctrl+o":
		cmd := m.openPicker(sourceSidebar)
		return m, cmd
	case "ctrl+p":
		m.sidebarFocused = !m.sidebarFocused
		if m.sidebarFocused {
			cmd := m.sidebarUpload.input.Focus()
			return m, cmd
		}
		m.sidebarUpload.input.Blur()
		return m, nil
	case "tab":
		cmd := m.selectTab(tabs[(int(m.tab)+1)%len(tabs)])
		return m, cmd
	case "shift+tab":
		cmd := m.selectTab(tabs[(int(m.tab)+len(tabs)-1)%len(tabs)])
		return m, cmd
	case "f1", "f2", "f3", "f4":
		cmd := m.selectTab(Tab(key[1] - '1'))
		return m, cmd
	}

	if m.sidebarFocused {
		switch key {
		case "enter":
			cmd := m.submitPaths(sourceSidebar)
			return m, cmd
		case "esc":
			m.sidebarFocused = false
			m.sidebarUpload.input.Blur()
			return m, nil
		}
		return m.routeMsg(msg)
	}

	switch m.tab {
	case TabChat:
		return m.handleChatKey(msg)
	case TabFleet:
		if key == "r" && !m.fleet.loading {
			m.fleet.loading = true
			return m, tea.Batch(m.fleetCmd(), m.spinner.Tick)
		}
		return m, nil
	case TabDocuments:
		switch key {
		case "enter":
			cmd := m.submitPaths(sourceDocuments)
			return m, cmd
		case "ctrl+b":
			cmd := m.openPicker(sourceDocuments)
			return m, cmd
		}
		return m.routeMsg(msg)
	case TabSearch:
		if key == "enter" {
			query, ok := m.search.submit()
			if !ok {
				return m, nil
			}
			return m, tea.Batch(m.searchCmd(query), m.spinner.Tick)
		}
		return m.routeMsg(msg)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.loggingIn {
			return m, nil
		}
		m.loggingIn = true
		return m, tea.Batch(m.loginCmd(m.login.credentials()), m.spinner.Tick)
	case "tab", "shift+tab", "up", "down":
		cmd := m.login.cycle()
		return m, cmd
	}
	return m.routeMsg(msg)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		cmd := m.sendChat(m.chat.input.Value())
		return m, cmd
	case "alt+1", "alt+2", "alt+3", "alt+4":
		cmd := m.sendChat(quickActions[key[len(key)-1]-'1'])
		return m, cmd
	}
	return m.routeMsg(msg)
}

// sendChat pushes a user turn into the transcript and issues the backend
// call. No-op on empty text or while a reply is pending.
func (m *Model) sendChat(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if !m.chat.send(text) {
		return nil
	}
	m.refreshTranscript()
	return tea.Batch(m.chatCmd(text), m.spinner.Tick)
}

// openPicker opens a fresh file browser overlay for the given surface.
func (m *Model) openPicker(src uploadSource) tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = m.uploadDir
	fp.Height = 12
	if h := m.height - 10; h > 5 {
		fp.Height = h
	}
	m.picker = fp
	m.pickerOpen = true
	m.pickerFor = src
	return m.picker.Init()
}
