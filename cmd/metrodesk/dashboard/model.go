package dashboard

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"metrodesk/internal/docstore"
	"metrodesk/internal/portal"
)

const (
	headerHeight  = 3
	footerHeight  = 2
	sidebarWidth  = 34
	toastLifetime = 3 * time.Second
)

// New constructs the dashboard model in the logged-out state.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Styles.Spinner

	uploadDir := cfg.UploadDir
	if uploadDir == "" {
		if wd, err := os.Getwd(); err == nil {
			uploadDir = wd
		}
	}

	fp := filepicker.New()
	fp.CurrentDirectory = uploadDir
	fp.Height = 12

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable, falling back to plain text", zap.Error(err))
		renderer = nil
	}

	m := Model{
		client:        cfg.Client,
		styles:        cfg.Styles,
		logger:        logger,
		login:         newLoginForm(cfg.Styles),
		tab:           TabChat,
		docs:          docstore.New(),
		sidebarUpload: newUploadWidget(cfg.Styles, "Paths to PDF files, space separated"),
		picker:        fp,
		spinner:       sp,
		renderer:      renderer,
		uploadDir:     uploadDir,
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// enterDashboard resets workspace state for a fresh session and mounts the
// chat tab. Called after a successful login.
func (m *Model) enterDashboard(session portal.Session) tea.Cmd {
	m.session = &session
	m.tab = TabChat
	m.docs = docstore.New()
	m.stats = portal.SystemStats{}
	m.statsLoaded = false
	m.sidebarUpload = newUploadWidget(m.styles, "Paths to PDF files, space separated")
	m.sidebarFocused = false
	m.toast = nil
	m.panelEpoch++
	m.sessionGen++
	m.chat = newChatPanel(m.styles, m.contentWidth(), m.contentHeight())
	m.refreshTranscript()
	m.logger.Info("session started", zap.String("user", session.Username))
	return tea.Batch(m.statsCmd(), m.spinner.Tick)
}

// logout drops the session and every piece of workspace state, returning
// to a blank login form.
func (m *Model) logout() {
	user := ""
	if m.session != nil {
		user = m.session.Username
	}
	m.session = nil
	m.login = newLoginForm(m.styles)
	m.loggingIn = false
	m.docs = docstore.New()
	m.toast = nil
	m.pickerOpen = false
	m.sidebarFocused = false
	m.panelEpoch++
	m.sessionGen++
	m.logger.Info("session ended", zap.String("user", user))
}

// selectTab switches the workspace to the given tab. Selecting the active
// tab is a no-op; switching mounts a fresh panel and invalidates any async
// work issued by the previous mount.
func (m *Model) selectTab(t Tab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.tab = t
	m.panelEpoch++
	m.sidebarFocused = false

	switch t {
	case TabChat:
		m.chat = newChatPanel(m.styles, m.contentWidth(), m.contentHeight())
		m.refreshTranscript()
		return textinput.Blink
	case TabFleet:
		m.fleet = newFleetPanel()
		return tea.Batch(m.fleetCmd(), m.spinner.Tick)
	case TabDocuments:
		m.documents = newDocumentsPanel(m.styles)
		return textinput.Blink
	case TabSearch:
		m.search = newSearchPanel(m.styles)
		return textinput.Blink
	default:
		return nil
	}
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight - 2
	if h < 8 {
		h = 8
	}
	return h
}

// anyLoading reports whether a spinner-worthy operation is in flight.
func (m Model) anyLoading() bool {
	return m.loggingIn ||
		m.chat.sending ||
		m.fleet.loading ||
		m.search.searching ||
		m.sidebarUpload.busy ||
		m.documents.upload.busy
}

// widgetFor returns the upload widget for the given surface.
func (m *Model) widgetFor(src uploadSource) *uploadWidget {
	if src == sourceDocuments {
		return &m.documents.upload
	}
	return &m.sidebarUpload
}

// showToast replaces the current notification and arms its expiry timer.
func (m *Model) showToast(kind toastKind, text string) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{kind: kind, text: text, seq: m.toastSeq}
	seq := m.toastSeq
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Backend commands. Each one captures the state it needs up front so the
// closure never touches the model.

func (m Model) loginCmd(creds portal.Credentials) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		session, err := client.Login(context.Background(), creds)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m Model) statsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		stats, err := client.SystemStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) uploadCmd(src uploadSource, files []portal.FileInfo) tea.Cmd {
	client := m.client
	gen := m.sessionGen
	return func() tea.Msg {
		docs, err := client.Upload(context.Background(), files)
		return uploadDoneMsg{gen: gen, source: src, docs: docs, err: err}
	}
}

func (m Model) chatCmd(text string) tea.Cmd {
	client := m.client
	epoch := m.panelEpoch
	return func() tea.Msg {
		reply, err := client.Chat(context.Background(), text)
		return chatReplyMsg{epoch: epoch, reply: reply, err: err}
	}
}

func (m Model) fleetCmd() tea.Cmd {
	client := m.client
	epoch := m.panelEpoch
	return func() tea.Msg {
		roster, err := client.FleetStatus(context.Background())
		return fleetLoadedMsg{epoch: epoch, roster: roster, err: err}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	client := m.client
	epoch := m.panelEpoch
	return func() tea.Msg {
		results, err := client.Search(context.Background(), query)
		return searchDoneMsg{epoch: epoch, query: query, results: results, err: err}
	}
}
