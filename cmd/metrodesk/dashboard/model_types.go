// Package dashboard implements the interactive terminal dashboard for the
// Metro Rail Document Intelligence portal: a login view and a tabbed
// workspace (chat assistant, fleet status, documents, search) with a
// sidebar hosting upload and system-overview widgets.
//
// The root Model is the single owner of session state, the active tab,
// and the uploaded-document list. Panels are sub-models mounted one at a
// time; they never talk to each other, only to the state the shell hands
// them. Every backend call is a tea.Cmd against portal.Client and resolves
// to one of the typed messages below.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/docstore"
	"metrodesk/internal/portal"
)

// Tab identifies one of the four mutually exclusive panels.
type Tab int

const (
	TabChat Tab = iota
	TabFleet
	TabDocuments
	TabSearch
)

// tabs is the sidebar navigation order.
var tabs = []Tab{TabChat, TabFleet, TabDocuments, TabSearch}

// Label returns the sidebar menu label for the tab.
func (t Tab) Label() string {
	switch t {
	case TabChat:
		return "Chat Assistant"
	case TabFleet:
		return "Fleet Status"
	case TabDocuments:
		return "Documents"
	case TabSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// Hotkey returns the function key bound to the tab.
func (t Tab) Hotkey() string {
	switch t {
	case TabChat:
		return "f1"
	case TabFleet:
		return "f2"
	case TabDocuments:
		return "f3"
	case TabSearch:
		return "f4"
	default:
		return ""
	}
}

// uploadSource names which of the two upload surfaces issued a batch. The
// sidebar widget and the Documents panel widget share one pipeline but
// track their busy state independently.
type uploadSource int

const (
	sourceSidebar uploadSource = iota
	sourceDocuments
)

// toastKind selects the styling of a transient notification.
type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toast is a transient notification owned by the shell. A newer toast
// replaces the current one; seq ties the expiry timer to the toast it was
// armed for.
type toast struct {
	kind toastKind
	text string
	seq  int
}

// chatMessage is one entry in the chat transcript.
type chatMessage struct {
	role string // "user" or "assistant"
	text string
	at   time.Time
}

// Config holds the dependencies for constructing the dashboard model.
type Config struct {
	Client    portal.Client
	Styles    ui.Styles
	Logger    *zap.Logger
	UploadDir string // initial directory for the file browser
}

// Model is the root model for the portal TUI.
type Model struct {
	client portal.Client
	styles ui.Styles
	logger *zap.Logger

	width  int
	height int
	ready  bool

	// Session state. Nil session renders the login view; the dashboard is
	// reachable iff session is present.
	session   *portal.Session
	login     loginForm
	loggingIn bool

	// Shell-owned workspace state. panelEpoch increments on every panel
	// mount (tab switch, login, logout); async completions carry the
	// epoch they were issued under and stale ones are dropped.
	// sessionGen increments on every session boundary (login and logout)
	// and gates uploads, which outlive panel mounts but not sessions.
	tab        Tab
	panelEpoch int
	sessionGen int
	docs       *docstore.Store

	// Panels. Only the one matching tab is live; switching tabs rebuilds
	// the target panel, so per-panel state does not survive a remount.
	chat      chatPanel
	fleet     fleetPanel
	documents documentsPanel
	search    searchPanel

	// Sidebar widgets.
	sidebarUpload  uploadWidget
	sidebarFocused bool
	stats          portal.SystemStats
	statsLoaded    bool

	// File browser overlay, shared by both upload surfaces.
	picker     filepicker.Model
	pickerOpen bool
	pickerFor  uploadSource

	spinner  spinner.Model
	renderer *glamour.TermRenderer
	toast    *toast
	toastSeq int

	uploadDir string
}

// Messages for tea updates.
type (
	loginDoneMsg struct {
		session portal.Session
		err     error
	}

	statsLoadedMsg struct {
		stats portal.SystemStats
		err   error
	}

	// uploadDoneMsg completes an upload batch from either surface. Not
	// panel-epoch-gated: the aggregator is session-scoped and must
	// receive the batch even if the user has switched tabs meanwhile.
	// It is session-gated: a batch from a previous session must not land
	// in the next user's store.
	uploadDoneMsg struct {
		gen    int
		source uploadSource
		docs   []portal.UploadedDocument
		err    error
	}

	chatReplyMsg struct {
		epoch int
		reply string
		err   error
	}

	fleetLoadedMsg struct {
		epoch  int
		roster []portal.TrainRecord
		err    error
	}

	searchDoneMsg struct {
		epoch   int
		query   string
		results []portal.SearchResult
		err     error
	}

	toastExpiredMsg struct {
		seq int
	}
)
