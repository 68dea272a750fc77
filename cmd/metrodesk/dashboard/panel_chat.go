package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"metrodesk/cmd/metrodesk/ui"
)

const chatGreeting = "Hello! I'm your Metro Rail Assistant. I can help you search " +
	"through documents, check fleet status, and answer technical questions. " +
	"How can I assist you today?"

// quickActions are the one-keystroke prompts above the chat input,
// bound to alt+1..alt+4.
var quickActions = []string{
	"Which trains are ready for service?",
	"Any safety alerts today?",
	"Show maintenance schedule",
	"Latest inspection reports",
}

// chatPanel holds the assistant conversation. Every mount starts a fresh
// transcript with the greeting; history does not survive tab switches.
type chatPanel struct {
	input    textinput.Model
	viewport viewport.Model
	messages []chatMessage
	sending  bool
}

func newChatPanel(styles ui.Styles, width, height int) chatPanel {
	input := textinput.New()
	input.Placeholder = "Ask about fleet status, safety alerts, maintenance..."
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.CharLimit = 500
	input.Width = width - 4
	input.Focus()

	vpHeight := height - 8
	if vpHeight < 3 {
		vpHeight = 3
	}
	vp := viewport.New(width, vpHeight)

	p := chatPanel{
		input:    input,
		viewport: vp,
		messages: []chatMessage{{role: "assistant", text: chatGreeting, at: time.Now()}},
	}
	return p
}

func (p *chatPanel) resize(width, height int) {
	p.input.Width = width - 4
	p.viewport.Width = width
	if h := height - 8; h > 3 {
		p.viewport.Height = h
	}
}

// send appends the user message and flips the busy flag. Empty input and
// re-submission while a reply is pending are both no-ops; the caller only
// issues the backend command when send reports true.
func (p *chatPanel) send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || p.sending {
		return false
	}
	p.messages = append(p.messages, chatMessage{role: "user", text: text, at: time.Now()})
	p.sending = true
	p.input.Reset()
	return true
}

func (p *chatPanel) receive(reply string) {
	p.sending = false
	p.messages = append(p.messages, chatMessage{role: "assistant", text: reply, at: time.Now()})
}

func (p chatPanel) update(msg tea.Msg) (chatPanel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	cmds = append(cmds, cmd)
	p.viewport, cmd = p.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return p, tea.Batch(cmds...)
}

// renderTranscript formats the conversation for the viewport. Assistant
// turns go through the markdown renderer when one is available.
func (m Model) renderTranscript() string {
	var sb strings.Builder
	for i, msg := range m.chat.messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		stamp := m.styles.Muted.Render(msg.at.Format("15:04"))
		if msg.role == "user" {
			sb.WriteString(m.styles.Prompt.Render("You ") + stamp + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.text) + "\n")
			continue
		}
		sb.WriteString(m.styles.Title.Render("Assistant ") + stamp + "\n")
		body := msg.text
		if m.renderer != nil {
			if rendered, err := m.renderer.Render(msg.text); err == nil {
				body = strings.TrimRight(rendered, "\n")
			}
		}
		sb.WriteString(body + "\n")
	}
	return sb.String()
}

func (m *Model) refreshTranscript() {
	m.chat.viewport.SetContent(m.renderTranscript())
	m.chat.viewport.GotoBottom()
}

func (m Model) viewChat() string {
	var sections []string
	sections = append(sections, m.styles.Title.Render("Chat Assistant"))

	var hints []string
	for i, action := range quickActions {
		hints = append(hints,
			m.styles.Badge.Render(fmt.Sprintf("alt+%d", i+1))+" "+m.styles.Muted.Render(action))
	}
	sections = append(sections, strings.Join(hints, "\n"))
	sections = append(sections, m.styles.RenderDivider(m.contentWidth()))
	sections = append(sections, m.chat.viewport.View())

	if m.chat.sending {
		sections = append(sections,
			m.spinner.View()+m.styles.Muted.Render(" Assistant is typing..."))
	}
	sections = append(sections, m.chat.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
