package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/portal"
)

// loginForm is the two-field sign-in form shown before a session exists.
// Any credentials are accepted by the backend; the form only collects
// them and echoes the username into the session.
type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int // 0 username, 1 password
}

func newLoginForm(styles ui.Styles) loginForm {
	username := textinput.New()
	username.Placeholder = "Employee ID"
	username.Prompt = "> "
	username.PromptStyle = styles.Prompt
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = "> "
	password.PromptStyle = styles.Prompt
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{username: username, password: password}
}

// cycle moves focus between the two fields.
func (f *loginForm) cycle() tea.Cmd {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.password.Blur()
		return f.username.Focus()
	}
	f.username.Blur()
	return f.password.Focus()
}

func (f loginForm) credentials() portal.Credentials {
	return portal.Credentials{
		Username: strings.TrimSpace(f.username.Value()),
		Password: f.password.Value(),
	}
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd
}
