package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

// alertModel shows a message until dismissed, the terminal stand-in for window.alert().
type alertModel struct {
	title   string
	message string
	close   key.Binding
	done    bool
}

func newAlertModel(title, message string) *alertModel {
	return &alertModel{
		title:   title,
		message: message,
		close:   key.NewBinding(key.WithKeys("enter", "esc", "q", "ctrl+c")),
	}
}

func (m *alertModel) Init() tea.Cmd {
	return nil
}

func (m *alertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.close) {
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *alertModel) View() string {
	if m.done {
		return RenderAlert(m.title, m.message)
	}

	return RenderAlert(m.title, m.message) + ui.HelpStyle.Render("[enter] dismiss") + "\n"
}

// RenderAlert draws title and message in a dialog box.
func RenderAlert(title, message string) string {
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render(title))
	s.WriteString("\n\n")

	for _, line := range strings.Split(strings.TrimSpace(message), "\n") {
		s.WriteString(ui.NormalStyle.Render(line))
		s.WriteString("\n")
	}

	return ui.DialogStyle.Render(strings.TrimRight(s.String(), "\n")) + "\n"
}
