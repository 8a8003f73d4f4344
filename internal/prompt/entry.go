package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

// entryModel is a single masked text field, the terminal stand-in for window.prompt().
type entryModel struct {
	title       string
	description string
	input       textinput.Model
	keys        entryKeyMap
	value       string
	done        bool
	cancelled   bool
}

type entryKeyMap struct {
	Enter  key.Binding
	Cancel key.Binding
}

func defaultEntryKeyMap() entryKeyMap {
	return entryKeyMap{
		Enter:  key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

func newEntryModel(title, description string) *entryModel {
	ti := textinput.New()
	ti.Focus()
	ti.Width = 48
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &entryModel{
		title:       title,
		description: description,
		input:       ti,
		keys:        defaultEntryKeyMap(),
	}
}

func (m *entryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *entryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Enter):
			m.value = m.input.Value()
			m.done = true

			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Cancel):
			m.cancelled = true
			m.done = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *entryModel) View() string {
	if m.done {
		return ""
	}

	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render(m.title))
	s.WriteString("\n")

	if m.description != "" {
		s.WriteString(ui.SubtitleStyle.Render(m.description))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(ui.HelpStyle.Render("[enter] confirm  [esc] cancel"))

	return ui.DialogStyle.Render(s.String()) + "\n"
}

// Result returns the entered value; a cancelled dialog yields "".
func (m *entryModel) Result() string {
	if m.cancelled {
		return ""
	}

	return m.value
}
