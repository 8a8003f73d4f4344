// Package prompt provides blocking terminal dialogs: a masked entry field and an alert.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
)

// ErrNotInteractive is returned by Prompt when no terminal is attached.
var ErrNotInteractive = errors.New("prompt: not attached to a terminal")

// Terminal runs dialogs on a terminal. Outside a terminal, Prompt fails with
// ErrNotInteractive and Alert prints the message without waiting.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// New returns a Terminal bound to stdin/stdout, detecting interactivity with go-gh's term.
func New() *Terminal {
	t := term.FromEnv()

	return &Terminal{
		in:          os.Stdin,
		out:         t.Out(),
		interactive: t.IsTerminalOutput(),
	}
}

// NewWithIO returns a Terminal using the given streams.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{in: in, out: out, interactive: interactive}
}

// Interactive reports whether dialogs can wait for input.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Prompt shows a masked entry dialog and blocks until it is confirmed or cancelled.
// A cancelled dialog returns "" and no error.
func (t *Terminal) Prompt(ctx context.Context, title, description string) (string, error) {
	if !t.interactive {
		return "", ErrNotInteractive
	}

	model := newEntryModel(title, description)

	final, err := t.run(ctx, model)
	if err != nil {
		return "", err
	}

	entry, ok := final.(*entryModel)
	if !ok {
		return "", fmt.Errorf("prompt: unexpected model %T", final)
	}

	return entry.Result(), nil
}

// Alert shows message and blocks until dismissed.
func (t *Terminal) Alert(ctx context.Context, title, message string) error {
	if !t.interactive {
		_, err := io.WriteString(t.out, RenderAlert(title, message))
		return err
	}

	_, err := t.run(ctx, newAlertModel(title, message))

	return err
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}

	return final, nil
}
