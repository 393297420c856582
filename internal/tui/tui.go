// Package tui renders the client's terminal output: the interactive login
// form and the protocol and user tables.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrLoginCancelled = errors.New("login cancelled")

// TUI runs interactive prompts on the given terminal streams.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// PromptCredentials shows the login form. username prefills the first field
// and moves focus to the password when set.
func (t *TUI) PromptCredentials(ctx context.Context, username string) (string, string, error) {
	model := NewLoginModel(username)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
	if err != nil {
		return "", "", err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return "", "", tea.ErrProgramKilled
	}
	if result.cancelled || !result.done {
		return "", "", ErrLoginCancelled
	}

	return strings.TrimSpace(result.inputs[0].Value()), result.inputs[1].Value(), nil
}
