// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model of the login form. It only collects
// credentials; the caller talks to the server once the program exits.
type LoginModel struct {
	inputs []textinput.Model
	focus  int

	done      bool
	cancelled bool
	errMsg    string
}

// NewLoginModel creates the form with a username and a masked password
// input.
func NewLoginModel(username string) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.SetValue(username)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{inputs: []textinput.Model{usernameInput, passwordInput}}
	if strings.TrimSpace(username) != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter on the username moves to the
// password; enter on the password submits when both fields are filled.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.next):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			if strings.TrimSpace(m.inputs[0].Value()) == "" || m.inputs[1].Value() == "" {
				m.errMsg = "username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Protocol catalog login"))
	b.WriteString("\n\n")
	b.WriteString("Username  ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password  ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field │ enter: submit │ esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
