package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/ballpit/contact"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// submitResultMsg carries the form outcome back from the submit command
type submitResultMsg struct {
	status  contact.Status
	message string
}

// contactModel is the interactive form; the contact.Form is only touched inside submit commands
type contactModel struct {
	ctx  context.Context
	form *contact.Form

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int

	status contact.Status
	errMsg string
}

func newContactModel(ctx context.Context, form *contact.Form) contactModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	msg := textarea.New()
	msg.Placeholder = "Your message"
	msg.SetWidth(60)
	msg.SetHeight(6)
	msg.ShowLineNumbers = false

	return contactModel{
		ctx:     ctx,
		form:    form,
		name:    name,
		email:   email,
		message: msg,
	}
}

func (m contactModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m contactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		m.status = msg.status
		m.errMsg = msg.message
		if m.status == contact.StatusSuccess {
			m.name.Reset()
			m.email.Reset()
			m.message.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			step := 1
			if msg.Type == tea.KeyShiftTab {
				step = fieldCount - 1
			}
			m.setFocus((m.focus + step) % fieldCount)
			return m, nil
		case tea.KeyCtrlS:
			return m.submit()
		case tea.KeyEnter:
			if m.focus != fieldMessage {
				m.setFocus(m.focus + 1)
				return m, nil
			}
		}
	}

	if m.status == contact.StatusSubmitting {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *contactModel) setFocus(f int) {
	m.focus = f
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch f {
	case fieldName:
		m.name.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldMessage:
		m.message.Focus()
	}
}

func (m contactModel) submit() (tea.Model, tea.Cmd) {
	if m.status == contact.StatusSubmitting {
		return m, nil
	}
	m.status = contact.StatusSubmitting
	m.errMsg = ""

	s := contact.Submission{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
	form, ctx := m.form, m.ctx
	return m, func() tea.Msg {
		_ = form.Submit(ctx, s)
		return submitResultMsg{status: form.Status(), message: form.ErrorMessage()}
	}
}

func (m contactModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Get in touch"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		view  string
	}{
		{"Name", m.name.View()},
		{"Email", m.email.View()},
		{"Message", m.message.View()},
	}
	for i, f := range fields {
		label := labelStyle.Render(f.label)
		if i == m.focus {
			label = focusStyle.Render(f.label)
		}
		b.WriteString(label + "\n" + f.view + "\n\n")
	}

	switch m.status {
	case contact.StatusSubmitting:
		b.WriteString(labelStyle.Render("Sending...") + "\n")
	case contact.StatusSuccess:
		b.WriteString(successStyle.Render("Message sent. Thank you!") + "\n")
	case contact.StatusError:
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("tab next field • ctrl+s send • esc quit"))
	return b.String()
}
