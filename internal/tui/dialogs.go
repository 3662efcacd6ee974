// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/i18n"
)

func (m mainModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.confirmYes = !m.confirmYes
		return m, nil
	case "y":
		m.confirmYes = true
		return m.finishConfirm()
	case "n", "esc":
		m.confirmYes = false
		return m.finishConfirm()
	case "enter":
		return m.finishConfirm()
	}
	return m, nil
}

func (m mainModel) finishConfirm() (tea.Model, tea.Cmd) {
	m.state = mainView
	if err := m.desk.RequestReset(m.ctx, desk.Answer(m.confirmYes)); err != nil {
		return m.fail(err)
	}
	if m.confirmYes {
		m.setRecords(nil)
	}
	m.syncLog()
	return m, nil
}

func (m mainModel) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = mainView
		m.savePath.Blur()
		return m, nil
	case "enter":
		m.state = mainView
		m.savePath.Blur()
		path := strings.TrimSpace(m.savePath.Value())
		err := m.desk.RequestSave(m.ctx, desk.StaticPath(path))
		switch {
		case err == nil, errors.Is(err, desk.ErrNothingToSave):
		case errors.Is(err, desk.ErrExport):
			m.log.Append(i18n.T("log.save_failed", err))
		default:
			return m.fail(err)
		}
		m.syncLog()
		return m, nil
	}
	var cmd tea.Cmd
	m.savePath, cmd = m.savePath.Update(msg)
	return m, cmd
}

func (m mainModel) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("confirm.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("confirm.question"))
	b.WriteString("\n\n")

	yes := buttonStyle.Render(i18n.T("confirm.yes"))
	no := activeButtonStyle.Render(i18n.T("confirm.no"))
	if m.confirmYes {
		yes = activeButtonStyle.Render(i18n.T("confirm.yes"))
		no = buttonStyle.Render(i18n.T("confirm.no"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, no, "  ", yes))
	b.WriteString("\n" + helpStyle.Render("\n"+i18n.T("confirm.help")))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogBoxStyle.Render(b.String()),
	)
}

func (m mainModel) viewSave() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("save.title")))
	b.WriteString("\n\n")
	b.WriteString(m.savePath.View())
	b.WriteString("\n" + helpStyle.Render("\n"+i18n.T("save.help")))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogBoxStyle.Render(b.String()),
	)
}
