// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/i18n"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m mainModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if scrollKeys[msg.String()] {
		switch m.focusIndex {
		case focusLog:
			return m.scrollLog(msg)
		case focusTable:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+r":
		return m, m.refreshCmd()
	case "ctrl+y":
		m.copyRoster()
		return m, nil
	case "tab", "down":
		m.setFocus(m.focusIndex + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focusIndex - 1)
		return m, nil
	case "pgdown":
		m.table.MoveDown(max(m.table.Height(), 1))
		return m, nil
	case "pgup":
		m.table.MoveUp(max(m.table.Height(), 1))
		return m, nil
	case "enter":
		if _, ok := inputFor[m.focusIndex]; ok {
			m.setFocus(m.focusIndex + 1)
			return m, nil
		}
		return m.activate()
	}
	return m.updateInputs(msg)
}

// setFocus moves focus to slot, wrapping around the ring.
func (m *mainModel) setFocus(slot int) {
	m.focusIndex = (slot + focusCount) % focusCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if i, ok := inputFor[m.focusIndex]; ok {
		m.inputs[i].Focus()
	}
	if m.focusIndex == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m mainModel) scrollLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "home":
		m.logView.GotoTop()
		return m, nil
	case "end":
		m.logView.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m mainModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	i, ok := inputFor[m.focusIndex]
	if !ok || m.state != mainView {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

// activate runs the button under focus.
func (m mainModel) activate() (tea.Model, tea.Cmd) {
	switch m.focusIndex {
	case focusAddFlight:
		return m.addFlight()
	case focusAddPassenger:
		return m.addPassenger()
	case focusSave:
		return m.openSave()
	case focusRemove:
		m.state = confirmView
		m.confirmYes = false
		return m, nil
	}
	return m, nil
}

func (m mainModel) addFlight() (tea.Model, tea.Cmd) {
	err := m.desk.SubmitFlight(m.ctx, desk.FlightForm{
		FlightNumber: m.inputs[0].Value(),
		Departure:    m.inputs[1].Value(),
		Destination:  m.inputs[2].Value(),
	})
	m.syncLog()
	if errors.Is(err, desk.ErrMissingFields) {
		return m, nil
	}
	if err != nil {
		return m.fail(err)
	}
	for i := 0; i < 3; i++ {
		m.inputs[i].Reset()
	}
	// A new flight can complete passengers that were added earlier.
	return m, m.refreshCmd()
}

func (m mainModel) addPassenger() (tea.Model, tea.Cmd) {
	err := m.desk.SubmitPassenger(m.ctx, desk.PassengerForm{
		PassengerName: m.inputs[3].Value(),
		FlightNumber:  m.inputs[4].Value(),
	})
	m.syncLog()
	if errors.Is(err, desk.ErrMissingFields) {
		return m, nil
	}
	if err != nil {
		return m.fail(err)
	}
	m.inputs[3].Reset()
	m.inputs[4].Reset()
	return m, m.refreshCmd()
}

// openSave shows the path prompt, or logs that there is nothing to save.
func (m mainModel) openSave() (tea.Model, tea.Cmd) {
	records, err := m.desk.RefreshView(m.ctx)
	if err != nil {
		return m.fail(err)
	}
	m.setRecords(records)
	if len(records) == 0 {
		err := m.desk.RequestSave(m.ctx, nil)
		m.syncLog()
		if err != nil && !errors.Is(err, desk.ErrNothingToSave) {
			return m.fail(err)
		}
		return m, nil
	}
	m.state = saveView
	m.savePath.SetValue(m.opts.ExportPath)
	m.savePath.CursorEnd()
	return m, m.savePath.Focus()
}

func (m *mainModel) copyRoster() {
	if err := writeClipboard(m.rosterText()); err != nil {
		m.log.Append(i18n.T("log.copy_failed", err))
	} else {
		m.log.Append(i18n.T("log.copied"))
	}
	m.syncLog()
}
