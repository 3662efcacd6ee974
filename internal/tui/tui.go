// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the airdesk window: flight and passenger forms, a log area,
// the passenger table and the save/remove actions, drawn in the terminal
// with bubbletea. All decisions are delegated to internal/desk.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/export"
	"github.com/toeirei/airdesk/internal/i18n"
	"github.com/toeirei/airdesk/internal/logging"
	"github.com/toeirei/airdesk/internal/model"
	"github.com/toeirei/airdesk/util/slicest"
)

// viewState represents which part of the window has the keyboard.
type viewState int

const (
	mainView viewState = iota
	confirmView
	saveView
)

// Focus order of the main view. Inputs and buttons share one ring.
const (
	focusFlightNumber = iota
	focusDeparture
	focusDestination
	focusAddFlight
	focusPassengerName
	focusPassengerFlight
	focusAddPassenger
	focusLog
	focusTable
	focusSave
	focusRemove
	focusCount
)

// inputFor maps a focus slot to its index in mainModel.inputs.
var inputFor = map[int]int{
	focusFlightNumber:    0,
	focusDeparture:       1,
	focusDestination:     2,
	focusPassengerName:   3,
	focusPassengerFlight: 4,
}

const (
	logHeight   = 6
	tableHeight = 8
	logLimit    = 200

	// Smallest sizes on short terminals. A table height counts its header.
	minLogHeight   = 2
	minTableHeight = 3
)

// scrollKeys are routed to the log or the table while either has focus.
var scrollKeys = map[string]bool{
	"up": true, "down": true, "pgup": true, "pgdown": true, "home": true, "end": true,
}

// Options configures the window.
type Options struct {
	// ExportPath pre-fills the save prompt.
	ExportPath string
}

// rosterMsg carries a freshly loaded roster.
type rosterMsg struct {
	records []model.PassengerRecord
	err     error
}

// mainModel is the whole window.
type mainModel struct {
	ctx  context.Context
	desk *desk.Desk
	log  *desk.Log
	opts Options

	state      viewState
	focusIndex int
	inputs     []textinput.Model
	confirmYes bool
	savePath   textinput.Model

	logView viewport.Model
	table   table.Model
	records []model.PassengerRecord

	width  int
	height int
	err    error
}

func newMainModel(ctx context.Context, store desk.Store, exporter export.Exporter, opts Options) mainModel {
	log := &desk.Log{Max: logLimit}
	m := mainModel{
		ctx:  ctx,
		desk: desk.New(store, exporter, log),
		log:  log,
		opts: opts,
	}

	labels := []string{
		i18n.T("form.flight_number"),
		i18n.T("form.departure"),
		i18n.T("form.destination"),
		i18n.T("form.passenger_name"),
		i18n.T("form.flight_number"),
	}
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		t := textinput.New()
		t.Prompt = fmt.Sprintf("%-18s", label)
		t.CharLimit = 64
		m.inputs[i] = t
	}
	m.inputs[0].Focus()

	m.savePath = textinput.New()
	m.savePath.Prompt = i18n.T("save.prompt")
	m.savePath.CharLimit = 256

	m.logView = viewport.New(60, logHeight)

	m.table = table.New(
		table.WithColumns(rosterColumns(20)),
		table.WithHeight(tableHeight),
		table.WithFocused(false),
	)
	return m
}

func rosterColumns(width int) []table.Column {
	return []table.Column{
		{Title: i18n.T("table.passenger_name"), Width: width},
		{Title: i18n.T("table.flight_number"), Width: 14},
		{Title: i18n.T("table.departure"), Width: 14},
		{Title: i18n.T("table.destination"), Width: 14},
	}
}

// Init loads the roster once the window is up.
func (m mainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshCmd())
}

// refreshCmd reloads the roster from the store.
func (m mainModel) refreshCmd() tea.Cmd {
	d, ctx := m.desk, m.ctx
	return func() tea.Msg {
		records, err := d.RefreshView(ctx)
		return rosterMsg{records: records, err: err}
	}
}

// Update is the main message loop.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := max(msg.Width-8, 40)
		m.logView.Width = w
		m.table.SetColumns(rosterColumns(max(w-48, 14)))
		m.layout()
		return m, nil

	case rosterMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.setRecords(msg.records)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case confirmView:
			return m.updateConfirm(msg)
		case saveView:
			return m.updateSave(msg)
		}
		return m.updateMain(msg)
	}

	// Cursor blink and other input messages go to the focused input.
	return m.updateInputs(msg)
}

// fail records a store error and ends the program.
func (m mainModel) fail(err error) (tea.Model, tea.Cmd) {
	logging.Errorf("window: %v", err)
	m.err = err
	return m, tea.Quit
}

func (m *mainModel) setRecords(records []model.PassengerRecord) {
	m.records = records
	m.table.SetRows(slicest.Map(records, func(r model.PassengerRecord) table.Row {
		return r.Row()
	}))
}

// syncLog shows the current log lines. The view follows new lines unless
// the user has scrolled up.
func (m *mainModel) syncLog() {
	follow := m.logView.AtBottom()
	m.logView.SetContent(m.log.String())
	if follow {
		m.logView.GotoBottom()
	}
}

// layout splits the rows left over by the fixed parts of the main view
// between the log and the table.
func (m *mainModel) layout() {
	if m.height <= 0 {
		return
	}
	follow := m.logView.AtBottom()
	m.logView.Height = minLogHeight
	m.table.SetHeight(minTableHeight)
	chrome := lipgloss.Height(m.viewMain()) - minLogHeight - minTableHeight
	if len(m.records) > 0 {
		// keep room for the empty-table hint
		chrome++
	}

	spare := m.height - chrome
	logRows := max(spare/3, minLogHeight)
	tableRows := max(spare-logRows, minTableHeight)
	m.logView.Height = logRows
	m.table.SetHeight(tableRows)
	if follow || m.logView.PastBottom() {
		m.logView.GotoBottom()
	}
}

// rosterText renders the roster as tab-separated lines with a header.
func (m mainModel) rosterText() string {
	var b strings.Builder
	b.WriteString(strings.Join(model.RosterHeader, "\t"))
	for _, r := range m.records {
		b.WriteString("\n")
		b.WriteString(strings.Join(r.Row(), "\t"))
	}
	return b.String()
}

// View renders the window.
func (m mainModel) View() string {
	switch m.state {
	case confirmView:
		return m.viewConfirm()
	case saveView:
		return m.viewSave()
	}
	return m.viewMain()
}

func (m mainModel) viewMain() string {
	var items []string
	items = append(items, mainTitleStyle.Render(i18n.T("app.title")))

	items = append(items, sectionStyle.Render(i18n.T("form.flight_section")))
	for i := 0; i < 3; i++ {
		items = append(items, m.inputs[i].View())
	}
	items = append(items, m.button(focusAddFlight, i18n.T("button.add_flight")))

	items = append(items, sectionStyle.Render(i18n.T("form.passenger_section")))
	items = append(items, m.inputs[3].View(), m.inputs[4].View())
	items = append(items, m.button(focusAddPassenger, i18n.T("button.add_passenger")))

	items = append(items, sectionStyle.Render(i18n.T("log.title")))
	logBox := logBoxStyle
	if m.focusIndex == focusLog {
		logBox = logBox.BorderForeground(colorHighlight)
	}
	items = append(items, logBox.Render(m.logView.View()))

	if len(m.records) == 0 {
		items = append(items, helpStyle.Render(i18n.T("table.empty")))
	}
	items = append(items, m.table.View())

	items = append(items, "", lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(focusSave, i18n.T("button.save_info")),
		"   ",
		m.button(focusRemove, i18n.T("button.remove_info")),
	))
	items = append(items, "", helpStyle.Render(i18n.T("help.main")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (m mainModel) button(slot int, label string) string {
	text := "[ " + label + " ]"
	switch {
	case m.focusIndex == slot:
		return formSelectedItemStyle.Render(text)
	case slot == focusRemove:
		return dangerItemStyle.Render(text)
	default:
		return formItemStyle.Render(text)
	}
}

// Run opens the window over store and blocks until it is closed. A store
// error closes the window and is returned.
func Run(ctx context.Context, store desk.Store, exporter export.Exporter, opts Options) error {
	p := tea.NewProgram(newMainModel(ctx, store, exporter, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	if fm, ok := final.(mainModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
