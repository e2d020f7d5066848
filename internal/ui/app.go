// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/edcargo-tui/internal/journal"
	"github.com/jeranaias/edcargo-tui/internal/manifest"
	"github.com/jeranaias/edcargo-tui/internal/ui/components"
	"github.com/jeranaias/edcargo-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// lineMsg carries one raw journal line from the tailer.
type lineMsg []byte

// tailerClosedMsg is sent when the tailer's line channel closes.
type tailerClosedMsg struct{}

// waitForLine blocks for the next journal line.
func waitForLine(t *journal.Tailer) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-t.Lines()
		if !ok {
			return tailerClosedMsg{}
		}
		return lineMsg(line)
	}
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model: journal in, manifest panels out.
type Model struct {
	session *manifest.Session
	tailer  *journal.Tailer

	theme *styles.Theme
	panel *components.Panel

	viewport viewport.Model
	keys     KeyMap
	help     help.Model

	width  int
	height int
	ready  bool

	events  int
	lastErr error
}

// NewModel wires the session and tailer into the UI. The synthesized
// startup event primes cargo state from Cargo.json before any journal line
// arrives.
func NewModel(session *manifest.Session, tailer *journal.Tailer) Model {
	theme := styles.NewTheme()

	m := Model{
		session: session,
		tailer:  tailer,
		theme:   theme,
		panel:   components.NewPanel(theme),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.session.HandleEvent(&journal.StartUp{})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForLine(m.tailer)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.tailer.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.session.ReloadRare()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()
		return m, nil

	case lineMsg:
		m.events++
		ev, err := journal.Decode(msg)
		if err != nil {
			m.lastErr = err
		} else if m.session.HandleEvent(ev) {
			m.lastErr = nil
			m.refresh()
		}
		return m, waitForLine(m.tailer)

	case tailerClosedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.theme.SectionTitle.Render("edcargo"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	status := strconv.Itoa(m.events) + " events"
	if m.lastErr != nil {
		return m.theme.Error.Render(status + " · " + m.lastErr.Error())
	}
	return m.theme.StatusBar.Render(status)
}

// =============================================================================
// CONTENT
// =============================================================================

// refresh rebuilds the viewport content from the session. Mirrors the
// show/hide rules of the panel layout: the SRV section exists only while
// the commander is in an SRV, and an entirely empty display collapses to a
// single ship-capacity placeholder.
func (m *Model) refresh() {
	shipManifest := m.session.ShipManifest()
	shipRows := components.Rows(shipManifest)
	occupied := shipManifest.Total
	capacity := m.session.NoteShipOccupied(occupied)

	var sections []string

	showShip := capacity != 0 || len(shipRows) > 0
	if showShip {
		sections = append(sections, m.panel.View(components.Summary{
			Title:    "Ship Manifest",
			Occupied: occupied,
			Capacity: capacity,
			Known:    true,
			Guessed:  m.session.ShipCapacityGuessed,
		}, shipRows, m.viewport.Width))
	}

	if m.session.CurrentIsSRV {
		srvManifest := m.session.SRVManifest()
		srvRows := components.Rows(srvManifest)

		summary := components.Summary{
			Title:    "SRV Manifest",
			Occupied: srvManifest.Total,
		}
		if m.session.SRVCapacity != nil {
			summary.Capacity = *m.session.SRVCapacity
			summary.Known = true
		}
		sections = append(sections, m.panel.View(summary, srvRows, m.viewport.Width))
	}

	if len(sections) == 0 {
		// Nothing tracked yet; show what little we know about capacity.
		text := "Ship Capacity: ???"
		if !m.session.ShipCapacityGuessed {
			text = "Ship Capacity: " + strconv.Itoa(m.session.ShipCapacity)
		}
		sections = append(sections, m.theme.Placeholder.Render(text))
	}

	m.viewport.SetContent(strings.Join(sections, "\n\n"))
}
