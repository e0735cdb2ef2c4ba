package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI message types
type triggerMsg struct {
	Index  int
	Copied bool
}
type registerFailedMsg struct {
	Index int
	Err   error
}
type tickMsg time.Time

const eventLogSize = 8

type bindingRow struct {
	binding watchedBinding
	count   int
	err     error
	lastAt  time.Time
}

type tuiModel struct {
	rows          []bindingRow
	events        []string
	started       time.Time
	width, height int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	chordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	flashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTUIProgram(bindings []watchedBinding) *tea.Program {
	rows := make([]bindingRow, len(bindings))
	for i, b := range bindings {
		rows[i] = bindingRow{binding: b}
	}
	m := tuiModel{rows: rows, started: time.Now()}
	return tea.NewProgram(m, tea.WithAltScreen())
}

func tuiTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		return m, tuiTick()

	case triggerMsg:
		row := &m.rows[msg.Index]
		row.count++
		row.lastAt = time.Now()
		line := fmt.Sprintf("%s  %s", time.Now().Format("15:04:05"), row.binding.Hotkey)
		if msg.Copied {
			line += "  (copied to clipboard)"
		}
		m.events = append(m.events, line)
		if len(m.events) > eventLogSize {
			m.events = m.events[len(m.events)-eventLogSize:]
		}

	case registerFailedMsg:
		m.rows[msg.Index].err = msg.Err
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("chordwatch"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  up %s", time.Since(m.started).Round(time.Second))))
	b.WriteString("\n\n")

	for _, row := range m.rows {
		label := chordStyle.Render(fmt.Sprintf("%-24s", row.binding.Hotkey.String()))
		switch {
		case row.err != nil:
			b.WriteString(fmt.Sprintf("  %s %s\n", label, errStyle.Render(row.err.Error())))
		case row.count == 0:
			b.WriteString(fmt.Sprintf("  %s %s\n", label, dimStyle.Render("waiting")))
		default:
			count := countStyle.Render(fmt.Sprintf("%d", row.count))
			line := fmt.Sprintf("  %s fired %s", label, count)
			// Flash rows that fired in the last second.
			if time.Since(row.lastAt) < time.Second {
				line += "  " + flashStyle.Render("●")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(m.events) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("recent:"))
		b.WriteString("\n")
		for _, ev := range m.events {
			b.WriteString("  " + ev + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("press q or ctrl+c to quit"))
	return b.String()
}
