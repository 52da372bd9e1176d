// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// Browse runs an interactive browser over the diff result. Cursor keys move,
// SPACE expands a suite's case rows, "/" filters suites by name.
func Browse(result *Result) error {
	p := tea.NewProgram(newModel(result))
	_, err := p.Run()
	return err
}

type model struct {
	result   *Result
	visible  []int // indexes into result.Suites after filtering
	cursor   int
	expanded map[int]bool
	filter   textinput.Model
	typing   bool
}

func newModel(result *Result) model {
	ti := textinput.New()
	ti.Placeholder = "suite name"
	ti.CharLimit = 256
	ti.Prompt = "/"

	m := model{
		result:   result,
		expanded: map[int]bool{},
		filter:   ti,
	}
	m.applyFilter()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter", "esc":
			m.typing = false
			m.filter.Blur()
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case " ", "enter":
		if len(m.visible) > 0 {
			idx := m.visible[m.cursor]
			m.expanded[idx] = !m.expanded[idx]
		}
	case "/":
		m.typing = true
		m.filter.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	if m.result.Passed {
		b.WriteString("Final Diff Result : " + passStyle.Render("PASS") + "\n\n")
	} else {
		b.WriteString("Final Diff Result : " + failStyle.Render("FAIL") + "\n\n")
	}

	for pos, idx := range m.visible {
		sd := &m.result.Suites[idx]

		cursor := " "
		if pos == m.cursor {
			cursor = ">"
		}

		mark := passStyle.Render("O")
		if !sd.Passed() {
			mark = failStyle.Render("X")
		}

		detail := fmt.Sprintf("%d cases", len(sd.Cases))
		if sd.Lost {
			detail = failStyle.Render("Junit 4 Test lost.")
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n", cursor, mark, sd.Name, dimStyle.Render(detail)))

		if !m.expanded[idx] || sd.Lost {
			continue
		}

		for _, c := range sd.Cases {
			switch {
			case c.Lost:
				b.WriteString(fmt.Sprintf("    %s %s  %s\n",
					failStyle.Render("X"), c.Name, failStyle.Render("Junit 4 test case lost.")))
			case c.Matched:
				b.WriteString(fmt.Sprintf("    %s %s  %s\n",
					passStyle.Render("O"), c.Name, dimStyle.Render(string(c.Before))))
			default:
				b.WriteString(fmt.Sprintf("    %s %s  %s -> %s\n",
					failStyle.Render("X"), c.Name, c.Before, c.After))
			}
		}

		if sd.Summary != nil {
			style := dimStyle
			if !sd.Summary.Matched {
				style = failStyle
			}
			b.WriteString("    " + style.Render("Junit 4: "+sd.Summary.Before.Summary()) + "\n")
			b.WriteString("    " + style.Render("Junit 5: "+sd.Summary.After.Summary()) + "\n")
		}
	}

	if m.typing {
		b.WriteString("\n" + m.filter.View() + "\n")
	}

	b.WriteString(dimStyle.Render("\nSPACE: expand, /: filter, Q/ESCAPE: quit\n"))
	return b.String()
}

// applyFilter rebuilds the visible index list from the filter text.
func (m *model) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i := range m.result.Suites {
		if needle == "" || strings.Contains(strings.ToLower(m.result.Suites[i].Name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}
