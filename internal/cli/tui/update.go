package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "l":
		m.trim = clamp(m.trim+m.config.StepPercent, 0, maxTrimPercent)
		return m, nil

	case "left", "h":
		m.trim = clamp(m.trim-m.config.StepPercent, 0, maxTrimPercent)
		return m, nil

	case "up", "k":
		m.multiplier = clamp(m.multiplier+m.config.StepMultiplier, 0, maxMultiplier)
		return m, nil

	case "down", "j":
		m.multiplier = clamp(m.multiplier-m.config.StepMultiplier, 0, maxMultiplier)
		return m, nil

	case "g":
		if m.config.Generate != nil {
			m.sample = m.config.Generate()
		}
		return m, nil

	case "r":
		m.trim = clamp(m.config.TrimPercent, 0, maxTrimPercent)
		m.multiplier = clamp(m.config.Multiplier, 0, maxMultiplier)
		return m, nil
	}

	return m, nil
}
