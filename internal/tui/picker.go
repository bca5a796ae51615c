// Package tui provides the BubbleTea-based skin picker.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// Option is one selectable row in the picker.
type Option struct {
	Title       string
	Description string
}

// item wraps an Option for the list component.
type item struct {
	option Option
	index  int
}

func (i item) Title() string       { return i.option.Title }
func (i item) Description() string { return i.option.Description }
func (i item) FilterValue() string { return i.option.Title + " " + i.option.Description }

// Model is the picker model. Enter selects, Esc or q cancels.
type Model struct {
	list     list.Model
	selected int
	done     bool
}

// NewModel creates a picker over the given options.
func NewModel(title string, options []Option) Model {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = item{option: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)

	return Model{list: l, selected: -1}
}

// Init implements tea.Model.
func (Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Keys are handled by the list while its filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.selected = it.index
			}
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return docStyle.Render(m.list.View())
}

// Selected returns the index of the chosen option, or -1 when the picker
// was cancelled.
func (m Model) Selected() int {
	return m.selected
}

// Pick shows an interactive picker and returns the index of the selected
// option. ok is false when the user cancelled; cancellation performs no
// side effects.
func Pick(title string, options []Option) (index int, ok bool, err error) {
	if len(options) == 0 {
		return -1, false, nil
	}

	program := tea.NewProgram(NewModel(title, options), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return -1, false, fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(Model)
	if !ok || model.Selected() < 0 {
		return -1, false, nil
	}
	return model.Selected(), true, nil
}
