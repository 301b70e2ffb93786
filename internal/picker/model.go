package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/powerline/internal/modules"
)

// PreviewFunc renders the prompt a selection would produce.
type PreviewFunc func(modules.Selection) string

type item struct {
	name        string
	description string
}

// Model is the Bubbletea state of the module picker.
type Model struct {
	items     []item
	selection modules.Selection
	cursor    int
	keys      keyMap
	help      help.Model
	preview   PreviewFunc
	confirmed bool
	finished  bool
}

// NewModel lists the modules of r, starting from sel.
func NewModel(r *modules.Registry, sel modules.Selection, preview PreviewFunc) Model {
	m := Model{
		selection: make(modules.Selection, len(sel)),
		keys:      defaultKeyMap(),
		help:      help.New(),
		preview:   preview,
	}
	for name, enabled := range sel {
		m.selection[name] = enabled
	}
	for _, d := range r.Descriptors() {
		m.items = append(m.items, item{name: d.Name, description: d.Description})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.finished = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			m.finished = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				name := m.items[m.cursor].name
				m.selection[name] = !m.selection[name]
			}
		}
	}
	return m, nil
}

// Selection returns the current module selection.
func (m Model) Selection() modules.Selection {
	out := make(modules.Selection, len(m.selection))
	for name, enabled := range m.selection {
		out[name] = enabled
	}
	return out
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// IsFinished reports whether the picker has exited.
func (m Model) IsFinished() bool {
	return m.finished
}
