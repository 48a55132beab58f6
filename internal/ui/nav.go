package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/uddipan77/portfolio-tui/internal/ui/styles"
)

type navEntry struct {
	section sectionInfo
	zoneID  string
}

func newNavModel() tea.Model {
	entries := make([]navEntry, 0, len(declaredSections))
	for _, section := range declaredSections {
		entries = append(entries, navEntry{section: section, zoneID: zone.NewPrefix()})
	}

	return &navModel{entries: entries, active: declaredSections[0].id}
}

// navModel is the persistent header. It never decides which section is
// active on its own; it renders whatever the tracker last reported, or the
// contact entry while the form view is open.
type navModel struct {
	entries     []navEntry
	active      sectionID
	contactOpen bool
	width       int
}

func (m navModel) Init() tea.Cmd {
	return nil
}

func (m navModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, entry := range m.entries {
			// Check each entry to see if it's in bounds.
			if zone.Get(entry.zoneID + entry.section.title).InBounds(msg) {
				return m, gotoSection(entry.section.id)
			}
		}

		return m, nil
	case activeSectionMsg:
		m.active = sectionID(msg)
	case contentView:
		m.contactOpen = msg == viewContact
	case contentViewPortHeightMsg:
		m.width = msg.width
	}

	return m, nil
}

func (m navModel) View() string {
	if m.width == 0 {
		return ""
	}

	active := m.active
	if m.contactOpen {
		active = sectionContact
	}

	var entries []string
	for _, entry := range m.entries {
		if entry.section.id == active {
			entries = append(entries, zone.Mark(entry.zoneID+entry.section.title,
				styles.NavActive.Render(entry.section.title)))
		} else {
			entries = append(entries, zone.Mark(entry.zoneID+entry.section.title,
				styles.NavInactive.Render(entry.section.title)))
		}
	}

	return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, entries...))
}
