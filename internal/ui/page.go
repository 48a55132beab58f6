package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/profile"
)

// pageModel owns the single scrolling page: the viewport, the rendered
// section content and the scroll position to active section mapping.
type pageModel struct {
	viewport   viewport.Model
	profile    profile.Profile
	baseURL    string
	projectTab profile.ProjectTab
	tracker    sectionTracker
	active     sectionID
	activeView contentView
	width      int
	height     int
	ready      bool

	featuredZoneID   string
	openSourceZoneID string
}

func newPageModel(userConfig config.Config, prof profile.Profile) *pageModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Padding(0, 1)

	return &pageModel{
		viewport:         vp,
		profile:          prof,
		baseURL:          userConfig.BaseURL,
		projectTab:       profile.TabFeatured,
		tracker:          newSectionTracker(),
		active:           declaredSections[0].id,
		activeView:       viewPage,
		featuredZoneID:   zone.NewPrefix(),
		openSourceZoneID: zone.NewPrefix(),
	}
}

func (m *pageModel) Init() tea.Cmd {
	return nil
}

func (m *pageModel) Update(msg tea.Msg) (*pageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profile.Profile:
		// Content change counts as a layout pass: re-render, keep scroll.
		m.profile = msg

		return m, m.layout(true)
	case config.Config:
		m.baseURL = msg.BaseURL

		return m, m.layout(true)
	case themeChangedMsg:
		return m, m.layout(true)
	case contentView:
		m.activeView = msg
	case contentViewPortHeightMsg:
		m.width = msg.width
		m.height = msg.contentViewPortHeight
		m.viewport.Width = msg.width
		m.viewport.Height = msg.contentViewPortHeight
		m.ready = true

		return m, m.layout(true)
	case gotoSectionMsg:
		return m, m.jumpTo(sectionID(msg))
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if cmd := m.clickProjectTab(msg); cmd != nil {
				return m, cmd
			}
		}
		if m.activeView != viewPage {
			return m, nil
		}

		return m.scroll(msg)
	case tea.KeyMsg:
		if m.activeView != viewPage {
			return m, nil
		}

		switch {
		case key.Matches(msg, defaultKeyMap.projPrev):
			return m, m.selectProjectTab(profile.TabFeatured)
		case key.Matches(msg, defaultKeyMap.projNext):
			return m, m.selectProjectTab(profile.TabOpenSource)
		case key.Matches(msg, defaultKeyMap.top):
			m.viewport.GotoTop()

			return m, m.syncActive()
		case key.Matches(msg, defaultKeyMap.bottom):
			m.viewport.GotoBottom()

			return m, m.syncActive()
		}

		return m.scroll(msg)
	}

	return m, nil
}

// scroll lets the viewport consume the event, then recomputes the active
// section from the new offset. Runs on every scroll event; only the latest
// computation matters.
func (m *pageModel) scroll(msg tea.Msg) (*pageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, tea.Batch(cmd, m.syncActive())
}

func (m *pageModel) clickProjectTab(msg tea.MouseMsg) tea.Cmd {
	if zone.Get(m.featuredZoneID).InBounds(msg) {
		return m.selectProjectTab(profile.TabFeatured)
	}
	if zone.Get(m.openSourceZoneID).InBounds(msg) {
		return m.selectProjectTab(profile.TabOpenSource)
	}

	return nil
}

func (m *pageModel) selectProjectTab(tab profile.ProjectTab) tea.Cmd {
	if m.projectTab == tab {
		return nil
	}
	m.projectTab = tab

	return m.layout(true)
}

// layout renders all sections, records their line offsets and pushes the
// result into the viewport. This is the only place offsets are computed;
// scrolling never re-renders.
func (m *pageModel) layout(keepScroll bool) tea.Cmd {
	if !m.ready {
		return nil
	}

	scroll := m.viewport.YOffset

	blocks := make([]string, 0, len(declaredSections))
	offsets := make([]int, 0, len(declaredSections))
	line := 0
	for _, section := range declaredSections {
		block := m.renderSection(section)
		offsets = append(offsets, line)
		line += lipgloss.Height(block)
		blocks = append(blocks, block)
	}

	m.viewport.SetContent(strings.Join(blocks, "\n"))
	m.tracker.setOffsets(offsets)

	if keepScroll {
		m.viewport.SetYOffset(scroll)
	}

	return m.syncActive()
}

// jumpTo is anchor navigation: scroll the viewport so the section's first
// line sits at the top, then let the tracker confirm the highlight.
func (m *pageModel) jumpTo(id sectionID) tea.Cmd {
	if int(id) >= len(m.tracker.offsets) {
		return nil
	}

	m.viewport.SetYOffset(m.tracker.offsets[id])

	return tea.Batch(setContentView(viewPage), m.syncActive())
}

func (m *pageModel) syncActive() tea.Cmd {
	active := m.tracker.active(m.viewport.YOffset, m.maxScroll())
	if active == m.active {
		return nil
	}
	m.active = active

	return setActiveSection(active)
}

func (m *pageModel) maxScroll() int {
	return max(m.viewport.TotalLineCount()-m.viewport.Height, 0)
}

func (m *pageModel) View() string {
	if !m.ready {
		return ""
	}

	return m.viewport.View()
}
