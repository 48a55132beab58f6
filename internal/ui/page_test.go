package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/uddipan77/portfolio-tui/internal/config"
	"github.com/uddipan77/portfolio-tui/internal/profile"
)

func newTestPage(t *testing.T) *pageModel {
	t.Helper()
	zone.NewGlobal()

	prof, errLoad := profile.Load("")
	require.NoError(t, errLoad)

	model := newPageModel(config.Config{BaseURL: "https://example.com"}, prof)
	model, _ = model.Update(contentViewPortHeightMsg{contentViewPortHeight: 20, height: 22, width: 80})

	return model
}

func TestLayoutRecordsSectionStartLines(t *testing.T) {
	model := newTestPage(t)
	require.Len(t, model.tracker.offsets, len(declaredSections))

	blocks := make([]string, 0, len(declaredSections))
	for _, section := range declaredSections {
		blocks = append(blocks, model.renderSection(section))
	}
	lines := strings.Split(strings.Join(blocks, "\n"), "\n")

	start := 0
	for idx, section := range declaredSections {
		offset := model.tracker.offsets[idx]
		require.Equal(t, start, offset, "section %s", section.title)

		// The recorded offset must point at the first rendered line of the
		// section's block.
		firstLine, _, _ := strings.Cut(blocks[idx], "\n")
		require.Equal(t, firstLine, lines[offset], "section %s", section.title)

		start += lipgloss.Height(blocks[idx])
	}
}

func TestJumpToLandsOnSectionStart(t *testing.T) {
	model := newTestPage(t)

	cmd := model.jumpTo(sectionProjects)
	require.NotNil(t, cmd)
	require.Equal(t, model.tracker.offsets[sectionProjects], model.viewport.YOffset)

	// The section title and its tab row are visible at the top of the
	// viewport after the jump.
	view := model.viewport.View()
	require.Contains(t, view, "Projects")
	require.Contains(t, view, "Featured")
}
