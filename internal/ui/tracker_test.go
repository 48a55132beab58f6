package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerActive(t *testing.T) {
	tracker := newSectionTracker()
	require.Equal(t, declaredSections[0].id, tracker.active(10, 100))

	// Offsets as produced by a layout pass, one per declared section.
	tracker.setOffsets([]int{0, 12, 30, 44, 60, 78, 95})

	require.Equal(t, sectionAbout, tracker.active(0, 100))
	require.Equal(t, sectionAbout, tracker.active(9, 100))
	// headerOffset pulls the boundary up slightly.
	require.Equal(t, sectionProjects, tracker.active(10, 100))
	require.Equal(t, sectionProjects, tracker.active(27, 100))
	require.Equal(t, sectionCertificates, tracker.active(28, 100))
	require.Equal(t, sectionEducation, tracker.active(80, 100))
}

func TestTrackerForcesLastSectionAtBottom(t *testing.T) {
	tracker := newSectionTracker()
	// The last section starts too close to the end to ever satisfy the
	// offset comparison on its own.
	tracker.setOffsets([]int{0, 12, 30, 44, 60, 78, 99})

	require.Equal(t, sectionEducation, tracker.active(79, 100))
	require.Equal(t, sectionContact, tracker.active(99, 100))
	// Within epsilon of max scroll counts as bottom.
	require.Equal(t, sectionContact, tracker.active(100, 100))
}

func TestTrackerNoContent(t *testing.T) {
	tracker := newSectionTracker()
	tracker.setOffsets([]int{0, 5})

	// Content shorter than the viewport never forces the last section.
	require.Equal(t, sectionAbout, tracker.active(0, 0))
}
