package ui

const (
	// trackerHeaderOffset accounts for the persistent header covering the top
	// of the viewport, plus a small buffer so a section counts as active
	// slightly before its first line reaches the very top.
	trackerHeaderOffset = 2
	// trackerBottomEpsilon treats anything this close to the maximum scroll
	// extent as "at the bottom".
	trackerBottomEpsilon = 1
)

// sectionTracker maps a scroll position to the active section. Offsets are
// recorded once per layout pass (render or resize), not per scroll event, so
// they can be briefly stale after a content change. That is accepted.
type sectionTracker struct {
	offsets       []int
	headerOffset  int
	bottomEpsilon int
}

func newSectionTracker() sectionTracker {
	return sectionTracker{
		headerOffset:  trackerHeaderOffset,
		bottomEpsilon: trackerBottomEpsilon,
	}
}

// setOffsets records the line offset of each declared section within the
// rendered page, in declared order.
func (t *sectionTracker) setOffsets(offsets []int) {
	t.offsets = offsets
}

// active returns the section for the given scroll position. The last
// declared section whose offset has been scrolled past wins. When the
// viewport sits at (or within epsilon of) the maximum scroll extent the
// final section is forced active, since a short trailing section may never
// reach the comparison threshold on its own.
func (t sectionTracker) active(scroll int, maxScroll int) sectionID {
	if len(t.offsets) == 0 {
		return declaredSections[0].id
	}

	if maxScroll > 0 && scroll >= maxScroll-t.bottomEpsilon {
		return lastSection()
	}

	position := scroll + t.headerOffset
	active := declaredSections[0].id
	for idx, offset := range t.offsets {
		if offset <= position {
			active = sectionID(idx)
		}
	}

	return active
}
