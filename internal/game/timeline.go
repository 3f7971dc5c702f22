package game

// Timeline is one team's ordered sequence of placed tracks. It is always
// sorted non-decreasingly by year: insertion only succeeds at a
// year-consistent index, so the invariant holds by construction.
type Timeline []Track

// CanPlace reports whether track placed at index keeps the timeline
// chronological. The comparison is non-strict on both sides, so equal
// years are accepted in either order. Indexes outside [0, len] are
// rejected.
func (tl Timeline) CanPlace(track Track, index int) bool {
	if index < 0 || index > len(tl) {
		return false
	}
	if index > 0 && track.Year < tl[index-1].Year {
		return false
	}
	if index < len(tl) && track.Year > tl[index].Year {
		return false
	}
	return true
}

// InsertionIndex returns the first position whose element's year is at
// least the track's year, or len(tl) when every element is older.
func (tl Timeline) InsertionIndex(track Track) int {
	for i, existing := range tl {
		if existing.Year >= track.Year {
			return i
		}
	}
	return len(tl)
}

// insert returns a new timeline with track inserted at index. The caller
// must have validated the index.
func (tl Timeline) insert(track Track, index int) Timeline {
	next := make(Timeline, 0, len(tl)+1)
	next = append(next, tl[:index]...)
	next = append(next, track)
	next = append(next, tl[index:]...)
	return next
}

// IsChronological reports whether the timeline is sorted non-decreasingly
// by year.
func (tl Timeline) IsChronological() bool {
	for i := 1; i < len(tl); i++ {
		if tl[i].Year < tl[i-1].Year {
			return false
		}
	}
	return true
}
