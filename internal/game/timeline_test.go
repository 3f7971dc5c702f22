package game

import "testing"

// TestCanPlaceBeforeOlderTrack ensures insertion at the head is valid when
// the new track predates the first element.
func TestCanPlaceBeforeOlderTrack(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1980}}
	track := Track{ID: "b", Year: 1975}

	if !tl.CanPlace(track, 0) {
		t.Fatal("expected placement at index 0 to be valid")
	}

	next := tl.insert(track, 0)
	if len(next) != 2 || next[0].Year != 1975 || next[1].Year != 1980 {
		t.Fatalf("unexpected timeline after insert: %+v", next)
	}
}

// TestCanPlaceBetweenTracks ensures placement between two neighbors obeys
// both comparisons.
func TestCanPlaceBetweenTracks(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1980}, {ID: "b", Year: 1990}}

	if !tl.CanPlace(Track{ID: "c", Year: 1985}, 1) {
		t.Fatal("expected placement at index 1 to be valid")
	}
}

// TestCanPlaceRejectsOutOfOrder ensures a chronologically wrong index is
// rejected without touching the timeline.
func TestCanPlaceRejectsOutOfOrder(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1980}, {ID: "b", Year: 1990}}

	if tl.CanPlace(Track{ID: "c", Year: 2000}, 0) {
		t.Fatal("expected placement at index 0 to be invalid")
	}
	if len(tl) != 2 {
		t.Fatalf("timeline mutated by validation: %+v", tl)
	}
}

// TestCanPlaceAcceptsEqualYears ensures ties are accepted on both sides.
func TestCanPlaceAcceptsEqualYears(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1985}}
	track := Track{ID: "b", Year: 1985}

	if !tl.CanPlace(track, 0) {
		t.Fatal("expected tie placement before to be valid")
	}
	if !tl.CanPlace(track, 1) {
		t.Fatal("expected tie placement after to be valid")
	}
}

// TestCanPlaceRejectsOutOfRangeIndex ensures indexes outside [0, len] fail.
func TestCanPlaceRejectsOutOfRangeIndex(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1980}}

	if tl.CanPlace(Track{ID: "b", Year: 1990}, -1) {
		t.Fatal("expected negative index to be invalid")
	}
	if tl.CanPlace(Track{ID: "b", Year: 1990}, 2) {
		t.Fatal("expected past-end index to be invalid")
	}
}

// TestCanPlaceAtEnds ensures append and empty-timeline placements work.
func TestCanPlaceAtEnds(t *testing.T) {
	if !(Timeline{}).CanPlace(Track{ID: "a", Year: 1970}, 0) {
		t.Fatal("expected placement into empty timeline to be valid")
	}

	tl := Timeline{{ID: "a", Year: 1980}}
	if !tl.CanPlace(Track{ID: "b", Year: 1990}, 1) {
		t.Fatal("expected append placement to be valid")
	}
}

// TestInsertionIndex ensures the computed index is the first position with
// a year at or past the track's year.
func TestInsertionIndex(t *testing.T) {
	tl := Timeline{{ID: "a", Year: 1980}, {ID: "b", Year: 2000}}

	tcs := []struct {
		year int
		want int
	}{
		{year: 1975, want: 0},
		{year: 1980, want: 0},
		{year: 1995, want: 1},
		{year: 2000, want: 1},
		{year: 2010, want: 2},
	}
	for _, tc := range tcs {
		got := tl.InsertionIndex(Track{ID: "c", Year: tc.year})
		if got != tc.want {
			t.Fatalf("insertion index for %d = %d, want %d", tc.year, got, tc.want)
		}
	}
}

// TestInsertKeepsChronologicalOrder ensures computed insertions preserve
// the sort invariant.
func TestInsertKeepsChronologicalOrder(t *testing.T) {
	tl := Timeline{}
	for _, year := range []int{1990, 1970, 2010, 1990, 1960} {
		track := Track{ID: "t", Year: year}
		tl = tl.insert(track, tl.InsertionIndex(track))
		if !tl.IsChronological() {
			t.Fatalf("timeline out of order after inserting %d: %+v", year, tl)
		}
	}
	if len(tl) != 5 {
		t.Fatalf("expected 5 tracks, got %d", len(tl))
	}
}
