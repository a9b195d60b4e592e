package match

import (
	"testing"
	"time"
)

func TestRecentWindow(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	// Date descending, the repository order.
	matches := []Match{
		{ID: 5, Date: base.AddDate(0, 0, 4)},
		{ID: 4, Date: base.AddDate(0, 0, 3)},
		{ID: 3, Date: base.AddDate(0, 0, 2)},
		{ID: 2, Date: base.AddDate(0, 0, 1)},
		{ID: 1, Date: base},
	}

	window := RecentWindow(matches, 3)
	if len(window) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(window))
	}
	if window[0].ID != 3 || window[1].ID != 4 || window[2].ID != 5 {
		t.Fatalf("expected chronological ids [3 4 5], got [%d %d %d]", window[0].ID, window[1].ID, window[2].ID)
	}
}

func TestRecentWindow_ShorterHistory(t *testing.T) {
	t.Parallel()

	matches := []Match{{ID: 2}, {ID: 1}}

	window := RecentWindow(matches, 5)
	if len(window) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(window))
	}
	if window[0].ID != 1 || window[1].ID != 2 {
		t.Fatalf("expected ids [1 2], got [%d %d]", window[0].ID, window[1].ID)
	}

	if got := RecentWindow(nil, 5); got != nil {
		t.Fatalf("expected nil window for empty history, got %v", got)
	}
}
