package scoreboard

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/maxvk/flapmax/internal/storage"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestEverythingQualifiesOnEmptyBoard(t *testing.T) {
	b := newTestBoard(t)

	ok, err := b.IsQualifying(0)
	if err != nil {
		t.Fatalf("IsQualifying() failed: %v", err)
	}
	if !ok {
		t.Error("a score of 0 should qualify on an empty board")
	}
}

func TestQualifyingAgainstFullBoard(t *testing.T) {
	b := newTestBoard(t)

	// Fill all places with scores 10..100.
	for i := 1; i <= Capacity; i++ {
		if err := b.Submit(Entry{Name: "p", MainScore: i * 10}); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	cases := []struct {
		score int
		want  bool
	}{
		{5, false},  // below last place
		{10, false}, // equal to last place, no place earned
		{11, true},  // beats last place
		{200, true}, // beats first place
	}
	for _, tc := range cases {
		got, err := b.IsQualifying(tc.score)
		if err != nil {
			t.Fatalf("IsQualifying(%d) failed: %v", tc.score, err)
		}
		if got != tc.want {
			t.Errorf("IsQualifying(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestTopIsCappedAtCapacity(t *testing.T) {
	b := newTestBoard(t)

	for i := 1; i <= Capacity+5; i++ {
		b.Submit(Entry{Name: "p", MainScore: i})
	}

	top, err := b.Top(100)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != Capacity {
		t.Fatalf("Top(100) returned %d entries, expected %d", len(top), Capacity)
	}
	if top[0].MainScore != Capacity+5 {
		t.Errorf("best score = %d, expected %d", top[0].MainScore, Capacity+5)
	}
	if top[0].Rank != 1 || top[len(top)-1].Rank != Capacity {
		t.Errorf("ranks not sequential: first=%d last=%d", top[0].Rank, top[len(top)-1].Rank)
	}
	for i := 1; i < len(top); i++ {
		if top[i].MainScore > top[i-1].MainScore {
			t.Errorf("board out of order at place %d", i+1)
		}
	}
}

func TestSubmitRecordsAllScores(t *testing.T) {
	b := newTestBoard(t)

	err := b.Submit(Entry{Name: "max", MainScore: 7, CoinScore: 31, BurgerScore: 2})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	top, err := b.Top(1)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}
	got := top[0]
	if got.Name != "max" || got.MainScore != 7 || got.CoinScore != 31 || got.BurgerScore != 2 {
		t.Errorf("entry round-trip mismatch: %+v", got)
	}
}

func TestNameSanitizing(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", DefaultName},
		{"   ", DefaultName},
		{"  max  ", "max"},
		{"exactlytwelve", "exactlytwelv"}, // 13 runes, truncated to 12
		{strings.Repeat("x", 40), strings.Repeat("x", MaxNameLen)},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
