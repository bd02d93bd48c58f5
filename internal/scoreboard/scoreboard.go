// Package scoreboard ranks finished runs on top of the storage layer.
// The board keeps a fixed number of places; a run qualifies when the
// board has room or the run beats the current last place.
package scoreboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/maxvk/flapmax/internal/storage"
)

// Capacity is the number of places on the board.
const Capacity = 10

// MaxNameLen bounds the player name recorded with a run.
const MaxNameLen = 12

// DefaultName is used when a qualifying run is submitted without a name.
const DefaultName = "anonymous"

// Entry is one finished run submitted to the board.
type Entry struct {
	Name        string
	MainScore   int
	CoinScore   int
	BurgerScore int
}

// Ranked is one place on the board.
type Ranked struct {
	Rank        int
	Name        string
	MainScore   int
	CoinScore   int
	BurgerScore int
	CreatedAt   time.Time
}

// Board is the high-score table. Safe for single-session use; the
// store underneath handles concurrent processes.
type Board struct {
	store *storage.Store
}

// New creates a board over an open store.
func New(store *storage.Store) *Board {
	return &Board{store: store}
}

// IsQualifying reports whether a run with the given main score earns a
// place on the board.
func (b *Board) IsQualifying(score int) (bool, error) {
	top, err := b.store.TopScores(Capacity)
	if err != nil {
		return false, fmt.Errorf("scoreboard: %w", err)
	}
	if len(top) < Capacity {
		return true, nil
	}
	return score > top[len(top)-1].Score, nil
}

// Submit records a run. The name is trimmed and truncated to
// MaxNameLen; an empty name becomes DefaultName. Runs are recorded
// whether or not they qualify, the board simply never shows them.
func (b *Board) Submit(e Entry) error {
	name := sanitizeName(e.Name)
	if _, err := b.store.SaveScore(name, e.MainScore, e.CoinScore, e.BurgerScore); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}

// Top returns the board's places, best first, at most n entries and
// never more than Capacity.
func (b *Board) Top(n int) ([]Ranked, error) {
	if n <= 0 || n > Capacity {
		n = Capacity
	}
	entries, err := b.store.TopScores(n)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: %w", err)
	}

	ranked := make([]Ranked, 0, len(entries))
	for i, e := range entries {
		ranked = append(ranked, Ranked{
			Rank:        i + 1,
			Name:        e.Name,
			MainScore:   e.Score,
			CoinScore:   e.Coins,
			BurgerScore: e.Burgers,
			CreatedAt:   e.CreatedAt,
		})
	}
	return ranked, nil
}

// HighScore returns the best main score on record, 0 when empty.
func (b *Board) HighScore() (int, error) {
	return b.store.HighScore()
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		runes = runes[:MaxNameLen]
	}
	return string(runes)
}
