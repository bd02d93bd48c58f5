package game

import (
	"math/rand"

	"github.com/maxvk/flapmax/internal/config"
	"github.com/maxvk/flapmax/internal/core"
	"github.com/maxvk/flapmax/internal/game/pattern"
	"github.com/maxvk/flapmax/internal/game/pool"
)

// CollectibleKind distinguishes the two pickup types.
type CollectibleKind int

const (
	KindCoin CollectibleKind = iota
	KindBurger
)

// String returns the name of the kind.
func (k CollectibleKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindBurger:
		return "burger"
	default:
		return "unknown"
	}
}

// Collectible is one pooled pickup: a circle in world space with a
// collected flag that must be false whenever the item leaves the pool.
type Collectible struct {
	Kind      CollectibleKind
	Pos       core.Vec2
	Radius    float64
	Collected bool
}

// reset clears transient state before the item re-enters the pool.
func (c *Collectible) reset() {
	c.Pos = core.Vec2{}
	c.Collected = false
}

// CollectibleSpawner owns the coin and burger pools and applies the
// per-segment spawn policy.
type CollectibleSpawner struct {
	coins   *pool.Pool[Collectible]
	burgers *pool.Pool[Collectible]
	active  []*Collectible
	rng     *rand.Rand
	cfg     config.CollectiblesConfig
	unit    float64
	opening []pattern.Pattern
	full    []pattern.Pattern
}

// NewCollectibleSpawner creates a spawner with the given pattern unit
// scale. Fails if the configured pattern sets contain unknown names.
func NewCollectibleSpawner(cfg config.CollectiblesConfig, unit float64, rng *rand.Rand) (*CollectibleSpawner, error) {
	opening, err := cfg.OpeningSet()
	if err != nil {
		return nil, err
	}
	full, err := cfg.FullSet()
	if err != nil {
		return nil, err
	}

	return &CollectibleSpawner{
		coins: pool.New(
			func() *Collectible { return &Collectible{Kind: KindCoin} },
			(*Collectible).reset,
		),
		burgers: pool.New(
			func() *Collectible { return &Collectible{Kind: KindBurger} },
			(*Collectible).reset,
		),
		rng:     rng,
		cfg:     cfg,
		unit:    unit,
		opening: opening,
		full:    full,
	}, nil
}

// SpawnPattern places one collectible of the requested kind at every
// offset of the pattern around base. Pools grow on demand.
func (s *CollectibleSpawner) SpawnPattern(base core.Vec2, p pattern.Pattern, kind CollectibleKind) {
	for _, offset := range pattern.Offsets(p, s.unit) {
		s.spawnOne(base.Add(offset), kind)
	}
}

func (s *CollectibleSpawner) spawnOne(pos core.Vec2, kind CollectibleKind) *Collectible {
	var c *Collectible
	if kind == KindBurger {
		c = s.burgers.Acquire()
		c.Radius = s.cfg.BurgerRadius
	} else {
		c = s.coins.Acquire()
		c.Radius = s.cfg.CoinRadius
	}
	c.Pos = pos
	c.Collected = false
	s.active = append(s.active, c)
	return c
}

// PlaceForSegment applies the spawn policy for obstacle segment n
// (1-based), anchored at the segment's gap center:
//   - the first GuaranteedSegments segments always get a coin pattern
//     from the opening set,
//   - every BurgerEvery-th segment gets exactly one burger and no coins,
//   - any other segment has a 1-in-SkipChance chance of nothing,
//     otherwise a coin pattern from the full set.
func (s *CollectibleSpawner) PlaceForSegment(gapCenter core.Vec2, n int) {
	switch {
	case n <= s.cfg.GuaranteedSegments:
		p := s.opening[s.rng.Intn(len(s.opening))]
		s.SpawnPattern(gapCenter, p, KindCoin)
	case n%s.cfg.BurgerEvery == 0:
		s.spawnOne(gapCenter, KindBurger)
	default:
		if s.rng.Intn(s.cfg.SkipChance) == 0 {
			return
		}
		p := s.full[s.rng.Intn(len(s.full))]
		s.SpawnPattern(gapCenter, p, KindCoin)
	}
}

// Collect recycles a picked-up collectible.
func (s *CollectibleSpawner) Collect(c *Collectible) error {
	c.Collected = true
	if err := s.release(c); err != nil {
		return err
	}
	for i, item := range s.active {
		if item == c {
			s.active = append(s.active[:i], s.active[i+1:]...)
			break
		}
	}
	return nil
}

func (s *CollectibleSpawner) release(c *Collectible) error {
	if c.Kind == KindBurger {
		return s.burgers.Release(c)
	}
	return s.coins.Release(c)
}

// Scroll moves every active collectible left by dx.
func (s *CollectibleSpawner) Scroll(dx float64) {
	for _, c := range s.active {
		c.Pos.X -= dx
	}
}

// RecycleOffscreen returns every collectible left of leftBound to its
// pool. Reports how many were recycled.
func (s *CollectibleSpawner) RecycleOffscreen(leftBound float64) (int, error) {
	recycled := 0
	kept := s.active[:0]
	for _, c := range s.active {
		if c.Pos.X+c.Radius < leftBound {
			if err := s.release(c); err != nil {
				return recycled, err
			}
			recycled++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
	return recycled, nil
}

// Clear releases every active collectible back to its pool.
func (s *CollectibleSpawner) Clear() error {
	for _, c := range s.active {
		if err := s.release(c); err != nil {
			return err
		}
	}
	s.active = s.active[:0]
	return nil
}

// Reset clears the active list and reseeds the RNG.
func (s *CollectibleSpawner) Reset(rng *rand.Rand) error {
	if err := s.Clear(); err != nil {
		return err
	}
	s.rng = rng
	return nil
}

// Active returns the live collectibles in spawn order.
func (s *CollectibleSpawner) Active() []*Collectible {
	return s.active
}

// CoinPool exposes the coin pool for introspection in tests.
func (s *CollectibleSpawner) CoinPool() *pool.Pool[Collectible] {
	return s.coins
}

// BurgerPool exposes the burger pool for introspection in tests.
func (s *CollectibleSpawner) BurgerPool() *pool.Pool[Collectible] {
	return s.burgers
}
