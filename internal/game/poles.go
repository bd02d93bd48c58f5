package game

import (
	"fmt"
	"math/rand"

	"github.com/maxvk/flapmax/internal/config"
	"github.com/maxvk/flapmax/internal/core"
	"github.com/maxvk/flapmax/internal/game/pool"
)

// PoleSet is one obstacle segment: a top and bottom pole separated by a
// fixed-height gap, plus an invisible score zone centered in the gap.
// Geometry fields are written on spawn and zeroed on recycle.
type PoleSet struct {
	X          float64 // Left edge
	GapCenterY float64
	W          float64
	GapH       float64
	FloorY     float64 // Bottom pole grows up from here
	CeilY      float64 // Top pole grows down from here
	Scored     bool    // One score per pass through the zone
}

// Right returns the x-coordinate of the segment's right edge.
func (p *PoleSet) Right() float64 {
	return p.X + p.W
}

// GapCenter returns the center of the gap, the anchor point for
// collectible patterns.
func (p *PoleSet) GapCenter() core.Vec2 {
	return core.Vec2{X: p.X + p.W/2, Y: p.GapCenterY}
}

// TopRect returns the collision box of the upper pole.
func (p *PoleSet) TopRect() core.RectF {
	bottom := p.GapCenterY + p.GapH/2
	return core.NewRectF(p.X, bottom, p.W, p.CeilY-bottom)
}

// BottomRect returns the collision box of the lower pole.
func (p *PoleSet) BottomRect() core.RectF {
	top := p.GapCenterY - p.GapH/2
	return core.NewRectF(p.X, p.FloorY, p.W, top-p.FloorY)
}

// ZoneRect returns the score trigger region spanning the gap.
func (p *PoleSet) ZoneRect() core.RectF {
	return core.NewRectF(p.X, p.GapCenterY-p.GapH/2, p.W, p.GapH)
}

// reset clears all transient state before the set re-enters the pool.
func (p *PoleSet) reset() {
	*p = PoleSet{}
}

// ObstacleSpawner owns the PoleSet pool and the active segment list.
// Segments are appended in spawn order; since everything scrolls at the
// same speed the last element is always the rightmost.
type ObstacleSpawner struct {
	pool      *pool.Pool[PoleSet]
	active    []*PoleSet
	rng       *rand.Rand
	cfg       config.ObstaclesConfig
	worldH    float64
	minGapY   float64
	maxGapY   float64
	poleCount int // Segments spawned this session, drives the burger cadence
}

// NewObstacleSpawner creates a spawner for a world of the given height.
// It fails when the configured gap plus margins cannot fit between the
// floor and the ceiling; that is a configuration precondition, and the
// session must refuse to start rather than produce nonsense positions.
func NewObstacleSpawner(cfg config.ObstaclesConfig, worldH float64, rng *rand.Rand) (*ObstacleSpawner, error) {
	minGapY := cfg.FloorHeight + cfg.GapHeight/2 + cfg.Margin
	maxGapY := worldH - cfg.GapHeight/2 - cfg.Margin
	if minGapY > maxGapY {
		return nil, fmt.Errorf("game: world height %.1f cannot fit gap %.1f with margin %.1f above floor %.1f",
			worldH, cfg.GapHeight, cfg.Margin, cfg.FloorHeight)
	}

	return &ObstacleSpawner{
		pool:    pool.New(func() *PoleSet { return &PoleSet{} }, (*PoleSet).reset),
		rng:     rng,
		cfg:     cfg,
		worldH:  worldH,
		minGapY: minGapY,
		maxGapY: maxGapY,
	}, nil
}

// SpawnAt acquires a segment from the pool and places it with its left
// edge at x and a uniformly random gap center inside the valid band.
// The score zone starts unscored.
func (s *ObstacleSpawner) SpawnAt(x float64) *PoleSet {
	ps := s.pool.Acquire()
	ps.X = x
	ps.W = s.cfg.PoleWidth
	ps.GapH = s.cfg.GapHeight
	ps.FloorY = s.cfg.FloorHeight
	ps.CeilY = s.worldH
	ps.GapCenterY = s.minGapY + s.rng.Float64()*(s.maxGapY-s.minGapY)
	ps.Scored = false

	s.active = append(s.active, ps)
	s.poleCount++
	return ps
}

// NextSpawnX reports whether a new segment is due and where to place
// it. The pipeline stays populated one spacing interval ahead of the
// right world edge: a segment is due as soon as the rightmost active
// set has scrolled into view.
func (s *ObstacleSpawner) NextSpawnX(worldW, spacing float64) (float64, bool) {
	if len(s.active) == 0 {
		return worldW + spacing, true
	}
	rightmost := s.active[len(s.active)-1]
	if rightmost.X < worldW {
		return rightmost.X + spacing, true
	}
	return 0, false
}

// Scroll moves every active segment left by dx.
func (s *ObstacleSpawner) Scroll(dx float64) {
	for _, ps := range s.active {
		ps.X -= dx
	}
}

// RecycleOffscreen returns every segment fully left of leftBound to the
// pool, clearing its scored flag. Reports how many were recycled.
func (s *ObstacleSpawner) RecycleOffscreen(leftBound float64) (int, error) {
	recycled := 0
	kept := s.active[:0]
	for _, ps := range s.active {
		if ps.Right() < leftBound {
			if err := s.pool.Release(ps); err != nil {
				return recycled, err
			}
			recycled++
			continue
		}
		kept = append(kept, ps)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
	return recycled, nil
}

// Clear releases every active segment back to the pool.
func (s *ObstacleSpawner) Clear() error {
	for _, ps := range s.active {
		if err := s.pool.Release(ps); err != nil {
			return err
		}
	}
	s.active = s.active[:0]
	return nil
}

// Reset clears the active list, reseeds the RNG and restarts the
// session segment counter.
func (s *ObstacleSpawner) Reset(rng *rand.Rand) error {
	if err := s.Clear(); err != nil {
		return err
	}
	s.rng = rng
	s.poleCount = 0
	return nil
}

// Active returns the live segments in spawn order.
func (s *ObstacleSpawner) Active() []*PoleSet {
	return s.active
}

// PoleCount returns the number of segments spawned this session.
func (s *ObstacleSpawner) PoleCount() int {
	return s.poleCount
}

// Pool exposes the underlying pool for introspection in tests.
func (s *ObstacleSpawner) Pool() *pool.Pool[PoleSet] {
	return s.pool
}
