package game

import "github.com/maxvk/flapmax/internal/core"

// Snapshot is the read-back view of one tick: everything a host needs
// to draw the world or mirror it elsewhere. Values only, no live
// pointers into pooled storage.
type Snapshot struct {
	Tick        int
	Hero        core.Vec2
	HeroVel     float64
	Stamina     float64
	MainScore   int
	CoinScore   int
	BurgerScore int
	GameOver    bool
	Reason      GameOverReason
	PoleSets    []PoleSetSnapshot
	Items       []CollectibleSnapshot
}

// PoleSetSnapshot is one obstacle segment's drawable state.
type PoleSetSnapshot struct {
	X          float64
	GapCenterY float64
	W          float64
	GapH       float64
	Scored     bool
}

// CollectibleSnapshot is one pickup's drawable state.
type CollectibleSnapshot struct {
	Kind   CollectibleKind
	Pos    core.Vec2
	Radius float64
}

// Snapshot captures the current state by value.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tickCount,
		Hero:        g.hero.Pos,
		HeroVel:     g.hero.Vel,
		Stamina:     g.hero.Stamina,
		MainScore:   g.mainScore,
		CoinScore:   g.coinScore,
		BurgerScore: g.burgerScore,
		GameOver:    g.gameOver,
		Reason:      g.reason,
	}

	for _, ps := range g.obstacles.Active() {
		snap.PoleSets = append(snap.PoleSets, PoleSetSnapshot{
			X:          ps.X,
			GapCenterY: ps.GapCenterY,
			W:          ps.W,
			GapH:       ps.GapH,
			Scored:     ps.Scored,
		})
	}
	for _, c := range g.collectibles.Active() {
		snap.Items = append(snap.Items, CollectibleSnapshot{
			Kind:   c.Kind,
			Pos:    c.Pos,
			Radius: c.Radius,
		})
	}
	return snap
}
