package game

import (
	"testing"

	"github.com/maxvk/flapmax/internal/config"
	"github.com/maxvk/flapmax/internal/core"
	"github.com/maxvk/flapmax/internal/game/pattern"
)

type recordingCueSink struct {
	cues []Cue
}

func (r *recordingCueSink) Play(c Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingCueSink) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// testGameConfig is the default tuning with progression disabled so
// scroll speed and spacing stay constant throughout a test.
func testGameConfig() config.GameConfig {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false
	return cfg
}

func flapFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	return in
}

func TestNewRejectsShortWorld(t *testing.T) {
	if _, err := New(testGameConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 10, TickRate: 60}); err == nil {
		t.Error("New should fail when the world cannot fit the gap and margins")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testGameConfig()
	cfg.Physics.Gravity = 0.1 // Must be negative
	if _, err := New(cfg, testRuntime(1)); err == nil {
		t.Error("New should fail on an invalid configuration")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []State {
		g, err := New(testGameConfig(), testRuntime(99))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		states := make([]State, 0, 300)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionFlap)
			}
			states = append(states, g.Step(in).State)
		}
		return states
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverge at tick %d: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}

func TestScoreZoneScoresExactlyOnce(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Put a segment right on the hero with the gap centered on it, so
	// the hero sits inside the score zone for several consecutive ticks.
	ps := g.Obstacles().SpawnAt(g.Hero().Pos.X)
	ps.GapCenterY = g.Hero().Pos.Y

	for i := 0; i < 5; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver {
			t.Fatalf("unexpected game over at tick %d: %v", i+1, res.State.Reason)
		}
	}

	if got := g.State().MainScore; got != 1 {
		t.Errorf("main score = %d after 5 ticks in the zone, expected exactly 1", got)
	}
	if !ps.Scored {
		t.Error("segment should be marked scored")
	}
}

func TestPoleContactEndsSession(t *testing.T) {
	var events []GameOverEvent
	g2, err := New(testGameConfig(), testRuntime(1),
		WithGameOverFunc(func(e GameOverEvent) { events = append(events, e) }))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Gap shifted far above the hero: the bottom pole fills the hero's
	// altitude.
	ps := g2.Obstacles().SpawnAt(g2.Hero().Pos.X)
	ps.GapCenterY = 22

	res := g2.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over on pole contact")
	}
	if res.State.Reason != ReasonCollision {
		t.Errorf("game over reason = %v, expected %v", res.State.Reason, ReasonCollision)
	}
	if len(events) != 1 {
		t.Fatalf("game over callback fired %d times, expected once", len(events))
	}
	if events[0].Reason != ReasonCollision {
		t.Errorf("event reason = %v, expected %v", events[0].Reason, ReasonCollision)
	}

	// The session is frozen: further ticks change nothing.
	tick := g2.TickCount()
	after := g2.Step(flapFrame()).State
	if g2.TickCount() != tick {
		t.Error("tick count should not advance after game over")
	}
	if after != res.State {
		t.Errorf("state changed after game over: %+v vs %+v", after, res.State)
	}
	if len(events) != 1 {
		t.Error("game over callback must fire exactly once per session")
	}
}

func TestFloorContactEndsSession(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Free fall with no flaps reaches the floor long before the first
	// segment scrolls in.
	var last State
	for i := 0; i < 60; i++ {
		last = g.Step(core.NewInputFrame()).State
		if last.GameOver {
			break
		}
	}

	if !last.GameOver {
		t.Fatal("free fall should end on the floor")
	}
	if last.Reason != ReasonCollision {
		t.Errorf("game over reason = %v, expected %v", last.Reason, ReasonCollision)
	}
}

func TestOutOfEnergyEndsSession(t *testing.T) {
	cfg := testGameConfig()
	cfg.Stamina.Max = 1.0
	cfg.Stamina.DepletePerTick = 0.25

	var events []GameOverEvent
	g, err := New(cfg, testRuntime(1),
		WithGameOverFunc(func(e GameOverEvent) { events = append(events, e) }))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if res := g.Step(core.NewInputFrame()); res.State.GameOver {
			t.Fatalf("game over too early at tick %d", i)
		}
	}
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("stamina hits zero on tick 4, expected game over")
	}
	if res.State.Reason != ReasonOutOfEnergy {
		t.Errorf("game over reason = %v, expected %v", res.State.Reason, ReasonOutOfEnergy)
	}
	if res.State.Stamina != 0 {
		t.Errorf("stamina = %v at game over, expected 0", res.State.Stamina)
	}
	if len(events) != 1 || events[0].Reason != ReasonOutOfEnergy {
		t.Errorf("unexpected game over events: %+v", events)
	}
}

func TestCoinPickup(t *testing.T) {
	sink := &recordingCueSink{}
	g, err := New(testGameConfig(), testRuntime(1), WithCueSink(sink))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// A single coin directly on the hero.
	g.Collectibles().SpawnPattern(g.Hero().Pos, pattern.Single, KindCoin)

	res := g.Step(core.NewInputFrame())
	if res.State.CoinScore != 1 {
		t.Errorf("coin score = %d, expected 1", res.State.CoinScore)
	}
	if res.State.MainScore != 0 {
		t.Errorf("coin pickup must not touch the main score, got %d", res.State.MainScore)
	}
	if sink.count(CueCoin) != 1 {
		t.Errorf("coin cue played %d times, expected 1", sink.count(CueCoin))
	}
	if g.Collectibles().CoinPool().ActiveCount() != 0 {
		t.Error("picked-up coin should return to the pool")
	}
}

func TestBurgerRestoresStamina(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.Hero().Stamina = 5
	// Segment 5 of the cadence is a single burger at the gap center.
	g.Collectibles().PlaceForSegment(g.Hero().Pos, 5)

	res := g.Step(core.NewInputFrame())
	if res.State.BurgerScore != 1 {
		t.Errorf("burger score = %d, expected 1", res.State.BurgerScore)
	}
	if res.State.Stamina != 20 {
		t.Errorf("stamina = %v after burger, expected full restore to 20", res.State.Stamina)
	}
	if g.Collectibles().BurgerPool().ActiveCount() != 0 {
		t.Error("eaten burger should return to the pool")
	}
}

func TestSpawnCadenceDuringPlay(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(5))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Run long enough for several segments to spawn. Flap every other
	// tick so the hero hugs the ceiling and dies to the first top pole,
	// not to the floor; we only care about spawning here, so stop early
	// if the session ends.
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionFlap)
		}
		g.Step(in)
	}

	if g.Obstacles().PoleCount() < 2 {
		t.Fatalf("only %d segments spawned over 400 ticks", g.Obstacles().PoleCount())
	}

	// The first two segments are guaranteed coin spawns, so coins must
	// have appeared.
	if g.Collectibles().CoinPool().AllocatedCount() == 0 {
		t.Error("the opening segments should have spawned coins")
	}

	if err := g.Err(); err != nil {
		t.Errorf("pool protocol violated during play: %v", err)
	}
}

func TestResetStartsFresh(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(3))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("free fall should have ended the session")
	}

	g.Reset(4)

	st := g.State()
	if st.GameOver || st.Reason != ReasonNone {
		t.Errorf("state after reset: %+v", st)
	}
	if st.MainScore != 0 || st.CoinScore != 0 || st.BurgerScore != 0 {
		t.Errorf("scores should be zero after reset: %+v", st)
	}
	if st.Stamina != 20 {
		t.Errorf("stamina = %v after reset, expected max", st.Stamina)
	}
	if g.TickCount() != 0 {
		t.Errorf("tick count = %d after reset, expected 0", g.TickCount())
	}
	if len(g.Obstacles().Active()) != 0 || len(g.Collectibles().Active()) != 0 {
		t.Error("reset should clear all active entities")
	}
	if g.Hero().Pos.Y != 12 {
		t.Errorf("hero y = %v after reset, expected world center 12", g.Hero().Pos.Y)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g, err := New(testGameConfig(), testRuntime(8))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ps := g.Obstacles().SpawnAt(60)
	g.Collectibles().PlaceForSegment(ps.GapCenter(), 5)

	snap := g.Snapshot()
	if len(snap.PoleSets) != 1 {
		t.Fatalf("snapshot has %d pole sets, expected 1", len(snap.PoleSets))
	}
	if len(snap.Items) != 1 || snap.Items[0].Kind != KindBurger {
		t.Fatalf("snapshot items = %+v, expected one burger", snap.Items)
	}
	if snap.Hero != g.Hero().Pos {
		t.Errorf("snapshot hero = %+v, live hero = %+v", snap.Hero, g.Hero().Pos)
	}

	// Mutating the live world must not show up in the snapshot.
	ps.X = -100
	if snap.PoleSets[0].X == -100 {
		t.Error("snapshot should copy pole state, not alias it")
	}
}

func TestStartCuePlays(t *testing.T) {
	sink := &recordingCueSink{}
	if _, err := New(testGameConfig(), testRuntime(1), WithCueSink(sink)); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if sink.count(CueStart) != 1 {
		t.Errorf("start cue played %d times on New, expected 1", sink.count(CueStart))
	}
}

func TestFlapCuePlaysOnlyWhenFlapHappens(t *testing.T) {
	cfg := testGameConfig()
	cfg.Stamina.Max = 1.0
	cfg.Stamina.DepletePerTick = 0.25
	cfg.Stamina.FlapCost = 1.0

	sink := &recordingCueSink{}
	g, err := New(cfg, testRuntime(1), WithCueSink(sink))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.Step(flapFrame()) // Spends the whole stamina bar
	if sink.count(CueFlap) != 1 {
		t.Fatalf("flap cue played %d times, expected 1", sink.count(CueFlap))
	}
}
