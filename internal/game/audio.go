package game

// Cue names an audio event the simulation wants played. The core only
// emits cue names; decoding and mixing are the host's business and the
// core never waits on playback.
type Cue string

const (
	CueStart     Cue = "start"
	CueFlap      Cue = "flap"
	CueCoin      Cue = "coin"
	CueBurger    Cue = "burger"
	CueCollision Cue = "collision"
)

// CueSink receives fire-and-forget audio cues.
type CueSink interface {
	Play(cue Cue)
}

// NopCueSink discards all cues. Used when the host has no audio output.
type NopCueSink struct{}

// Play implements CueSink.
func (NopCueSink) Play(Cue) {}
