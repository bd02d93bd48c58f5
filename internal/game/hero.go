package game

import "github.com/maxvk/flapmax/internal/core"

// Hero is the player-controlled entity: a fixed-X hitbox with vertical
// velocity and a stamina reserve that gates the flap action. There is
// exactly one Hero per session.
type Hero struct {
	Pos     core.Vec2 // Center position in world space
	Vel     float64   // Vertical velocity, positive = up
	Stamina float64
	W, H    float64
}

// Rect returns the hero's world-space collision box.
func (h *Hero) Rect() core.RectF {
	return core.NewRectF(h.Pos.X-h.W/2, h.Pos.Y-h.H/2, h.W, h.H)
}

// Flap zeroes the vertical velocity, applies the upward impulse and
// consumes stamina. It is a no-op once stamina is exhausted.
// Returns true if the flap happened.
func (h *Hero) Flap(impulse, cost float64) bool {
	if h.Stamina <= 0 {
		return false
	}
	h.Vel = impulse
	h.Stamina -= cost
	if h.Stamina < 0 {
		h.Stamina = 0
	}
	return true
}

// Integrate applies one tick of gravity and advances the vertical
// position. Fall speed is clamped to the configured terminal velocity.
func (h *Hero) Integrate(gravity, maxFallSpeed float64) {
	h.Vel += gravity
	if h.Vel < -maxFallSpeed {
		h.Vel = -maxFallSpeed
	}
	h.Pos.Y += h.Vel
}

// Deplete reduces stamina by the passive per-tick amount, clamped at
// zero. Returns the remaining stamina.
func (h *Hero) Deplete(amount float64) float64 {
	h.Stamina -= amount
	if h.Stamina < 0 {
		h.Stamina = 0
	}
	return h.Stamina
}

// Restore refills stamina to the given maximum.
func (h *Hero) Restore(max float64) {
	h.Stamina = max
}

// ClampCeiling holds the hero inside the world when it flies above the
// top edge. Touching the ceiling is not fatal, unlike the floor.
func (h *Hero) ClampCeiling(worldH float64) {
	if top := h.Pos.Y + h.H/2; top > worldH {
		h.Pos.Y = worldH - h.H/2
		if h.Vel > 0 {
			h.Vel = 0
		}
	}
}
