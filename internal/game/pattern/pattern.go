// Package pattern generates the geometric layouts used to place
// collectibles. A pattern is a pure mapping from an identifier and a
// device unit scale to an ordered list of world-space offsets; there is
// no state, and identical inputs always produce identical output.
package pattern

import (
	"fmt"
	"math"

	"github.com/maxvk/flapmax/internal/core"
)

// Pattern identifies a collectible layout.
type Pattern int

const (
	Single Pattern = iota
	VLine2
	VLine3
	VLine4
	VLine5
	HLine2
	HLine3
	HLine4
	HLine5
	Triangle
	Square
	Cross
	Star
	DiagonalUp
	DiagonalDown
	Circle
	patternCount // Sentinel for counting types
)

// circlePoints is the number of samples for the Circle pattern,
// evenly spaced by angle 2*pi/8.
const circlePoints = 8

// String returns the configuration name of the pattern.
func (p Pattern) String() string {
	switch p {
	case Single:
		return "single"
	case VLine2:
		return "vline2"
	case VLine3:
		return "vline3"
	case VLine4:
		return "vline4"
	case VLine5:
		return "vline5"
	case HLine2:
		return "hline2"
	case HLine3:
		return "hline3"
	case HLine4:
		return "hline4"
	case HLine5:
		return "hline5"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Cross:
		return "cross"
	case Star:
		return "star"
	case DiagonalUp:
		return "diagonal_up"
	case DiagonalDown:
		return "diagonal_down"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// Parse resolves a configuration name to a Pattern.
func Parse(name string) (Pattern, error) {
	for p := Single; p < patternCount; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return Single, fmt.Errorf("pattern: unknown pattern %q", name)
}

// All returns every pattern in declaration order.
func All() []Pattern {
	out := make([]Pattern, 0, patternCount)
	for p := Single; p < patternCount; p++ {
		out = append(out, p)
	}
	return out
}

// Opening returns the reduced set used for guaranteed early-game
// spawns. Kept distinct from the full set on purpose; both are
// overridable from configuration.
func Opening() []Pattern {
	return []Pattern{Single, VLine3, HLine3, Triangle, Square, Cross}
}

// Offsets returns the ordered offsets of a pattern, scaled by unit.
// All geometry scales linearly with unit so spacing stays proportional
// across device size classes.
func Offsets(p Pattern, unit float64) []core.Vec2 {
	switch p {
	case Single:
		return []core.Vec2{{X: 0, Y: 0}}
	case VLine2, VLine3, VLine4, VLine5:
		return line(int(p-VLine2)+2, unit, false)
	case HLine2, HLine3, HLine4, HLine5:
		return line(int(p-HLine2)+2, unit, true)
	case Triangle:
		return []core.Vec2{
			{X: 0, Y: unit},
			{X: -unit, Y: -unit},
			{X: unit, Y: -unit},
		}
	case Square:
		return []core.Vec2{
			{X: -unit, Y: unit},
			{X: unit, Y: unit},
			{X: -unit, Y: -unit},
			{X: unit, Y: -unit},
		}
	case Cross:
		return []core.Vec2{
			{X: 0, Y: 0},
			{X: -unit, Y: 0},
			{X: unit, Y: 0},
			{X: 0, Y: unit},
			{X: 0, Y: -unit},
		}
	case Star:
		return []core.Vec2{
			{X: 0, Y: 0},
			{X: -unit, Y: 0},
			{X: unit, Y: 0},
			{X: 0, Y: unit},
			{X: 0, Y: -unit},
			{X: -unit, Y: unit},
			{X: unit, Y: unit},
			{X: -unit, Y: -unit},
			{X: unit, Y: -unit},
		}
	case DiagonalUp:
		return []core.Vec2{
			{X: -unit, Y: -unit},
			{X: 0, Y: 0},
			{X: unit, Y: unit},
		}
	case DiagonalDown:
		return []core.Vec2{
			{X: -unit, Y: unit},
			{X: 0, Y: 0},
			{X: unit, Y: -unit},
		}
	case Circle:
		out := make([]core.Vec2, 0, circlePoints)
		for i := 0; i < circlePoints; i++ {
			angle := 2 * math.Pi * float64(i) / circlePoints
			out = append(out, core.Vec2{
				X: unit * math.Cos(angle),
				Y: unit * math.Sin(angle),
			})
		}
		return out
	default:
		return []core.Vec2{{X: 0, Y: 0}}
	}
}

// line places n points in a centered row or column, one unit apart.
func line(n int, unit float64, horizontal bool) []core.Vec2 {
	out := make([]core.Vec2, 0, n)
	for i := 0; i < n; i++ {
		d := (float64(i) - float64(n-1)/2) * unit
		if horizontal {
			out = append(out, core.Vec2{X: d, Y: 0})
		} else {
			out = append(out, core.Vec2{X: 0, Y: d})
		}
	}
	return out
}
