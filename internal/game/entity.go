// Package game implements the flapmax simulation core: a fixed-tick
// game loop that scrolls the world, recycles pooled obstacles and
// collectibles, places collectibles in generated patterns, routes
// collisions and tracks score and stamina. The package is pure logic
// with no external dependencies; rendering, input, audio playback and
// score persistence live behind narrow interfaces at the platform edge.
package game

// Category is a collision category bitmask. Each entity kind gets a
// distinct bit so a contact set can be tested in one mask operation.
type Category uint8

const (
	CategoryHero Category = 1 << iota
	CategoryPole
	CategoryCoin
	CategoryBurger
	CategoryFloor
	CategoryScoreZone
)

// String returns the name of a single category bit.
func (c Category) String() string {
	switch c {
	case CategoryHero:
		return "hero"
	case CategoryPole:
		return "pole"
	case CategoryCoin:
		return "coin"
	case CategoryBurger:
		return "burger"
	case CategoryFloor:
		return "floor"
	case CategoryScoreZone:
		return "score_zone"
	default:
		return "unknown"
	}
}

// Has reports whether all bits of other are set in c.
func (c Category) Has(other Category) bool {
	return c&other == other
}
