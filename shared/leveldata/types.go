// Package leveldata parses arena files authored in Tiled. It has no
// dependencies on ebitengine or donburi, so the headless simulator and tests
// can load arenas too.
package leveldata

// Arena is an arena converted to world units (meters). Tiled's X axis maps
// to world X and its Y axis maps to world Z.
type Arena struct {
	Name      string
	Width     float64
	Depth     float64
	Blocks    []Box
	Platforms []Platform
	Triggers  []Box
	Spawns    []Spawn
}

// Box is an axis aligned block: an XZ footprint raised from Base to
// Base+Height.
type Box struct {
	Name         string
	X, Z         float64
	Width, Depth float64
	Base, Height float64
	Layer        int
}

// Platform is a block that rises Travel meters above its base and back,
// taking Duration seconds each way.
type Platform struct {
	Box
	Travel   float64
	Duration float64
}

// Spawn is a player start position. Y is the height of the feet.
type Spawn struct {
	X, Y, Z float64
	Yaw     float64
	Index   int
}
