package engine

// Direction is one of the four move directions. Each direction maps to
// the number of clockwise quarter-turns that bring it to the left
// edge, so a single merge-toward-left routine handles all four.
type Direction int

const (
	DirLeft  Direction = iota // 0 rotations
	DirDown                   // 1 rotation
	DirRight                  // 2 rotations
	DirUp                     // 3 rotations
)

// Rotations returns the clockwise quarter-turns that canonicalize this
// direction to a merge toward the left edge.
func (d Direction) Rotations() int {
	return int(d)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}
