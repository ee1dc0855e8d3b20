package citymap

import (
	"fmt"
	"math"
)

// City is a point in 3-D space identified by its index in the graph.
// Z is the elevation; generators use it to skew asymmetric costs.
type City struct {
	ID int
	X  float64
	Y  float64
	Z  float64
}

// String renders the city as "city<ID> (x, y, z)" with two decimals.
func (c City) String() string {
	return fmt.Sprintf("city%d (%.2f, %.2f, %.2f)", c.ID, c.X, c.Y, c.Z)
}

// Distance returns the straight-line 3-D distance between a and b.
// Complexity: O(1).
func Distance(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
