package shared

import (
	"fmt"
	"math"
)

// Position is an immutable point in world space
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPosition creates a position from its three coordinates
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// DistanceTo calculates Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	dz := other.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsFinite reports whether every coordinate is a real number
func (p Position) IsFinite() bool {
	for _, c := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}

// FindNearestPosition returns the index of the position closest to from and its distance.
// Ties keep the first minimum in slice order. Returns -1 and 0 if targets is empty.
// A non-finite from makes every distance NaN or infinite; callers should check IsFinite first.
func FindNearestPosition(from Position, targets []Position) (int, float64) {
	if len(targets) == 0 {
		return -1, 0
	}

	nearest := 0
	minDistance := from.DistanceTo(targets[0])

	for i, target := range targets[1:] {
		distance := from.DistanceTo(target)
		if distance < minDistance {
			minDistance = distance
			nearest = i + 1
		}
	}

	return nearest, minDistance
}
