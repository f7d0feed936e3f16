package geometry

import "math"

// Canvas interaction constants.
const (
	GridStepPx       = 10.0
	CloseThresholdPx = 15.0
)

// SnapToGrid rounds both coordinates to the nearest multiple of step.
func SnapToGrid(p Point, step float64) Point {
	if step <= 0 {
		return p
	}
	p.X = math.Round(p.X/step) * step
	p.Y = math.Round(p.Y/step) * step
	return p
}

// ClosesPolygon reports whether a click at p should close the path instead of
// adding a vertex: the path already has more than two points and p lands within
// threshold pixels of the first one.
func ClosesPolygon(points []Point, p Point, threshold float64) bool {
	if len(points) <= 2 {
		return false
	}
	return Distance(p, points[0]) < threshold
}

// LockAxis keeps p on the dominant axis relative to prev, producing an
// orthogonal segment.
func LockAxis(prev, p Point) Point {
	dx := math.Abs(p.X - prev.X)
	dy := math.Abs(p.Y - prev.Y)
	if dx > dy {
		p.Y = prev.Y
	} else {
		p.X = prev.X
	}
	return p
}
