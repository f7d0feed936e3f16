package geometry

import "math"

// DefaultScale is the initial pixels-per-meter ratio of a new drawing.
const DefaultScale = 15.0

// Point is a vertex in screen-pixel coordinates. ID is an opaque client key.
type Point struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	ID int64   `json:"id"`
}

// Distance returns the euclidean distance between two points, in pixels.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PolygonAreaPx computes the area of the polygon with the shoelace formula.
// Returns 0 for fewer than 3 points. Self-intersecting paths are not rejected:
// the result is whatever the signed sum yields, made positive.
func PolygonAreaPx(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X * points[j].Y
		sum -= points[j].X * points[i].Y
	}
	return math.Abs(sum) / 2
}

// AreaM2 converts the pixel area to square meters using scale (px per meter).
func AreaM2(points []Point, scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return PolygonAreaPx(points) / (scale * scale)
}

// EdgeLengthsPx returns the length of each segment. A closed path includes the
// edge from the last vertex back to the first; paths of fewer than three
// points are always open.
func EdgeLengthsPx(points []Point, closed bool) []float64 {
	if len(points) < 2 {
		return nil
	}
	if len(points) < 3 {
		closed = false
	}

	count := len(points) - 1
	if closed {
		count = len(points)
	}

	out := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Distance(points[i], points[(i+1)%len(points)]))
	}
	return out
}

// PerimeterPx is the sum of EdgeLengthsPx.
func PerimeterPx(points []Point, closed bool) float64 {
	var total float64
	for _, l := range EdgeLengthsPx(points, closed) {
		total += l
	}
	return total
}
