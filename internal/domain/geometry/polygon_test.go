package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func square(side float64) []Point {
	return []Point{
		{X: 0, Y: 0, ID: 1},
		{X: side, Y: 0, ID: 2},
		{X: side, Y: side, ID: 3},
		{X: 0, Y: side, ID: 4},
	}
}

func TestPolygonAreaPx_Square(t *testing.T) {
	if got := PolygonAreaPx(square(100)); math.Abs(got-10000) > eps {
		t.Fatalf("expected 10000, got %v", got)
	}
}

func TestPolygonAreaPx_TooFewPoints(t *testing.T) {
	cases := [][]Point{
		nil,
		{{X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}
	for _, pts := range cases {
		if got := PolygonAreaPx(pts); got != 0 {
			t.Fatalf("expected 0 for %d points, got %v", len(pts), got)
		}
	}
}

func TestPolygonAreaPx_RotationInvariant(t *testing.T) {
	pts := []Point{{X: 3, Y: 4}, {X: 5, Y: 11}, {X: 12, Y: 8}, {X: 9, Y: 5}, {X: 5, Y: 6}}
	want := PolygonAreaPx(pts)
	if math.Abs(want-30) > eps {
		t.Fatalf("expected 30, got %v", want)
	}

	for shift := 1; shift < len(pts); shift++ {
		rotated := append(append([]Point{}, pts[shift:]...), pts[:shift]...)
		if got := PolygonAreaPx(rotated); math.Abs(got-want) > eps {
			t.Fatalf("rotation %d: expected %v, got %v", shift, want, got)
		}
	}
}

func TestPolygonAreaPx_WindingInsensitive(t *testing.T) {
	pts := square(40)
	reversed := make([]Point, len(pts))
	for i := range pts {
		reversed[len(pts)-1-i] = pts[i]
	}
	if a, b := PolygonAreaPx(pts), PolygonAreaPx(reversed); math.Abs(a-b) > eps {
		t.Fatalf("winding changed area: %v vs %v", a, b)
	}
}

func TestPolygonAreaPx_SelfIntersectingUsesShoelaceSum(t *testing.T) {
	// bow-tie: the two lobes cancel out
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	if got := PolygonAreaPx(pts); got != 0 {
		t.Fatalf("expected 0 for symmetric bow-tie, got %v", got)
	}
}

func TestAreaM2_ScaledSquare(t *testing.T) {
	cases := []struct {
		side, scale float64
	}{
		{150, 15},
		{100, 20},
		{37, 7.5},
	}
	for _, tc := range cases {
		want := (tc.side / tc.scale) * (tc.side / tc.scale)
		if got := AreaM2(square(tc.side), tc.scale); math.Abs(got-want) > 1e-9 {
			t.Fatalf("side=%v scale=%v: expected %v, got %v", tc.side, tc.scale, want, got)
		}
	}
}

func TestAreaM2_NonPositiveScale(t *testing.T) {
	if got := AreaM2(square(10), 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := AreaM2(square(10), -3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestEdgeLengthsPx(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}

	open := EdgeLengthsPx(pts, false)
	if len(open) != 2 || open[0] != 3 || open[1] != 4 {
		t.Fatalf("unexpected open edges: %v", open)
	}

	closed := EdgeLengthsPx(pts, true)
	if len(closed) != 3 || math.Abs(closed[2]-5) > eps {
		t.Fatalf("unexpected closed edges: %v", closed)
	}

	if got := PerimeterPx(pts, true); math.Abs(got-12) > eps {
		t.Fatalf("expected perimeter 12, got %v", got)
	}
	if EdgeLengthsPx(pts[:1], true) != nil {
		t.Fatalf("expected no edges for a single point")
	}
}

func TestEdgeLengthsPx_TwoPointsStayOpen(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 30, Y: 40}}
	edges := EdgeLengthsPx(pts, true)
	if len(edges) != 1 || math.Abs(edges[0]-50) > eps {
		t.Fatalf("expected a single 50px edge, got %v", edges)
	}
	if got := PerimeterPx(pts, true); math.Abs(got-50) > eps {
		t.Fatalf("expected perimeter 50, got %v", got)
	}
}
