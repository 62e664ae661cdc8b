package geometry

import (
	"math"
	"testing"
)

const tol = 1e-9

func square() []Point {
	return []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
}

func TestCentroidEmpty(t *testing.T) {
	if _, err := Centroid(nil); err != ErrNoPoints {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestCentroid(t *testing.T) {
	c, err := Centroid(square())
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 50 || c.Y != 50 {
		t.Fatalf("centroid = (%g, %g), want (50, 50)", c.X, c.Y)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	pts := square()
	rotated := Rotate(pts, 0)

	a, b := BoundingBoxOf(pts), BoundingBoxOf(rotated)
	if math.Abs(a.Width-b.Width) > tol || math.Abs(a.Height-b.Height) > tol {
		t.Fatalf("bounding box changed under 0 rotation: %+v vs %+v", a, b)
	}
	if math.Abs(Area(pts)-Area(rotated)) > tol {
		t.Fatalf("area changed under 0 rotation")
	}
}

func TestAreaWindingIndependent(t *testing.T) {
	pts := square()
	reversed := make([]Point, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	if a, b := Area(pts), Area(reversed); math.Abs(a-b) > tol {
		t.Fatalf("area depends on winding: %g vs %g", a, b)
	}
}

func TestAreaPreservedUnderRotation(t *testing.T) {
	pts := square()
	for _, deg := range []float64{15, 45, 90, -30, 180, 270} {
		rotated := Rotate(pts, deg)
		if math.Abs(Area(pts)-Area(rotated)) > 1e-6 {
			t.Fatalf("area not preserved under %g degree rotation: %g vs %g",
				deg, Area(pts), Area(rotated))
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	pts := []Point{{100, 50}, {50, 50}, {50, 100}}
	rotated := Rotate(pts, 90)
	// rotation happens about the centroid, so the centroid stays put
	c0, _ := Centroid(pts)
	c1, _ := Centroid(rotated)
	if math.Abs(c0.X-c1.X) > tol || math.Abs(c0.Y-c1.Y) > tol {
		t.Fatalf("centroid moved: (%g,%g) -> (%g,%g)", c0.X, c0.Y, c1.X, c1.Y)
	}
}

func TestBoundingBox(t *testing.T) {
	bb := BoundingBoxOf([]Point{{10, -5}, {40, 25}, {-20, 15}})
	if bb.MinX != -20 || bb.MaxX != 40 || bb.MinY != -5 || bb.MaxY != 25 {
		t.Fatalf("unexpected bounds: %+v", bb)
	}
	if bb.Width != 60 || bb.Height != 30 {
		t.Fatalf("unexpected extent: %+v", bb)
	}
}

func TestAreaSquare(t *testing.T) {
	if a := Area(square()); math.Abs(a-10000) > tol {
		t.Fatalf("square area = %g, want 10000", a)
	}
	if a := Area(square()[:2]); a != 0 {
		t.Fatalf("degenerate area = %g, want 0", a)
	}
}
