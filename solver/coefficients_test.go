package solver

import (
	"math"
	"testing"
)

func TestDragClampInvariant(t *testing.T) {
	s := NewSolver(DefaultConfig())
	shapes := []ShapeType{Bluff, Circular, Rectangular, Streamlined}
	reynolds := []float64{0, 0.5, 1, 100, 1e4, 2e5, 3.5e5, 5e5, 1e7}
	aspects := []float64{0, 0.1, 0.5, 1, 2.5, 8}
	angles := []float64{-90, -20, -5, 0, 5, 20, 90, 180}

	for _, shape := range shapes {
		for _, re := range reynolds {
			for _, ar := range aspects {
				for _, ang := range angles {
					cd := s.dragCoefficient(shape, re, ar, 0.7, ang, Analysis{})
					if cd < 0.01 || cd > 2.5 {
						t.Fatalf("Cd out of clamp: %g for shape=%v re=%g ar=%g angle=%g",
							cd, shape, re, ar, ang)
					}
					if math.IsNaN(cd) || math.IsInf(cd, 0) {
						t.Fatalf("Cd not finite for shape=%v re=%g ar=%g angle=%g", shape, re, ar, ang)
					}
				}
			}
		}
	}
}

func TestCircularDragCrisisMidpoint(t *testing.T) {
	s := NewSolver(DefaultConfig())
	cd := s.dragCoefficient(Circular, 3.5e5, 1, 0.78, 0, Analysis{})
	if math.Abs(cd-0.75) > 1e-12 {
		t.Fatalf("Cd at the crisis center = %g, want 0.75", cd)
	}
}

func TestCircularDragRegimes(t *testing.T) {
	s := NewSolver(DefaultConfig())
	cases := []struct {
		re   float64
		want float64
	}{
		{0.5, 2.5},  // Stokes value 48 clamps at the ceiling
		{1e3, 1.17}, // laminar plateau
		{1e7, 0.45}, // turbulent recovery: 0.35 + 0.1
	}
	for _, tc := range cases {
		if cd := s.dragCoefficient(Circular, tc.re, 1, 0.78, 0, Analysis{}); math.Abs(cd-tc.want) > 1e-9 {
			t.Fatalf("Cd(re=%g) = %g, want %g", tc.re, cd, tc.want)
		}
	}
}

func TestRectangularDragAspect(t *testing.T) {
	s := NewSolver(DefaultConfig())
	if cd := s.dragCoefficient(Rectangular, 1e6, 1, 1, 0, Analysis{}); math.Abs(cd-2.0) > 1e-12 {
		t.Fatalf("square plate Cd = %g, want 2.0", cd)
	}
	// elongation cuts drag, floor at 1.0
	if cd := s.dragCoefficient(Rectangular, 1e6, 16, 1, 0, Analysis{}); math.Abs(cd-1.0) > 1e-12 {
		t.Fatalf("elongated plate Cd = %g, want 1.0", cd)
	}
	// low-Reynolds penalty on top of the clamped base
	if cd := s.dragCoefficient(Rectangular, 1e3, 1, 1, 0, Analysis{}); math.Abs(cd-2.2) > 1e-9 {
		t.Fatalf("low-Re square plate Cd = %g, want 2.2", cd)
	}
}

func TestStreamlinedDragSymmetryDiscount(t *testing.T) {
	s := NewSolver(DefaultConfig())
	sym := s.dragCoefficient(Streamlined, 1e6, 6, 0.7, 0, Analysis{Symmetric: true})
	asym := s.dragCoefficient(Streamlined, 1e6, 6, 0.7, 0, Analysis{})
	if sym >= asym {
		t.Fatalf("symmetric profile should be cheaper: %g vs %g", sym, asym)
	}
	blunt := s.dragCoefficient(Streamlined, 1e6, 6, 0.7, 0, Analysis{TrailingEdgeAngle: 90})
	if blunt <= asym {
		t.Fatalf("blunt trailing edge should add drag: %g vs %g", blunt, asym)
	}
}

func TestSymmetricStreamlinedZeroAngleHasNoLift(t *testing.T) {
	s := NewSolver(DefaultConfig())
	cl := s.liftCoefficient(Streamlined, 1e6, 6, 0, 0.7, Analysis{Symmetric: true, ThicknessRatio: 0.12})
	if cl != 0 {
		t.Fatalf("Cl = %g, want exactly 0", cl)
	}
}

func TestCompactSymmetricShapesCannotLift(t *testing.T) {
	s := NewSolver(DefaultConfig())
	cl := s.liftCoefficient(Bluff, 1e6, 1, 5, 0.7, Analysis{})
	if cl != 0 {
		t.Fatalf("compact uncambered shape at small angle: Cl = %g, want 0", cl)
	}
}

func TestAirfoilLiftLinearRegion(t *testing.T) {
	s := NewSolver(DefaultConfig())
	g := Analysis{Symmetric: true, ThicknessRatio: 0.12}
	// stall = 12 + 20*0.12 = 14.4, so 5 degrees sits in the linear region
	ar := 6.0
	want := 0.09 * (ar / (ar + 2)) * 5
	cl := s.liftCoefficient(Streamlined, 1e6, ar, 5, 0.7, g)
	if math.Abs(cl-want) > 1e-9 {
		t.Fatalf("linear Cl = %g, want %g", cl, want)
	}
	// antisymmetric about zero incidence
	if neg := s.liftCoefficient(Streamlined, 1e6, ar, -5, 0.7, g); math.Abs(neg+want) > 1e-9 {
		t.Fatalf("Cl(-5) = %g, want %g", neg, -want)
	}
}

func TestAirfoilLiftStallsToSeparatedValue(t *testing.T) {
	s := NewSolver(DefaultConfig())
	g := Analysis{Symmetric: true, ThicknessRatio: 0.12}
	// 1.5 * stall = 21.6; beyond that the flat-plate value takes over
	cl := s.liftCoefficient(Streamlined, 1e6, 6, 30, 0.7, g)
	want := math.Sin(2 * 30 * deg2rad)
	if math.Abs(cl-want) > 1e-9 {
		t.Fatalf("post-stall Cl = %g, want %g", cl, want)
	}
}

func TestCamberShiftsZeroLiftAngle(t *testing.T) {
	s := NewSolver(DefaultConfig())
	g := Analysis{Camber: 0.04, ThicknessRatio: 0.12}
	// alpha_L0 = -4 degrees, so zero geometric incidence still lifts
	cl := s.liftCoefficient(Streamlined, 1e6, 6, 0, 0.7, g)
	if cl <= 0 {
		t.Fatalf("cambered profile at zero incidence: Cl = %g, want > 0", cl)
	}
}

func TestLowReynoldsBleedsLift(t *testing.T) {
	s := NewSolver(DefaultConfig())
	g := Analysis{Symmetric: true, ThicknessRatio: 0.12}
	high := s.liftCoefficient(Streamlined, 1e6, 6, 5, 0.7, g)
	low := s.liftCoefficient(Streamlined, 1e3, 6, 5, 0.7, g)
	if low >= high {
		t.Fatalf("lift should shrink at low Reynolds: %g vs %g", low, high)
	}
}

func TestStrouhalTable(t *testing.T) {
	cases := []struct {
		shape ShapeType
		re    float64
		want  float64
	}{
		{Circular, 1e6, 0.2},
		{Circular, 50, 0.1},
		{Rectangular, 1e6, 0.15},
		{Streamlined, 1e6, 0.10},
		{Bluff, 1e6, 0.18},
	}
	for _, tc := range cases {
		if got := strouhalNumber(tc.shape, tc.re); got != tc.want {
			t.Fatalf("St(%v, re=%g) = %g, want %g", tc.shape, tc.re, got, tc.want)
		}
	}
}
