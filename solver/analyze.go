package solver

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/Jvjx01/2D-Aero-Tester/geometry"
)

// Analysis is the intrinsic profile record derived from the unrotated
// polygon. Rotation is a presentation transform and never feeds into it.
type Analysis struct {
	Camber            float64 `json:"camber"`
	ThicknessRatio    float64 `json:"thicknessRatio"`
	Symmetric         bool    `json:"isSymmetric"`
	TrailingEdgeAngle float64 `json:"trailingEdgeAngle"`
	LeadingEdgeRadius float64 `json:"leadingEdgeRadius"`
	// Degenerate is set when the chord collapsed and the zeroed defaults
	// were used instead.
	Degenerate bool `json:"degenerate,omitempty"`
}

// analyze derives camber, thickness, symmetry and the edge heuristics from
// the raw vertex list. The leading edge is the first vertex at minimum x,
// the trailing edge the last vertex at maximum x, so a shape whose extreme
// x is shared (a square, say) gets a chord through its interior rather than
// along one face.
func (s *Solver) analyze(points []geometry.Point, bb geometry.BoundingBox) Analysis {
	leIdx, teIdx := 0, 0
	for i, p := range points {
		if p.X < points[leIdx].X {
			leIdx = i
		}
		if p.X >= points[teIdx].X {
			teIdx = i
		}
	}
	le := points[leIdx]
	te := points[teIdx]

	chordX := te.X - le.X
	chordY := te.Y - le.Y
	chord := math.Hypot(chordX, chordY)
	if chord == 0 {
		log.Debugf("degenerate chord, leading and trailing edge coincide at (%g, %g)", le.X, le.Y)
		return Analysis{Symmetric: true, TrailingEdgeAngle: 180, Degenerate: true}
	}

	// Unit normal of the chord; the positive side is called "upper".
	nx := -chordY / chord
	ny := chordX / chord

	var sum, upperSum, lowerSum, maxUpper, maxLower float64
	for _, p := range points {
		d := (p.X-le.X)*nx + (p.Y-le.Y)*ny
		sum += d
		switch {
		case d > 0:
			upperSum += d
			maxUpper = math.Max(maxUpper, d)
		case d < 0:
			lowerSum += -d
			maxLower = math.Max(maxLower, -d)
		}
	}

	camber := -(sum / float64(len(points))) / chord
	symmetric := balance(upperSum, lowerSum) > s.cfg.SymmetryRatio &&
		balance(maxUpper, maxLower) > s.cfg.SymmetryRatio &&
		math.Abs(camber) < s.cfg.SymmetryCamber

	return Analysis{
		Camber:            camber,
		ThicknessRatio:    bb.Height / chord,
		Symmetric:         symmetric,
		TrailingEdgeAngle: vertexAngle(points, teIdx),
		LeadingEdgeRadius: edgeRadius(points, leIdx, chord),
	}
}

// balance is min/max of two non-negative magnitudes, treating two zeros as
// perfectly balanced.
func balance(a, b float64) float64 {
	hi := math.Max(a, b)
	if hi == 0 {
		return 1
	}
	return math.Min(a, b) / hi
}

// vertexAngle is the interior angle in degrees between the two polygon
// edges meeting at index i, in [0, 180].
func vertexAngle(points []geometry.Point, i int) float64 {
	n := len(points)
	prev := points[(i-1+n)%n]
	next := points[(i+1)%n]
	at := points[i]

	ax, ay := prev.X-at.X, prev.Y-at.Y
	bx, by := next.X-at.X, next.Y-at.Y
	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)
	if la == 0 || lb == 0 {
		return 180
	}
	cos := (ax*bx + ay*by) / (la * lb)
	cos = clamp(cos, -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// edgeRadius is the half-distance between the neighbours of vertex i,
// normalized by chord length. A blunt nose has far-apart neighbours and a
// large value; it is a proxy, not a true radius of curvature.
func edgeRadius(points []geometry.Point, i int, chord float64) float64 {
	n := len(points)
	prev := points[(i-1+n)%n]
	next := points[(i+1)%n]
	return math.Hypot(next.X-prev.X, next.Y-prev.Y) / 2 / chord
}
