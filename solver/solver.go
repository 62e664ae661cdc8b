// Package solver is the empirical aerodynamic estimation engine: a set of
// closed-form heuristics that turn a sketched 2D polygon plus flow
// parameters into drag/lift coefficients, forces, Reynolds number and a
// vortex-shedding frequency. It is not a CFD solver; precision is
// illustrative, not engineering-grade.
package solver

import (
	"math"

	"github.com/Jvjx01/2D-Aero-Tester/geometry"
	"github.com/Jvjx01/2D-Aero-Tester/model"
)

// Solver evaluates silhouettes against its injected Config. It keeps no
// state between calls, so a single instance is safe for concurrent use.
type Solver struct {
	cfg Config
}

func NewSolver(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// Result is the full-precision output record of one solve call. Rounding
// for display or storage happens at the serialization boundary via
// Rounded, never in here.
type Result struct {
	Cd              float64   `json:"cd"`
	Cl              float64   `json:"cl"`
	DragForce       float64   `json:"dragForce"`       // N
	LiftForce       float64   `json:"liftForce"`       // N
	Area            float64   `json:"area"`            // m²
	FrontalArea     float64   `json:"frontalArea"`     // m²
	ReferenceArea   float64   `json:"referenceArea"`   // m²
	Reynolds        float64   `json:"reynolds"`
	Shape           ShapeType `json:"shapeType"`
	VortexFrequency float64   `json:"vortexFrequency"` // Hz
	Strouhal        float64   `json:"strouhal"`
	PressureDrag    float64   `json:"pressureDrag"` // N
	FrictionDrag    float64   `json:"frictionDrag"` // N
	Debug           Debug     `json:"debug"`
}

// Debug carries non-contractual diagnostics; the persistence layer may
// drop it.
type Debug struct {
	VelocityMS           float64  `json:"velocityMs"`
	Angle                float64  `json:"angle"`
	AspectRatio          float64  `json:"aspectRatio"`
	Solidity             float64  `json:"solidity"`
	CharacteristicLength float64  `json:"characteristicLength"` // m
	Analysis             Analysis `json:"analysis"`
}

// Solve evaluates one polygon against one set of flow parameters.
// It validates its input up front and returns *InvalidInputError before
// touching any geometry; degenerate geometry further in is absorbed with
// documented fallbacks instead of failing.
func (s *Solver) Solve(points []geometry.Point, params model.FlowParameters) (*Result, error) {
	if err := validate(points, params); err != nil {
		return nil, err
	}

	velocity := params.WindSpeed / 3.6
	angle := normalizeAngle(params.Angle)
	scale := s.cfg.PixelsPerMeter

	// Frontal metrics come from the rotated outline; intrinsic shape
	// analysis stays on the unrotated one.
	rotated := geometry.Rotate(points, angle)
	rbb := geometry.BoundingBoxOf(rotated)
	frontalArea := rbb.Height / scale * s.cfg.Depth
	referenceArea := math.Max(rbb.Height, rbb.Width) / scale * s.cfg.Depth

	bb := geometry.BoundingBoxOf(points)
	areaPx := geometry.Area(points)
	area := areaPx / (scale * scale)

	solidity := 0.0
	if boxArea := bb.Width * bb.Height; boxArea > 0 {
		solidity = areaPx / boxArea
	}
	aspect := 0.0
	if bb.Height > 0 {
		aspect = bb.Width / bb.Height
	}

	shape := Classify(len(points), bb, solidity)

	var charLen float64
	switch shape {
	case Circular, Streamlined:
		charLen = bb.Width / scale
	default:
		charLen = math.Sqrt(area)
	}

	reynolds := 0.0
	if s.cfg.DynamicViscosity > 0 {
		reynolds = params.AirDensity * velocity * charLen / s.cfg.DynamicViscosity
	}

	analysis := s.analyze(points, bb)
	cd := s.dragCoefficient(shape, reynolds, aspect, solidity, angle, analysis)
	cl := s.liftCoefficient(shape, reynolds, aspect, angle, solidity, analysis)

	q := 0.5 * params.AirDensity * velocity * velocity
	drag := q * frontalArea * cd
	lift := q * referenceArea * cl

	strouhal := strouhalNumber(shape, reynolds)
	vortexFreq := 0.0
	if charLen > 0 {
		vortexFreq = strouhal * velocity / charLen
	}

	pressureRatio := pressureDragRatio(shape)

	return &Result{
		Cd:              cd,
		Cl:              cl,
		DragForce:       drag,
		LiftForce:       lift,
		Area:            area,
		FrontalArea:     frontalArea,
		ReferenceArea:   referenceArea,
		Reynolds:        reynolds,
		Shape:           shape,
		VortexFrequency: vortexFreq,
		Strouhal:        strouhal,
		PressureDrag:    drag * pressureRatio,
		FrictionDrag:    drag * (1 - pressureRatio),
		Debug: Debug{
			VelocityMS:           velocity,
			Angle:                angle,
			AspectRatio:          aspect,
			Solidity:             solidity,
			CharacteristicLength: charLen,
			Analysis:             analysis,
		},
	}, nil
}

// Rounded quantizes the record to the fixed decimal precision of its
// physical units: coefficients to 3 decimals, forces to 2, areas to 4.
// Debug diagnostics stay untouched.
func (r Result) Rounded() Result {
	r.Cd = roundTo(r.Cd, 3)
	r.Cl = roundTo(r.Cl, 3)
	r.DragForce = roundTo(r.DragForce, 2)
	r.LiftForce = roundTo(r.LiftForce, 2)
	r.PressureDrag = roundTo(r.PressureDrag, 2)
	r.FrictionDrag = roundTo(r.FrictionDrag, 2)
	r.Area = roundTo(r.Area, 4)
	r.FrontalArea = roundTo(r.FrontalArea, 4)
	r.ReferenceArea = roundTo(r.ReferenceArea, 4)
	r.Reynolds = roundTo(r.Reynolds, 0)
	r.VortexFrequency = roundTo(r.VortexFrequency, 2)
	r.Strouhal = roundTo(r.Strouhal, 3)
	return r
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func validate(points []geometry.Point, params model.FlowParameters) error {
	if len(points) < 3 {
		return invalidInputf("polygon needs at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return invalidInputf("point %d is not finite", i)
		}
	}
	if !isFinite(params.WindSpeed) || params.WindSpeed < 0 {
		return invalidInputf("windSpeed must be finite and >= 0, got %g", params.WindSpeed)
	}
	if !isFinite(params.Angle) {
		return invalidInputf("angle must be finite")
	}
	if !isFinite(params.AirDensity) || params.AirDensity <= 0 {
		return invalidInputf("airDensity must be finite and > 0, got %g", params.AirDensity)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// normalizeAngle wraps an angle in degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}
