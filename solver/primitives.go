package solver

import (
	"math"

	"github.com/Jvjx01/2D-Aero-Tester/model"
)

// The 3D-primitive pipeline is the simplified sibling of the polygon
// engine: the same stages with the classifier and analyzer collapsed into
// per-kind tables, for scenes built from stock solids instead of sketches.

type PrimitiveKind int

const (
	Sphere PrimitiveKind = iota
	Box
	Cylinder
	Wing
)

var primitiveNames = [...]string{"sphere", "box", "cylinder", "wing"}

func (k PrimitiveKind) String() string {
	if k < 0 || int(k) >= len(primitiveNames) {
		return "box"
	}
	return primitiveNames[k]
}

// Primitive is a stock solid with its dimensions already in meters.
// Width is the streamwise extent, Height the vertical one, Depth the span.
type Primitive struct {
	Kind   PrimitiveKind `json:"kind"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Depth  float64       `json:"depth"`
}

// SolvePrimitive runs the simplified pipeline on a stock solid. The
// result record is the same one the 2D engine produces.
func (s *Solver) SolvePrimitive(p Primitive, params model.FlowParameters) (*Result, error) {
	if err := validatePrimitive(p, params); err != nil {
		return nil, err
	}

	velocity := params.WindSpeed / 3.6
	angle := normalizeAngle(params.Angle)

	frontalArea := p.Height * p.Depth
	if p.Kind == Sphere || p.Kind == Cylinder {
		frontalArea = math.Pi / 4 * p.Height * p.Depth
	}
	referenceArea := math.Max(p.Height, p.Width) * p.Depth

	charLen := p.Width
	reynolds := 0.0
	if s.cfg.DynamicViscosity > 0 {
		reynolds = params.AirDensity * velocity * charLen / s.cfg.DynamicViscosity
	}

	aspect := 1.0
	if p.Height > 0 {
		aspect = p.Width / p.Height
	}

	cd := s.primitiveDrag(p.Kind, reynolds, aspect, angle)
	cl := s.primitiveLift(p.Kind, reynolds, aspect, angle)

	q := 0.5 * params.AirDensity * velocity * velocity
	drag := q * frontalArea * cd
	lift := q * referenceArea * cl

	strouhal := primitiveStrouhal(p.Kind, reynolds)
	vortexFreq := 0.0
	if charLen > 0 {
		vortexFreq = strouhal * velocity / charLen
	}

	shape := primitiveFamily(p.Kind)
	pressureRatio := pressureDragRatio(shape)

	return &Result{
		Cd:              cd,
		Cl:              cl,
		DragForce:       drag,
		LiftForce:       lift,
		Area:            frontalArea,
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
			Solidity:             1,
			CharacteristicLength: charLen,
		},
	}, nil
}

// primitiveFamily maps a solid onto the 2D shape families so the shared
// Strouhal/pressure-split tables apply.
func primitiveFamily(k PrimitiveKind) ShapeType {
	switch k {
	case Sphere, Cylinder:
		return Circular
	case Wing:
		return Streamlined
	default:
		return Rectangular
	}
}

func (s *Solver) primitiveDrag(k PrimitiveKind, re, aspect, angleDeg float64) float64 {
	var cd float64
	switch k {
	case Sphere:
		cd = sphereDrag(re)
	case Cylinder:
		cd = s.circularDrag(re)
	case Wing:
		cd = 0.05 + 0.3/math.Sqrt(fineness(aspect))
		if abs := math.Abs(angleDeg); abs > 15 {
			sin := math.Sin(angleDeg * deg2rad)
			cd *= 1 + 1.2*sin*sin
		}
	default:
		cd = 1.05
		if rad := math.Abs(angleDeg) * deg2rad; rad > 0.1 {
			cd *= 1 + 0.1*math.Sin(rad)
		}
	}
	return clamp(cd, 0.01, 2.5)
}

// sphereDrag follows the standard correlation up to the laminar plateau,
// then a crisis blend and turbulent recovery at one flow regime lower than
// the cylinder curve.
func sphereDrag(re float64) float64 {
	switch {
	case re <= 0:
		return 0.47
	case re < 1:
		return 24 / math.Max(re, 1e-6)
	case re < 1e3:
		return 24 / re * (1 + 0.15*math.Pow(re, 0.687))
	case re < 2e5:
		return 0.47
	case re < 5e5:
		return 0.47 - 0.37/(1+math.Exp(-(re-3.5e5)/5e4))
	default:
		return 0.2
	}
}

func (s *Solver) primitiveLift(k PrimitiveKind, re, aspect, angleDeg float64) float64 {
	var cl float64
	switch k {
	case Wing:
		abs := math.Abs(angleDeg)
		slope := 0.09 * (aspect / (aspect + 2))
		if abs < 15 {
			cl = slope * angleDeg
		} else {
			cl = math.Sin(2 * angleDeg * deg2rad)
		}
	case Box:
		cl = 1.1 * math.Sin(2*angleDeg*deg2rad)
	default:
		// round bodies shed symmetrically
		return 0
	}
	if re < 1e5 {
		cl *= clamp(0.4+0.6*math.Log10(math.Max(1, re))/5.0, 0.1, 1.0)
	}
	return cl
}

func primitiveStrouhal(k PrimitiveKind, re float64) float64 {
	switch k {
	case Sphere, Cylinder:
		if re < 100 {
			return 0.1
		}
		return 0.2
	case Wing:
		return 0.10
	default:
		return 0.15
	}
}

func validatePrimitive(p Primitive, params model.FlowParameters) error {
	dims := [...]struct {
		name string
		v    float64
	}{{"width", p.Width}, {"height", p.Height}, {"depth", p.Depth}}
	for _, d := range dims {
		if !isFinite(d.v) || d.v <= 0 {
			return invalidInputf("primitive %s must be finite and > 0, got %g", d.name, d.v)
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
