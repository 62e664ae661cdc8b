package solver

import "math"

// The coefficient models are closed-form regime curves fitted to published
// drag/lift data, not a flow solution. Each branch is keyed by the shape
// family; every divisor is guarded so no input can produce NaN.

const deg2rad = math.Pi / 180

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// fineness is the elongation of a shape regardless of orientation,
// always >= 1.
func fineness(aspect float64) float64 {
	if aspect <= 0 {
		return 1
	}
	return math.Max(aspect, 1/aspect)
}

// dragCoefficient returns Cd for the classified shape, clamped to
// [0.01, 2.5].
func (s *Solver) dragCoefficient(shape ShapeType, re, aspect, solidity, angleDeg float64, g Analysis) float64 {
	var cd float64
	switch shape {
	case Circular:
		cd = s.circularDrag(re)
		// incidence only matters for slightly non-round blobs
		if rad := math.Abs(angleDeg) * deg2rad; rad > 0.1 {
			cd *= 1 + 0.05*math.Sin(rad)
		}
	case Rectangular:
		cd = clamp(2.0/math.Sqrt(fineness(aspect)), 1.0, 2.1)
		if re < 1e4 {
			cd *= 1.1
		}
	case Streamlined:
		cd = s.streamlinedDrag(aspect, angleDeg, g)
	default:
		cd = 1.0 + 0.5/fineness(aspect)
		cd *= 0.85 + 0.15*solidity
		if re < 1e4 {
			cd *= 1.05
		}
	}
	return clamp(cd, 0.01, 2.5)
}

// circularDrag walks the Reynolds regimes for a round body: Stokes flow,
// the laminar plateau, the drag crisis and the turbulent recovery.
func (s *Solver) circularDrag(re float64) float64 {
	switch {
	case re < 1:
		if re <= 0 {
			return 2.0
		}
		return math.Max(24/re, 2.0)
	case re < 2e5:
		return 1.17
	case re < 5e5:
		// sigmoid blend 1.2 -> 0.3 across the crisis
		return 1.2 - 0.9/(1+math.Exp(-(re-s.cfg.DragCrisisCenter)/s.cfg.DragCrisisWidth))
	default:
		return 0.35 + re/1e7*0.1
	}
}

func (s *Solver) streamlinedDrag(aspect, angleDeg float64, g Analysis) float64 {
	abs := math.Abs(angleDeg)
	cd := 0.05 + 0.3/math.Sqrt(fineness(aspect))
	if g.Symmetric && abs < 5 {
		cd *= 0.8
	}
	if g.TrailingEdgeAngle > 20 {
		cd += 0.1 * (g.TrailingEdgeAngle - 20) / 70
	}
	if abs > 15 {
		sin := math.Sin(angleDeg * deg2rad)
		cd *= 1 + 1.2*sin*sin
	}
	return cd
}

// liftCoefficient returns Cl for the classified shape. The first two early
// returns reject shapes that cannot plausibly lift.
func (s *Solver) liftCoefficient(shape ShapeType, re, aspect, angleDeg, solidity float64, g Analysis) float64 {
	abs := math.Abs(angleDeg)
	if shape != Streamlined && aspect >= 0.5 && aspect <= 2.0 &&
		math.Abs(g.Camber) <= 0.001 && abs < 10 {
		return 0
	}
	if g.Symmetric && abs < 0.5 {
		return 0
	}

	rad := angleDeg * deg2rad
	var cl float64
	switch shape {
	case Circular:
		if abs > 5 {
			cl = 0.3 * math.Sin(2*rad)
		}
	case Streamlined:
		cl = s.airfoilLift(aspect, angleDeg, g)
	case Rectangular:
		if abs < 25 {
			cl = 1.1 * math.Sin(2*rad)
		} else {
			cl = math.Sin(rad)
		}
		if g.Camber != 0 && !g.Symmetric {
			cl += g.Camber * 2.0
		}
	default:
		cl = 0.5 * math.Sin(2*rad)
		if solidity < 0.5 {
			cl *= 0.5
		}
	}

	// thin boundary layers at low Reynolds bleed lift away
	if re < 1e5 {
		cl *= clamp(0.4+0.6*math.Log10(math.Max(1, re))/5.0, 0.1, 1.0)
	}
	return cl
}

// airfoilLift is the thin-airfoil model with stall blending: linear slope
// up to 0.8x the stall angle, a cosine blend into the separated flat-plate
// value up to 1.5x, fully separated beyond.
func (s *Solver) airfoilLift(aspect, angleDeg float64, g Analysis) float64 {
	alphaL0 := -100 * g.Camber
	if g.Symmetric {
		alphaL0 = 0
	}
	eff := angleDeg - alphaL0

	kutta := 1.0
	if g.TrailingEdgeAngle > 20 {
		kutta = math.Max(0.5, 1-0.5*(g.TrailingEdgeAngle-20)/70)
	}
	slope := 0.09 * (aspect / (aspect + 2)) * kutta

	stall := 12 + 20*g.ThicknessRatio
	separated := math.Sin(2 * eff * deg2rad)
	abs := math.Abs(eff)
	switch {
	case abs < 0.8*stall:
		return slope * eff
	case abs < 1.5*stall:
		t := (abs - 0.8*stall) / (0.7 * stall)
		w := 0.5 * (1 + math.Cos(math.Pi*t))
		cl := w*slope*eff + (1-w)*separated
		// round the peak instead of a hard corner at stall onset
		cl += 0.1 * math.Sin(math.Pi*t) * math.Copysign(1, eff)
		return cl
	default:
		return separated
	}
}

// strouhalNumber picks the vortex-shedding parameter for the family.
func strouhalNumber(shape ShapeType, re float64) float64 {
	switch shape {
	case Circular:
		if re < 100 {
			return 0.1
		}
		return 0.2
	case Rectangular:
		return 0.15
	case Streamlined:
		return 0.10
	default:
		return 0.18
	}
}

// pressureDragRatio splits total drag into pressure and friction parts.
func pressureDragRatio(shape ShapeType) float64 {
	switch shape {
	case Streamlined:
		return 0.6
	case Circular:
		return 0.85
	default:
		return 0.9
	}
}
