package solver

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config carries the empirically tuned constants of the estimation engine.
// They are injected into NewSolver rather than read from globals so tests
// can vary them independently of the algorithmic structure.
type Config struct {
	// PixelsPerMeter is the canvas scale contract with the drawing UI.
	PixelsPerMeter float64
	// DynamicViscosity of air in Pa·s.
	DynamicViscosity float64
	// Depth is the unit span used to turn 2D silhouettes into areas.
	Depth float64

	// SymmetryRatio is the minimum upper/lower balance for a profile to
	// count as symmetric.
	SymmetryRatio float64
	// SymmetryCamber is the camber magnitude above which a profile is
	// never symmetric.
	SymmetryCamber float64

	// Drag-crisis sigmoid for circular shapes.
	DragCrisisCenter float64
	DragCrisisWidth  float64
}

func DefaultConfig() Config {
	return Config{
		PixelsPerMeter:   100,
		DynamicViscosity: 1.81e-5,
		Depth:            1.0,
		SymmetryRatio:    0.85,
		SymmetryCamber:   0.02,
		DragCrisisCenter: 3.5e5,
		DragCrisisWidth:  5e4,
	}
}

// LoadConfig reads overrides from an ini file, keeping the defaults for
// anything missing. A missing file is not an error.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		log.Warnf("solver config not loaded from %s, using defaults: %v", path, err)
		return cfg
	}
	sec := file.Section("solver")
	cfg.PixelsPerMeter = sec.Key("PixelsPerMeter").MustFloat64(cfg.PixelsPerMeter)
	cfg.DynamicViscosity = sec.Key("DynamicViscosity").MustFloat64(cfg.DynamicViscosity)
	cfg.Depth = sec.Key("Depth").MustFloat64(cfg.Depth)
	cfg.SymmetryRatio = sec.Key("SymmetryRatio").MustFloat64(cfg.SymmetryRatio)
	cfg.SymmetryCamber = sec.Key("SymmetryCamber").MustFloat64(cfg.SymmetryCamber)
	cfg.DragCrisisCenter = sec.Key("DragCrisisCenter").MustFloat64(cfg.DragCrisisCenter)
	cfg.DragCrisisWidth = sec.Key("DragCrisisWidth").MustFloat64(cfg.DragCrisisWidth)
	return cfg
}
