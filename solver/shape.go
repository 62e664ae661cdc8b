package solver

import (
	"fmt"

	"github.com/Jvjx01/2D-Aero-Tester/geometry"
)

// ShapeType buckets a silhouette into one of four aerodynamic families.
// Bluff is the zero value so the fallback costs nothing.
type ShapeType int

const (
	Bluff ShapeType = iota
	Circular
	Rectangular
	Streamlined
)

var shapeNames = [...]string{"bluff", "circular", "rectangular", "streamlined"}

func (s ShapeType) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "bluff"
	}
	return shapeNames[s]
}

// MarshalJSON emits the lowercase family name, the form the wire contract
// uses for shapeType.
func (s ShapeType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *ShapeType) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) >= 2 && name[0] == '"' {
		name = name[1 : len(name)-1]
	}
	for i, n := range shapeNames {
		if n == name {
			*s = ShapeType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape type %q", name)
}

// Classify buckets a polygon by aspect ratio and solidity. First match wins;
// anything that matches nothing is bluff.
func Classify(pointCount int, bb geometry.BoundingBox, solidity float64) ShapeType {
	aspect := 0.0
	if bb.Height > 0 {
		aspect = bb.Width / bb.Height
	}
	switch {
	case solidity > 0.70 && solidity < 0.82 && aspect > 0.8 && aspect < 1.25:
		return Circular
	case solidity > 0.85 && pointCount == 4:
		return Rectangular
	case aspect > 3.0 || (aspect > 0 && aspect < 0.33):
		return Streamlined
	default:
		return Bluff
	}
}
