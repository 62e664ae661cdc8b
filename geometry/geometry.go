// Package geometry holds the pure point-list utilities the solver is built
// on: centroid, rotation about the centroid, bounding box and the shoelace
// area. Coordinates follow the canvas convention, x to the right and y down
// the screen.
package geometry

import (
	"encoding/json"
	"errors"
	"math"
)

var ErrNoPoints = errors.New("geometry: point list is empty")

// Point is a single vertex in pixel space. It marshals as a two-element
// [x,y] array to match the wire format the drawing UI sends.
type Point struct {
	X float64
	Y float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// BoundingBox is recomputed per call and never cached.
type BoundingBox struct {
	MinX   float64
	MaxX   float64
	MinY   float64
	MaxY   float64
	Width  float64
	Height float64
}

// Centroid returns the arithmetic mean of the points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNoPoints
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}, nil
}

// Rotate rotates every point about the polygon centroid by angleDeg. The
// standard rotation-matrix sign convention applied to y-down coordinates
// appears as a clockwise turn on screen for positive angles.
func Rotate(points []Point, angleDeg float64) []Point {
	if len(points) == 0 {
		return nil
	}
	c, _ := Centroid(points)
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	out := make([]Point, len(points))
	for i, p := range points {
		dx := p.X - c.X
		dy := p.Y - c.Y
		out[i] = Point{
			X: c.X + dx*cos - dy*sin,
			Y: c.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// BoundingBoxOf scans the points once for the per-axis extrema.
func BoundingBoxOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		bb.MinX = math.Min(bb.MinX, p.X)
		bb.MaxX = math.Max(bb.MaxX, p.X)
		bb.MinY = math.Min(bb.MinY, p.Y)
		bb.MaxY = math.Max(bb.MaxY, p.Y)
	}
	bb.Width = bb.MaxX - bb.MinX
	bb.Height = bb.MaxY - bb.MinY
	return bb
}

// Area computes the polygon area with the shoelace formula. The absolute
// value of the signed sum makes it independent of winding order.
func Area(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}
