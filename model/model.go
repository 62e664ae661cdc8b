// Package model holds the wire types shared between the browser UI, the
// solver and the persistence layer.
package model

import (
	"github.com/Jvjx01/2D-Aero-Tester/geometry"
)

// FlowParameters are the free-stream settings the UI sends alongside a shape.
// WindSpeed is in km/h, Angle (of attack) in degrees, AirDensity in kg/m³.
type FlowParameters struct {
	WindSpeed  float64 `json:"windSpeed"`
	Angle      float64 `json:"angle"`
	AirDensity float64 `json:"airDensity"`
}

// Shape is the sketched silhouette: an ordered, implicitly closed vertex
// list in pixel coordinates (100 px = 1 m).
type Shape struct {
	Points []geometry.Point `json:"points"`
}

// SolveRequest is the request body of the solve operation.
type SolveRequest struct {
	Shape      Shape          `json:"shape"`
	Parameters FlowParameters `json:"parameters"`
	Name       string         `json:"name,omitempty"`
}

// ErrorReply is the structured error body returned on invalid input.
type ErrorReply struct {
	Error string `json:"error"`
}

// Msg is the websocket envelope exchanged with the frontend.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
