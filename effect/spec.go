// Copyright © 2025 StyledConsole contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: effect/spec.go
// Summary: Gradient specification: color stops, position strategy, target filter.
// Usage: Built once per render via New/NewRainbow, then handed to Apply.
// Notes: Invalid specs are rejected at construction; Apply assumes a valid Spec.

package effect

import (
	"fmt"
	"math"

	"github.com/ksokolowski/StyledConsole-sub001/color"
)

// Direction is the position strategy: how a cluster's (row, column) location
// maps to a normalized gradient position.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	Diagonal
)

// Target filters which clusters receive color.
type Target int

const (
	// TargetBoth colors every cluster.
	TargetBoth Target = iota
	// TargetContent colors only clusters absent from the structural set.
	TargetContent
	// TargetStructural colors only clusters present in the structural set.
	TargetStructural
)

// Source selects how a normalized position becomes a color.
type Source int

const (
	// SourceStops interpolates between the spec's color stops.
	SourceStops Source = iota
	// SourceRainbow indexes the fixed seven-anchor spectrum.
	SourceRainbow
)

// Stop is one gradient anchor: a resolved color at a position in [0,1].
type Stop struct {
	Color    color.Color
	Position float64
}

// Spec is a validated gradient description. Construct through New or
// NewRainbow; the zero value is not usable.
type Spec struct {
	Stops     []Stop
	Direction Direction
	Target    Target
	Source    Source
	// Offset shifts every computed position, wrapping modulo 1.0. Successive
	// renders with an incrementing offset animate the gradient.
	Offset float64
}

// New builds a stop-interpolating gradient spec. At least two stops are
// required and their positions must lie in [0,1] in ascending order; anything
// else is a programmer error and fails here rather than misrendering later.
func New(dir Direction, target Target, stops ...Stop) (Spec, error) {
	if len(stops) < 2 {
		return Spec{}, fmt.Errorf("effect: gradient needs at least 2 stops, got %d", len(stops))
	}
	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 {
			return Spec{}, fmt.Errorf("effect: stop %d position %v outside [0,1]", i, s.Position)
		}
		if i > 0 && s.Position < stops[i-1].Position {
			return Spec{}, fmt.Errorf("effect: stops not sorted by position (%v after %v)", s.Position, stops[i-1].Position)
		}
	}
	return Spec{Stops: stops, Direction: dir, Target: target, Source: SourceStops}, nil
}

// Linear is the common two-stop case: from at 0.0, to at 1.0.
func Linear(dir Direction, target Target, from, to color.Color) Spec {
	return Spec{
		Stops:     []Stop{{Color: from, Position: 0}, {Color: to, Position: 1}},
		Direction: dir,
		Target:    target,
		Source:    SourceStops,
	}
}

// NewRainbow builds a spectrum gradient spec.
func NewRainbow(dir Direction, target Target) Spec {
	return Spec{Direction: dir, Target: target, Source: SourceRainbow}
}

// WithOffset returns a copy of s with the animation offset set, wrapped into
// [0,1).
func (s Spec) WithOffset(offset float64) Spec {
	offset = math.Mod(offset, 1)
	if offset < 0 {
		offset++
	}
	s.Offset = offset
	return s
}

// colorAt maps a normalized position to a color.
func (s Spec) colorAt(t float64) color.Color {
	if s.Source == SourceRainbow {
		return color.Rainbow(t)
	}
	stops := s.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if t > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span == 0 {
			return hi.Color
		}
		return color.Lerp(lo.Color, hi.Color, (t-lo.Position)/span)
	}
	return last.Color
}
