// Copyright © 2025 StyledConsole contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/presets.go
// Summary: Named gradient/frame presets and their built-in defaults.

package config

import (
	"fmt"

	"github.com/ksokolowski/StyledConsole-sub001/color"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
)

// Preset is one named rendering recipe as stored on disk: textual color
// specs plus direction, target and border style names. Resolution to engine
// types happens in Gradient, never at load time, so a bad user preset only
// fails the render that uses it.
type Preset struct {
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Rainbow   bool   `json:"rainbow,omitempty"`
	Direction string `json:"direction,omitempty"`
	Target    string `json:"target,omitempty"`
	Style     string `json:"style,omitempty"`
	Font      string `json:"font,omitempty"`
}

func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"fire":    {From: "red", To: "yellow", Direction: "vertical", Style: "rounded"},
		"ocean":   {From: "deepskyblue", To: "navy", Direction: "diagonal", Style: "single"},
		"forest":  {From: "#9acd32", To: "#006400", Direction: "vertical", Style: "heavy"},
		"sunset":  {From: "#ff8c00", To: "#8b008b", Direction: "horizontal", Style: "double"},
		"rainbow": {Rainbow: true, Direction: "diagonal", Style: "rounded"},
	}
}

// Gradient resolves the preset to an engine spec, parsing its colors through
// the supplied parser.
func (p Preset) Gradient(parser *color.Parser) (effect.Spec, error) {
	dir, err := parseDirection(p.Direction)
	if err != nil {
		return effect.Spec{}, err
	}
	tgt, err := parseTarget(p.Target)
	if err != nil {
		return effect.Spec{}, err
	}
	if p.Rainbow {
		return effect.NewRainbow(dir, tgt), nil
	}
	from, err := parser.Parse(p.From)
	if err != nil {
		return effect.Spec{}, fmt.Errorf("config: preset 'from': %w", err)
	}
	to, err := parser.Parse(p.To)
	if err != nil {
		return effect.Spec{}, fmt.Errorf("config: preset 'to': %w", err)
	}
	return effect.Linear(dir, tgt, from, to), nil
}

func parseDirection(name string) (effect.Direction, error) {
	switch name {
	case "", "vertical":
		return effect.Vertical, nil
	case "horizontal":
		return effect.Horizontal, nil
	case "diagonal":
		return effect.Diagonal, nil
	default:
		return 0, fmt.Errorf("config: unknown direction %q", name)
	}
}

func parseTarget(name string) (effect.Target, error) {
	switch name {
	case "", "both":
		return effect.TargetBoth, nil
	case "content":
		return effect.TargetContent, nil
	case "structural", "border":
		return effect.TargetStructural, nil
	default:
		return 0, fmt.Errorf("config: unknown target %q", name)
	}
}
