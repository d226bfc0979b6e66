package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ksokolowski/StyledConsole-sub001/capability"
	sccolor "github.com/ksokolowski/StyledConsole-sub001/color"
	"github.com/ksokolowski/StyledConsole-sub001/config"
	"github.com/ksokolowski/StyledConsole-sub001/effect"
	"github.com/ksokolowski/StyledConsole-sub001/text"
)

// renderFlags are the gradient/profile flags shared by frame, banner and demo.
type renderFlags struct {
	preset    string
	from      string
	to        string
	rainbow   bool
	direction string
	target    string
	noColor   bool
	ascii     bool
}

var colorParser = sccolor.NewParser(sccolor.NewCache(128))

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "named preset from styledconsole.json (e.g. fire, ocean, rainbow)")
	cmd.Flags().StringVar(&f.from, "from", "", "gradient start color (name, #hex or rgb(r,g,b))")
	cmd.Flags().StringVar(&f.to, "to", "", "gradient end color")
	cmd.Flags().BoolVar(&f.rainbow, "rainbow", false, "use the rainbow spectrum instead of two stops")
	cmd.Flags().StringVar(&f.direction, "direction", "vertical", "gradient direction: vertical, horizontal or diagonal")
	cmd.Flags().StringVar(&f.target, "target", "both", "what to color: content, structural or both")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable color output")
	cmd.Flags().BoolVar(&f.ascii, "ascii", false, "force ASCII border glyphs")
}

// profile builds the capability profile: detected, then narrowed by flags.
func (f *renderFlags) profile() capability.Profile {
	p := capability.Detect()
	if f.noColor {
		p.Color = false
	}
	if f.ascii {
		p.Unicode = false
	}
	return p
}

// resolvePreset picks the effective preset: the named one, or one synthesized
// from the individual flags.
func (f *renderFlags) resolvePreset() (config.Preset, error) {
	if f.preset != "" {
		p, ok := config.Lookup(f.preset)
		if !ok {
			return config.Preset{}, fmt.Errorf("unknown preset %q (available: %s)",
				f.preset, strings.Join(config.Names(), ", "))
		}
		return p, nil
	}
	return config.Preset{
		From:      f.from,
		To:        f.to,
		Rainbow:   f.rainbow,
		Direction: f.direction,
		Target:    f.target,
	}, nil
}

// gradient builds the spec, or returns nil when no coloring was requested.
func (f *renderFlags) gradient() (*effect.Spec, config.Preset, error) {
	p, err := f.resolvePreset()
	if err != nil {
		return nil, config.Preset{}, err
	}
	if !p.Rainbow && p.From == "" && p.To == "" {
		return nil, p, nil
	}
	spec, err := p.Gradient(colorParser)
	if err != nil {
		return nil, p, err
	}
	return &spec, p, nil
}

func fail(err error) error {
	return fmt.Errorf("%s %w", color.RedString("✗"), err)
}

func parseAlign(name string) (text.Align, error) {
	switch name {
	case "left", "start":
		return text.AlignStart, nil
	case "center":
		return text.AlignCenter, nil
	case "right", "end":
		return text.AlignEnd, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", name)
	}
}
