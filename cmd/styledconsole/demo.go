package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ksokolowski/StyledConsole-sub001/config"
	"github.com/ksokolowski/StyledConsole-sub001/frame"
	"github.com/ksokolowski/StyledConsole-sub001/text"
)

var (
	demoRender  renderFlags
	demoSeconds int
	demoFPS     int
	demoStyle   string
	demoMessage string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Animate a gradient frame in place",
	Long: `Renders the same frame repeatedly with an incrementing gradient offset,
redrawing in place. This exercises the offset-wrapping position strategy that
makes gradients move.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := demoRender.profile()
		if !profile.Color {
			return fail(fmt.Errorf("demo needs a color-capable terminal"))
		}
		spec, preset, err := demoRender.gradient()
		if err != nil {
			return fail(err)
		}
		if spec == nil {
			// No gradient requested; the rainbow preset is the demo default.
			preset, _ = config.Lookup("rainbow")
			g, err := preset.Gradient(colorParser)
			if err != nil {
				return fail(err)
			}
			spec = &g
		}
		style := demoStyle
		if style == "" {
			style = preset.Style
		}

		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 4 {
			width = min(w, 80)
		}

		opts := frame.Options{
			Style:   style,
			Title:   "styledconsole",
			Width:   width,
			Align:   text.AlignCenter,
			Padding: 1,
		}

		if demoFPS < 1 {
			demoFPS = 1
		}
		if demoSeconds < 1 {
			demoSeconds = 1
		}
		frames := demoSeconds * demoFPS
		interval := time.Second / time.Duration(demoFPS)
		rendered := 0
		for i := 0; i < frames; i++ {
			step := spec.WithOffset(float64(i) / float64(frames))
			opts.Gradient = &step
			out, err := frame.Render([]string{demoMessage}, opts, profile)
			if err != nil {
				return fail(err)
			}
			if i > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[%dA", len(out))
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			rendered++
			time.Sleep(interval)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s rendered %d frames\n", color.GreenString("✓"), rendered)
		return nil
	},
}

func init() {
	demoRender.register(demoCmd)
	demoCmd.Flags().IntVar(&demoSeconds, "seconds", 5, "how long to animate")
	demoCmd.Flags().IntVar(&demoFPS, "fps", 20, "animation frame rate")
	demoCmd.Flags().StringVar(&demoStyle, "style", "", "border style")
	demoCmd.Flags().StringVar(&demoMessage, "message", "Styled Console", "message inside the frame")
	rootCmd.AddCommand(demoCmd)
}
