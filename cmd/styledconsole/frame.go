package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksokolowski/StyledConsole-sub001/export"
	"github.com/ksokolowski/StyledConsole-sub001/frame"
)

var (
	frameRender  renderFlags
	frameStyle   string
	frameTitle   string
	frameWidth   int
	framePadding int
	frameAlign   string
	frameHTML    bool
)

var frameCmd = &cobra.Command{
	Use:   "frame [message...]",
	Short: "Draw a bordered frame around a message or stdin",
	Long: `Draws a bordered, optionally gradient-colored frame around the given
message. With no arguments the message is read from stdin, one content line
per input line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := contentLines(args, cmd.InOrStdin())
		if err != nil {
			return fail(err)
		}

		profile := frameRender.profile()
		spec, preset, err := frameRender.gradient()
		if err != nil {
			return fail(err)
		}

		align, err := parseAlign(frameAlign)
		if err != nil {
			return fail(err)
		}
		style := frameStyle
		if style == "" {
			style = preset.Style
		}

		out, err := frame.Render(lines, frame.Options{
			Style:    style,
			Title:    frameTitle,
			Width:    frameWidth,
			Align:    align,
			Padding:  framePadding,
			Gradient: spec,
		}, profile)
		if err != nil {
			return fail(err)
		}

		if frameHTML {
			fmt.Fprintln(cmd.OutOrStdout(), export.HTML(out))
			return nil
		}
		for _, line := range out {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func contentLines(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return strings.Split(strings.Join(args, " "), "\\n"), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, fmt.Errorf("no message given and stdin was empty")
	}
	return lines, nil
}

func init() {
	frameRender.register(frameCmd)
	frameCmd.Flags().StringVar(&frameStyle, "style", "", "border style: "+strings.Join(frame.StyleNames(), ", "))
	frameCmd.Flags().StringVar(&frameTitle, "title", "", "title embedded in the top border")
	frameCmd.Flags().IntVar(&frameWidth, "width", 0, "fixed total width in columns (0 = fit content)")
	frameCmd.Flags().IntVar(&framePadding, "padding", 1, "blank columns between border and content")
	frameCmd.Flags().StringVar(&frameAlign, "align", "left", "content alignment: left, center or right")
	frameCmd.Flags().BoolVar(&frameHTML, "html", false, "emit an HTML fragment instead of ANSI text")
	rootCmd.AddCommand(frameCmd)
}
