package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksokolowski/StyledConsole-sub001/banner"
	"github.com/ksokolowski/StyledConsole-sub001/export"
)

var (
	bannerRender renderFlags
	bannerFont   string
	bannerHTML   bool
)

var bannerCmd = &cobra.Command{
	Use:   "banner <message>",
	Short: "Render a figlet-style ASCII-art banner",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := bannerRender.profile()
		spec, preset, err := bannerRender.gradient()
		if err != nil {
			return fail(err)
		}
		font := bannerFont
		if font == "" {
			font = preset.Font
		}

		out, err := banner.Render(strings.Join(args, " "), font, spec, profile)
		if err != nil {
			return fail(err)
		}

		if bannerHTML {
			fmt.Fprintln(cmd.OutOrStdout(), export.HTML(out))
			return nil
		}
		for _, line := range out {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	bannerRender.register(bannerCmd)
	bannerCmd.Flags().StringVar(&bannerFont, "font", "", "figlet font name (default \"standard\")")
	bannerCmd.Flags().BoolVar(&bannerHTML, "html", false, "emit an HTML fragment instead of ANSI text")
	rootCmd.AddCommand(bannerCmd)
}
