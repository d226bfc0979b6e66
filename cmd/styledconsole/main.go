package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styledconsole",
	Short: "StyledConsole - gradient-colored frames and banners for the terminal.",
	Long: `StyledConsole renders styled, column-aligned text blocks: bordered
frames, figlet-style banners and animated gradients, with Unicode-aware
width measurement that keeps emoji and CJK content from breaking alignment.

Run 'styledconsole help <command>' for details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
