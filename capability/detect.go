// Copyright © 2025 StyledConsole contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: capability/detect.go
// Summary: Best-effort terminal capability detection from the environment.

package capability

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Detect builds a Profile from the process environment and the state of
// stdout. It is deliberately conservative: anything that cannot be confirmed
// is reported as unavailable.
func Detect() Profile {
	return detect(os.Getenv, term.IsTerminal(int(os.Stdout.Fd())))
}

// detect is the testable core of Detect.
func detect(getenv func(string) string, isTTY bool) Profile {
	p := Profile{}

	termName := getenv("TERM")
	dumb := termName == "" || termName == "dumb"

	// https://no-color.org: any non-empty value disables color.
	if isTTY && !dumb && getenv("NO_COLOR") == "" {
		p.Color = true
	}

	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(key); v != "" {
			v = strings.ToUpper(strings.ReplaceAll(v, "-", ""))
			p.Unicode = strings.Contains(v, "UTF8")
			break
		}
	}

	// Ligature-aware emoji widths only pay off on terminals that advertise
	// truecolor; everything older tends to render ZWJ sequences glyph by
	// glyph, which is exactly what the legacy strategy models.
	colorterm := getenv("COLORTERM")
	if p.Color && p.Unicode && (colorterm == "truecolor" || colorterm == "24bit") {
		p.Emoji = true
	}

	return p
}
