// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the tektonlens CLI.
package ux

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette - deep ocean teals and arctic waters.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Main brand color
	ColorTealDeep    = lipgloss.Color("#16858E") // Borders, accents
	ColorSlate       = lipgloss.Color("#2C4A54") // Muted text
	ColorWarning     = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError       = lipgloss.Color("#E74C3C") // Red for errors
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle: lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Bold:     lipgloss.NewStyle().Bold(true),
	Muted:    lipgloss.NewStyle().Foreground(ColorSlate),
	Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
	Error:    lipgloss.NewStyle().Foreground(ColorError),
}

// colorEnabled reports whether styled output should be produced. Styling
// is disabled when stdout is not a terminal (pipes, redirects, CI) or when
// NO_COLOR is set.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""

// SetColorEnabled overrides terminal detection. Used by the --no-color
// flag and by tests.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether styled output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Render applies style to text when color is enabled, otherwise returns
// the text unchanged.
func Render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Title renders text in the title style.
func Title(text string) string {
	return Render(Styles.Title, text)
}

// Subtitle renders text in the subtitle style.
func Subtitle(text string) string {
	return Render(Styles.Subtitle, text)
}

// Muted renders text in the muted style.
func Muted(text string) string {
	return Render(Styles.Muted, text)
}

// ErrorText renders text in the error style.
func ErrorText(text string) string {
	return Render(Styles.Error, text)
}
