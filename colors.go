// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/termfolio/shell"
)

// ColorScheme is the palette of one theme.
type ColorScheme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Path      lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	CodeBg    lipgloss.Color
}

func detectTheme() shell.Theme {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return shell.ThemeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return shell.ThemeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return shell.ThemeDark
			} else if strings.Contains(theme, "light") {
				return shell.ThemeLight
			}
		}
	}

	return shell.ThemeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("25"),
		Secondary: lipgloss.Color("30"),
		Accent:    lipgloss.Color("127"),
		Success:   lipgloss.Color("28"),
		Warning:   lipgloss.Color("130"),
		Error:     lipgloss.Color("160"),
		Path:      lipgloss.Color("61"),
		Border:    lipgloss.Color("247"),
		Text:      lipgloss.Color("235"),
		TextMuted: lipgloss.Color("243"),
		CodeBg:    lipgloss.Color("254"),
	}
}

// The dark palette follows the catppuccin tones used by the web version.
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#74c7ec"),
		Accent:    lipgloss.Color("#cba6f7"),
		Success:   lipgloss.Color("#a6e3a1"),
		Warning:   lipgloss.Color("#f9e2af"),
		Error:     lipgloss.Color("#f38ba8"),
		Path:      lipgloss.Color("#f5c2e7"),
		Border:    lipgloss.Color("240"),
		Text:      lipgloss.Color("#cdd6f4"),
		TextMuted: lipgloss.Color("245"),
		CodeBg:    lipgloss.Color("#313244"),
	}
}

func GetColorScheme(theme shell.Theme) *ColorScheme {
	if theme == shell.ThemeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

// GetANSIColors returns escape sequences for plain CLI output.
func GetANSIColors(theme shell.Theme) (success, info, warning, error, reset string) {
	// Darker colors on light terminals, brighter ones on dark terminals
	if theme == shell.ThemeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
