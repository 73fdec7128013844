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
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/termfolio/markup"
	"github.com/cybrota/termfolio/shell"
)

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Prompt        lipgloss.Style
	Path          lipgloss.Style
	Input         lipgloss.Style
	Output        lipgloss.Style
	ErrorMessage  lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Candidates    lipgloss.Style

	Heading [3]lipgloss.Style
	Bold    lipgloss.Style
	Italic  lipgloss.Style
	Code    lipgloss.Style
	Bullet  lipgloss.Style
	Perm    lipgloss.Style
}

// NewStyles creates the styles of a theme
func NewStyles(theme shell.Theme) *Styles {
	scheme := GetColorScheme(theme)
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Primary),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Underline(true).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		Path:   lipgloss.NewStyle().Foreground(scheme.Path),
		Input:  lipgloss.NewStyle().Foreground(scheme.Text),
		Output: lipgloss.NewStyle().Foreground(scheme.Text),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc:   lipgloss.NewStyle().Foreground(scheme.TextMuted),
		Candidates: lipgloss.NewStyle().Foreground(scheme.Secondary),

		Heading: [3]lipgloss.Style{
			lipgloss.NewStyle().Foreground(scheme.Primary).Bold(true).Underline(true),
			lipgloss.NewStyle().Foreground(scheme.Secondary).Bold(true),
			lipgloss.NewStyle().Foreground(scheme.Accent).Bold(true),
		},
		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Code: lipgloss.NewStyle().
			Foreground(scheme.Warning).
			Background(scheme.CodeBg),
		Bullet: lipgloss.NewStyle().Foreground(scheme.Text),
		Perm:   lipgloss.NewStyle().Foreground(scheme.TextMuted),
	}
}

// RenderMarkup turns the tags produced by cat and help into terminal styles.
func (s *Styles) RenderMarkup(text string) string {
	return markup.Render(text, func(tag markup.Tag, inner string) string {
		switch tag {
		case markup.H1:
			return s.Heading[0].Render(inner)
		case markup.H2:
			return s.Heading[1].Render(inner)
		case markup.H3:
			return s.Heading[2].Render(inner)
		case markup.Bold:
			return s.Bold.Render(inner)
		case markup.Ital:
			return s.Italic.Render(inner)
		case markup.Code:
			return s.Code.Render(inner)
		case markup.Item:
			return s.Bullet.Render(inner)
		}
		return inner
	})
}

// prompt renders the "cwd $" prefix of an input line.
func (s *Styles) prompt(cwd string) string {
	return s.Path.Render(cwd) + " " + s.Prompt.Render("$") + " "
}

var permRe = regexp.MustCompile(`^[d-][rwx-]{9}  `)

// RenderEntry renders one transcript entry.
func (s *Styles) RenderEntry(e shell.Entry) string {
	switch e.Kind {
	case shell.EntryInput:
		return s.Prompt.Render("$") + " " + s.Input.Render(e.Text)
	case shell.EntryError:
		return s.ErrorMessage.Render(e.Text)
	}

	lines := strings.Split(s.RenderMarkup(e.Text), "\n")
	for i, line := range lines {
		if permRe.MatchString(line) {
			lines[i] = s.Perm.Render(line[:10]) + line[10:]
		}
	}
	return strings.Join(lines, "\n")
}
