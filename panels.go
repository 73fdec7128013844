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
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/termfolio/shell"
)

type Skill struct {
	Name  string
	Level int
}

type Project struct {
	Title       string
	Description string
	Tags        []string
	Link        string
}

type SocialLink struct {
	Name string
	URL  string
}

var skills = []Skill{
	{"Rust", 90},
	{"Haskell", 85},
	{"Kubernetes", 88},
	{"Docker", 92},
	{"Terraform", 87},
	{"AWS/Azure", 85},
}

var projects = []Project{
	{
		Title:       "Rust Backend Service",
		Description: "High-performance API service with Kubernetes deployment",
		Tags:        []string{"Rust", "Kubernetes", "API"},
		Link:        "https://github.com/username/rust-service",
	},
	{
		Title:       "Cloud Infrastructure",
		Description: "Multi-cloud infrastructure setup with Terraform",
		Tags:        []string{"AWS", "Azure", "Terraform"},
		Link:        "https://github.com/username/cloud-infra",
	},
	{
		Title:       "Haskell Data Processor",
		Description: "Functional data processing pipeline for analytics",
		Tags:        []string{"Haskell", "Functional", "Data"},
		Link:        "https://github.com/username/haskell-processor",
	},
}

var socialLinks = []SocialLink{
	{"Github", "https://github.com/username"},
	{"LinkedIn", "https://linkedin.com/in/username"},
	{"Email", "mailto:email@example.com"},
}

// panelTitles are the tab captions.
var panelTitles = map[shell.View]string{
	shell.ViewMain:     "main.zsh",
	shell.ViewProjects: "projects.md",
	shell.ViewAbout:    "about.md",
	shell.ViewContact:  "contact.sh",
}

// skillBar draws a level out of 100 with the loader characters.
func skillBar(level, width int) string {
	filled := level * width / 100
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// panelMarkdown returns the markdown source of a view's panel. The main
// view has no panel of its own.
func panelMarkdown(view shell.View) string {
	var b strings.Builder
	switch view {
	case shell.ViewProjects:
		b.WriteString("# Projects\n\n")
		for _, p := range projects {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", p.Title, p.Description)
			for i, tag := range p.Tags {
				if i > 0 {
					b.WriteString(" · ")
				}
				fmt.Fprintf(&b, "`%s`", tag)
			}
			fmt.Fprintf(&b, "\n\n[View Project](%s)\n\n", p.Link)
		}
	case shell.ViewAbout:
		b.WriteString("# About Me\n\n")
		b.WriteString("I'm a systems programmer and DevOps engineer passionate about building efficient, " +
			"scalable systems. With expertise in low-level programming, system architecture, " +
			"and cloud infrastructure, I create robust solutions for complex technical challenges.\n\n")
		b.WriteString("## Experience\n\n")
		b.WriteString("- **Senior DevOps Engineer** (2022 - Present): Leading cloud infrastructure and CI/CD pipelines for distributed systems.\n")
		b.WriteString("- **Systems Programmer** (2019 - 2022): Developed performance-critical software for embedded systems.\n\n")
		b.WriteString("## Skills\n\n")
		for _, s := range skills {
			fmt.Fprintf(&b, "- `%-10s` %s %d%%\n", s.Name, skillBar(s.Level, 20), s.Level)
		}
	case shell.ViewContact:
		b.WriteString("# Get in Touch\n\n")
		b.WriteString("Feel free to reach out for collaborations, projects, or just to say hello. " +
			"I'm always open to discussing new ideas and opportunities.\n\n")
		for _, l := range socialLinks {
			fmt.Fprintf(&b, "- **%s**: %s\n", l.Name, l.URL)
		}
	}
	return b.String()
}

// PanelRenderer renders view panels with glamour and caches the result.
type PanelRenderer struct {
	cache *cache.Cache
}

func NewPanelRenderer(c *cache.Cache) *PanelRenderer {
	if c == nil {
		c = NewPanelCache()
	}
	return &PanelRenderer{cache: c}
}

// Render returns the panel for view at the given width. It falls back to the
// markdown source when glamour fails.
func (p *PanelRenderer) Render(view shell.View, theme shell.Theme, width int) string {
	src := panelMarkdown(view)
	if src == "" {
		return ""
	}
	if rendered, ok := GetPanel(p.cache, view, theme, width); ok {
		return rendered
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(theme)),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return src
	}
	rendered, err := r.Render(src)
	if err != nil {
		return src
	}
	CachePanel(p.cache, view, theme, width, rendered)
	return rendered
}
