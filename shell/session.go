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


package shell

import (
	"strings"

	"github.com/cybrota/termfolio/vfs"
)

// View is one of the panels the host renders next to the terminal.
type View string

const (
	ViewMain     View = "main"
	ViewProjects View = "projects"
	ViewAbout    View = "about"
	ViewContact  View = "contact"
)

var views = []View{ViewMain, ViewProjects, ViewAbout, ViewContact}

// Views returns the known view ids in display order.
func Views() []View {
	return append([]View(nil), views...)
}

// ViewNames returns the known view ids as strings.
func ViewNames() []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = string(v)
	}
	return out
}

// ParseView lower-cases s and matches it against the known views.
func ParseView(s string) (View, bool) {
	s = strings.ToLower(s)
	for _, v := range views {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Session is the mutable state of one interpreter. Handlers receive a copy
// and describe changes through a Patch.
type Session struct {
	Cwd   string
	View  View
	Theme Theme
}

// NewSession starts at the home directory on the main view.
func NewSession(theme Theme) Session {
	t, ok := ParseTheme(string(theme))
	if !ok {
		t = ThemeDark
	}
	return Session{Cwd: vfs.Home, View: ViewMain, Theme: t}
}
