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


// Package markup turns the lightweight markdown used in portfolio files into
// a small set of tags, and back. It never touches text without markers.
package markup

import (
	"regexp"
	"strings"
)

// Tag is one of the tags produced by Format.
type Tag string

const (
	H1   Tag = "h1"
	H2   Tag = "h2"
	H3   Tag = "h3"
	Bold Tag = "b"
	Ital Tag = "i"
	Code Tag = "code"
	Item Tag = "li"
)

// Bullet prefixes list items.
const Bullet = "• "

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Rules run in order: headings before emphasis so that "# **x**" keeps both,
// bold before italic so "**" is never read as two italics.
var rules = []rule{
	{regexp.MustCompile(`(?m)^# (.+)$`), "<h1>$1</h1>"},
	{regexp.MustCompile(`(?m)^## (.+)$`), "<h2>$1</h2>"},
	{regexp.MustCompile(`(?m)^### (.+)$`), "<h3>$1</h3>"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<b>$1</b>"},
	{regexp.MustCompile(`\*(.+?)\*`), "<i>$1</i>"},
	{regexp.MustCompile("`(.+?)`"), "<code>$1</code>"},
	{regexp.MustCompile(`(?m)^- (.+)$`), "<li>" + Bullet + "$1</li>"},
}

// Format applies the markup rules to text.
func Format(text string) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

var tagRe = regexp.MustCompile(`</?(?:h[1-3]|b|i|code|li)>`)

// Strip removes every tag Format can produce, leaving the inner text.
func Strip(text string) string {
	return tagRe.ReplaceAllString(text, "")
}

var (
	inline = []Tag{Code, Bold, Ital}
	block  = []Tag{H1, H2, H3, Item}
	tagRes = map[Tag]*regexp.Regexp{}
)

func init() {
	for _, t := range append(append([]Tag{}, inline...), block...) {
		tagRes[t] = regexp.MustCompile("<" + string(t) + ">(.*?)</" + string(t) + ">")
	}
}

// Render replaces every tagged span with style(tag, inner). Inline tags are
// rendered first so block styles wrap already styled text.
func Render(text string, style func(tag Tag, inner string) string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	for _, t := range append(append([]Tag{}, inline...), block...) {
		re := tagRes[t]
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return style(t, re.FindStringSubmatch(m)[1])
		})
	}
	return text
}
