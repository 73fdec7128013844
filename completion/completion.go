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


// Package completion proposes candidates for a partially typed command line
// and reduces them to the text that should replace it.
package completion

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cybrota/termfolio/vfs"
)

// Engine generates candidates from the registered command names, the
// filesystem and the view ids.
type Engine struct {
	fs           *vfs.FS
	commands     []string
	views        []string
	pathCommands []string
	viewCommand  string
}

type Option func(*Engine)

// WithPathCommands sets the commands whose argument is completed from the
// filesystem.
func WithPathCommands(names ...string) Option {
	return func(e *Engine) { e.pathCommands = append([]string(nil), names...) }
}

// WithViewCommand sets the command whose argument is completed from the
// view ids.
func WithViewCommand(name string) Option {
	return func(e *Engine) { e.viewCommand = name }
}

func NewEngine(fs *vfs.FS, commands, views []string, opts ...Option) *Engine {
	e := &Engine{
		fs:           fs,
		commands:     append([]string(nil), commands...),
		views:        append([]string(nil), views...),
		pathCommands: []string{"cat", "cd", "ls"},
		viewCommand:  "tab",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Suggest returns the candidates for input, in registry, listing or view
// order. cwd is the directory relative paths are completed from.
func (e *Engine) Suggest(input, cwd string) []string {
	line := strings.TrimLeftFunc(input, unicode.IsSpace)
	if line == "" {
		return nil
	}
	if !strings.ContainsFunc(line, unicode.IsSpace) {
		return e.suggestCommand(line)
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	endsInSpace := unicode.IsSpace(lastRune(line))

	var partial string
	switch {
	case len(args) == 0:
	case len(args) == 1 && !endsInSpace:
		partial = args[0]
	default:
		return nil
	}

	switch {
	case slices.Contains(e.pathCommands, cmd):
		return e.suggestPath(cmd, partial, cwd)
	case cmd == e.viewCommand:
		return e.suggestView(cmd, partial)
	}
	return nil
}

func (e *Engine) suggestCommand(token string) []string {
	token = strings.ToLower(token)
	var out []string
	for _, name := range e.commands {
		if strings.HasPrefix(strings.ToLower(name), token) {
			out = append(out, name)
		}
	}
	return out
}

// suggestPath lists the children of the directory named by everything up to
// the last "/" of partial, or of cwd when there is none.
func (e *Engine) suggestPath(cmd, partial, cwd string) []string {
	if e.fs == nil {
		return nil
	}
	dirPart, base := "", partial
	if i := strings.LastIndex(partial, "/"); i >= 0 {
		dirPart, base = partial[:i+1], partial[i+1:]
	}

	dir, ok := e.fs.ResolveDir(dirPart, cwd)
	if !ok {
		return nil
	}

	var out []string
	for _, child := range dir.Children() {
		if strings.HasPrefix(child.Name(), base) {
			out = append(out, cmd+" "+dirPart+child.Name())
		}
	}
	return out
}

func (e *Engine) suggestView(cmd, partial string) []string {
	var out []string
	for _, v := range e.views {
		if strings.HasPrefix(v, partial) {
			out = append(out, cmd+" "+v)
		}
	}
	return out
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// LongestCommonPrefix returns the longest prefix shared by all candidates.
// Only the smallest and largest candidate in sort order need comparing.
func LongestCommonPrefix(cands []string) string {
	switch len(cands) {
	case 0:
		return ""
	case 1:
		return cands[0]
	}

	sorted := slices.Clone(cands)
	slices.Sort(sorted)
	first, last := sorted[0], sorted[len(sorted)-1]

	i := 0
	for i < len(first) && i < len(last) && first[i] == last[i] {
		i++
	}
	for i > 0 && i < len(first) && !utf8.RuneStart(first[i]) {
		i--
	}
	return first[:i]
}

// Complete picks the replacement for input. A single candidate is taken
// verbatim, a common prefix longer than the typed text extends it, and a
// second Tab inside the double-tab window accepts the first candidate.
// The boolean is false when the input stays as it was.
func Complete(input string, cands []string, doubleTab bool) (string, bool) {
	switch len(cands) {
	case 0:
		return input, false
	case 1:
		return cands[0], cands[0] != input
	}

	typed := strings.TrimLeftFunc(input, unicode.IsSpace)
	if lcp := LongestCommonPrefix(cands); len(lcp) > len(typed) {
		return lcp, true
	}
	if doubleTab {
		return cands[0], cands[0] != input
	}
	return input, false
}
