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


package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybrota/termfolio/vfs"
)

var (
	commands = []string{"help", "ls", "cd", "cat", "clear", "theme", "about", "projects", "contact", "pwd", "tab"}
	views    = []string{"main", "projects", "about", "contact"}
)

func newEngine() *Engine {
	return NewEngine(vfs.Default(), commands, views)
}

func TestSuggest(t *testing.T) {
	e := newEngine()

	testCases := []struct {
		Name  string
		Input string
		Cwd   string
		Want  []string
	}{
		{Name: "empty", Input: "", Cwd: "~", Want: nil},
		{Name: "whitespace", Input: "   ", Cwd: "~", Want: nil},
		{Name: "commands starting with c", Input: "c", Cwd: "~", Want: []string{"cd", "cat", "clear", "contact"}},
		{Name: "command prefix ignores case", Input: "CL", Cwd: "~", Want: []string{"clear"}},
		{Name: "leading space", Input: "  pw", Cwd: "~", Want: []string{"pwd"}},
		{Name: "no command matches", Input: "zz", Cwd: "~", Want: nil},
		{
			Name:  "path command without argument",
			Input: "ls ", Cwd: "~",
			Want: []string{"ls welcome.txt", "ls about.md", "ls projects", "ls contact.sh"},
		},
		{Name: "path prefix", Input: "cat a", Cwd: "~", Want: []string{"cat about.md"}},
		{Name: "path prefix is case sensitive", Input: "cat A", Cwd: "~", Want: nil},
		{Name: "relative to cwd", Input: "cat R", Cwd: "~/projects", Want: []string{"cat README.md"}},
		{Name: "inside a directory", Input: "cat projects/", Cwd: "~", Want: []string{"cat projects/README.md"}},
		{Name: "absolute directory part", Input: "cd ~/p", Cwd: "~/projects", Want: []string{"cd ~/projects"}},
		{Name: "missing directory part", Input: "cat nope/", Cwd: "~", Want: nil},
		{Name: "second argument", Input: "ls a b", Cwd: "~", Want: nil},
		{Name: "after first argument", Input: "ls projects ", Cwd: "~", Want: nil},
		{Name: "path command is case sensitive", Input: "CAT a", Cwd: "~", Want: nil},
		{Name: "view ids", Input: "tab ", Cwd: "~", Want: []string{"tab main", "tab projects", "tab about", "tab contact"}},
		{Name: "view prefix", Input: "tab a", Cwd: "~", Want: []string{"tab about"}},
		{Name: "other command", Input: "theme x", Cwd: "~", Want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, e.Suggest(tc.Input, tc.Cwd))
		})
	}
}

func TestSuggestCustomCommands(t *testing.T) {
	e := NewEngine(vfs.Default(), []string{"open", "goto"}, views,
		WithPathCommands("open"), WithViewCommand("goto"))

	assert.Equal(t, []string{"open projects"}, e.Suggest("open p", "~"))
	assert.Equal(t, []string{"goto main"}, e.Suggest("goto m", "~"))
	assert.Nil(t, e.Suggest("cat a", "~"))
}

func TestLongestCommonPrefix(t *testing.T) {
	testCases := []struct {
		Name  string
		Cands []string
		Want  string
	}{
		{Name: "none", Cands: nil, Want: ""},
		{Name: "single", Cands: []string{"cat about.md"}, Want: "cat about.md"},
		{Name: "two", Cands: []string{"ls projects", "ls welcome.txt"}, Want: "ls "},
		{Name: "unsorted", Cands: []string{"contact", "cd", "clear", "cat"}, Want: "c"},
		{Name: "nothing shared", Cands: []string{"a", "b"}, Want: ""},
		{Name: "one is prefix of other", Cands: []string{"tab", "tab about"}, Want: "tab"},
		{Name: "multibyte", Cands: []string{"é1", "é2"}, Want: "é"},
		{Name: "differing multibyte", Cands: []string{"xé", "xè"}, Want: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, LongestCommonPrefix(tc.Cands))
		})
	}
}

func TestLongestCommonPrefixDoesNotReorderInput(t *testing.T) {
	cands := []string{"ls welcome.txt", "ls about.md"}
	LongestCommonPrefix(cands)
	assert.Equal(t, []string{"ls welcome.txt", "ls about.md"}, cands)
}

func TestComplete(t *testing.T) {
	testCases := []struct {
		Name      string
		Input     string
		Cands     []string
		DoubleTab bool
		Want      string
		Changed   bool
	}{
		{Name: "no candidates", Input: "zz", Cands: nil, Want: "zz"},
		{Name: "single candidate", Input: "ca", Cands: []string{"cat"}, Want: "cat", Changed: true},
		{Name: "extends to prefix", Input: "l", Cands: []string{"ls projects", "ls welcome.txt"}, Want: "ls ", Changed: true},
		{Name: "prefix not longer", Input: "c", Cands: []string{"cd", "cat"}, Want: "c"},
		{Name: "double tab takes first", Input: "c", Cands: []string{"cd", "cat"}, DoubleTab: true, Want: "cd", Changed: true},
		{Name: "single candidate already typed", Input: "cat", Cands: []string{"cat"}, Want: "cat"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, changed := Complete(tc.Input, tc.Cands, tc.DoubleTab)
			assert.Equal(t, tc.Want, got)
			assert.Equal(t, tc.Changed, changed)
		})
	}
}
