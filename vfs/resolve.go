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

package vfs

import "strings"

// Home is the name of the root directory.
const Home = "~"

// FS wraps a root directory and resolves paths against it.
type FS struct {
	root *Node
}

// New returns a filesystem rooted at root. A non-directory root is wrapped
// into an empty home directory.
func New(root *Node) *FS {
	if root == nil || !root.IsDir() {
		root = NewDir(Home)
	}
	return &FS{root: root}
}

func (fs *FS) Root() *Node { return fs.root }

// trail is the chain of directories from the root to the current position.
type trail []*Node

func (t trail) top() *Node { return t[len(t)-1] }

func (t trail) path() string {
	if len(t) == 1 {
		return Home
	}
	var b strings.Builder
	b.WriteString(Home)
	for _, n := range t[1:] {
		b.WriteByte('/')
		b.WriteString(n.name)
	}
	return b.String()
}

// split breaks a path into its non-empty segments. A path is absolute when it
// starts with "/" or its first segment is "~"; the "~" itself is dropped.
func split(path string) ([]string, bool) {
	abs := strings.HasPrefix(path, "/")
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) > 0 && segs[0] == Home {
		return segs[1:], true
	}
	return segs, abs
}

// walk descends through directories only. "." stays put and ".." climbs,
// never above the root.
func walk(from trail, segs []string) (trail, bool) {
	t := append(trail(nil), from...)
	for _, seg := range segs {
		switch seg {
		case ".":
			continue
		case "..":
			if len(t) > 1 {
				t = t[:len(t)-1]
			}
			continue
		}
		child, ok := t.top().Child(seg)
		if !ok || !child.IsDir() {
			return nil, false
		}
		t = append(t, child)
	}
	return t, true
}

// start picks the trail a path is resolved from: the root for absolute
// paths, otherwise the directory named by cwd (itself read from the root).
func (fs *FS) start(abs bool, cwd string) (trail, bool) {
	rootTrail := trail{fs.root}
	if abs {
		return rootTrail, true
	}
	cwdSegs, _ := split(cwd)
	return walk(rootTrail, cwdSegs)
}

func (fs *FS) locateDir(path, cwd string) (trail, bool) {
	segs, abs := split(path)
	from, ok := fs.start(abs, cwd)
	if !ok {
		return nil, false
	}
	return walk(from, segs)
}

// ResolveDir resolves path to a directory. Relative paths are read from cwd.
func (fs *FS) ResolveDir(path, cwd string) (*Node, bool) {
	t, ok := fs.locateDir(path, cwd)
	if !ok {
		return nil, false
	}
	return t.top(), true
}

// Abs resolves path to a directory and returns its canonical form, such as
// "~/projects".
func (fs *FS) Abs(path, cwd string) (string, bool) {
	t, ok := fs.locateDir(path, cwd)
	if !ok {
		return "", false
	}
	return t.path(), true
}

// ResolveFile resolves path to a file. Every segment but the last must name
// a directory; the last must name a file inside it.
func (fs *FS) ResolveFile(path, cwd string) (*Node, bool) {
	segs, abs := split(path)
	if len(segs) == 0 {
		return nil, false
	}
	from, ok := fs.start(abs, cwd)
	if !ok {
		return nil, false
	}
	parent, ok := walk(from, segs[:len(segs)-1])
	if !ok {
		return nil, false
	}
	file, ok := parent.top().Child(segs[len(segs)-1])
	if !ok || file.IsDir() {
		return nil, false
	}
	return file, true
}
