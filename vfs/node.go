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

// Package vfs holds the static, in-memory filesystem browsed by the shell.
// A tree is built once and never mutated afterwards; every lookup hands out
// read-only views of the nodes.
package vfs

// Kind tells directories and files apart
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Node is either a directory with ordered children or a file with text content.
type Node struct {
	name     string
	kind     Kind
	content  string
	names    []string // insertion order of children
	children map[string]*Node
}

// NewFile creates a file node.
func NewFile(name, content string) *Node {
	return &Node{name: name, kind: KindFile, content: content}
}

// NewDir creates a directory holding the given children in order.
// A child whose name is already taken replaces the earlier one but keeps
// the earlier position.
func NewDir(name string, children ...*Node) *Node {
	dir := &Node{name: name, kind: KindDir, children: make(map[string]*Node, len(children))}
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, exists := dir.children[child.name]; !exists {
			dir.names = append(dir.names, child.name)
		}
		dir.children[child.name] = child
	}
	return dir
}

func (n *Node) Name() string    { return n.name }
func (n *Node) Kind() Kind      { return n.kind }
func (n *Node) IsDir() bool     { return n.kind == KindDir }
func (n *Node) Content() string { return n.content }

// Len returns the number of children (zero for files).
func (n *Node) Len() int { return len(n.names) }

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	if n.kind != KindDir {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.names))
	for _, name := range n.names {
		out = append(out, n.children[name])
	}
	return out
}

// Permissions returns the synthetic mode string shown by ls.
func (n *Node) Permissions() string {
	if n.IsDir() {
		return "drwxr-xr-x"
	}
	return "-rw-r--r--"
}
