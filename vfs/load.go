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

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tree.yaml
var defaultTree []byte

// Parse builds a filesystem from a YAML document. Mappings become
// directories and scalars become files. yaml.Node is used instead of a Go
// map so that key order, and with it the listing order, survives.
func Parse(data []byte) (*FS, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tree: %w", err)
	}
	if doc.Kind == 0 {
		return New(NewDir(Home)), nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("unexpected tree document")
	}
	root, err := buildNode(Home, doc.Content[0])
	if err != nil {
		return nil, err
	}
	if !root.IsDir() {
		return nil, fmt.Errorf("tree root must be a mapping, got a scalar")
	}
	return New(root), nil
}

func buildNode(name string, n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return NewFile(name, n.Value), nil
	case yaml.MappingNode:
		children := make([]*Node, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if key == "" || key == "." || key == ".." || key == Home {
				return nil, fmt.Errorf("invalid entry name %q under %q", key, name)
			}
			child, err := buildNode(key, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return NewDir(name, children...), nil
	default:
		return nil, fmt.Errorf("entry %q: unsupported yaml node (line %d)", name, n.Line)
	}
}

// Default returns the built-in portfolio tree.
func Default() *FS {
	fs, err := Parse(defaultTree)
	if err != nil {
		panic(fmt.Sprintf("vfs: embedded tree is invalid: %v", err))
	}
	return fs
}
