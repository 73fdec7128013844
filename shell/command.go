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


// Package shell implements the command interpreter: the registry of
// built-in commands, the dispatcher and the transcript they write to.
package shell

import "github.com/cybrota/termfolio/vfs"

// Context is the read-only view a handler works with.
type Context struct {
	Session  Session
	FS       *vfs.FS
	Registry *Registry
}

// Handler runs a command. It returns the result and, optionally, the
// session changes to apply when the result is not an error.
type Handler func(ctx Context, args []string) (Result, *Patch)

// Command describes a registered command.
type Command struct {
	Name        string
	Description string
	Usage       string
	Handler     Handler
}

// Registry is an ordered, fixed set of commands.
type Registry struct {
	names    []string
	commands map[string]Command
}

// NewRegistry builds a registry in the given order. A later command with an
// existing name replaces the earlier one in its position.
func NewRegistry(commands ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(commands))}
	for _, c := range commands {
		if c.Name == "" || c.Handler == nil {
			continue
		}
		if _, ok := r.commands[c.Name]; !ok {
			r.names = append(r.names, c.Name)
		}
		r.commands[c.Name] = c
	}
	return r
}

// Lookup finds a command by its exact, case-sensitive name.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Names returns the command names in registry order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Commands returns the commands in registry order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.commands[n])
	}
	return out
}

func (r *Registry) Len() int { return len(r.names) }
