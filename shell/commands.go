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
	"fmt"
	"strings"

	"github.com/cybrota/termfolio/markup"
	"github.com/cybrota/termfolio/vfs"
)

// PathCommands take a filesystem path as their only argument.
var PathCommands = []string{"cat", "cd", "ls"}

// ViewCommand takes a view id as its only argument.
const ViewCommand = "tab"

// Shortcut is a keyboard hint listed by help.
type Shortcut struct {
	Keys        string
	Description string
}

var Shortcuts = []Shortcut{
	{"Ctrl + C", "Interrupt current command"},
	{"Ctrl + L", "Clear screen"},
	{"Tab", "Command completion"},
	{"↑/↓", "Navigate command history"},
}

// DefaultCommands returns the built-in commands in registry order.
func DefaultCommands() []Command {
	return []Command{
		{Name: "help", Description: "Show available commands and their usage", Handler: help},
		{Name: "ls", Description: "List directory contents", Usage: "ls [directory]", Handler: ls},
		{Name: "cd", Description: "Change directory", Usage: "cd [directory]", Handler: cd},
		{Name: "cat", Description: "Show file contents", Usage: "cat <file>", Handler: cat},
		{Name: "clear", Description: "Clear terminal screen", Handler: clearLog},
		{Name: "theme", Description: "Toggle light/dark theme", Handler: theme},
		{Name: "about", Description: "Show about information", Handler: switchTo(ViewAbout)},
		{Name: "projects", Description: "List projects", Handler: switchTo(ViewProjects)},
		{Name: "contact", Description: "Show contact information", Handler: switchTo(ViewContact)},
		{Name: "pwd", Description: "Print working directory", Handler: pwd},
		{Name: ViewCommand, Description: "Switch between tabs", Usage: "tab [tab name]", Handler: tab},
	}
}

// DefaultRegistry returns a registry of the built-in commands.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultCommands()...)
}

func help(ctx Context, _ []string) (Result, *Patch) {
	width := 0
	for _, c := range ctx.Registry.Commands() {
		width = max(width, len(c.Name))
	}

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range ctx.Registry.Commands() {
		fmt.Fprintf(&b, "  <b>%-*s</b> - %s\n", width, c.Name, c.Description)
		if c.Usage != "" {
			fmt.Fprintf(&b, "  %*s   Usage: %s\n", width, "", c.Usage)
		}
	}
	b.WriteString("Keyboard shortcuts:")
	for _, s := range Shortcuts {
		fmt.Fprintf(&b, "\n  %-12s%s", s.Keys, s.Description)
	}
	return Output(b.String()), nil
}

func ls(ctx Context, args []string) (Result, *Patch) {
	path := ctx.Session.Cwd
	if len(args) > 0 {
		path = args[0]
	}
	dir, ok := ctx.FS.ResolveDir(path, ctx.Session.Cwd)
	if !ok {
		return Fail(notFound("ls: %s: No such directory", path)), nil
	}

	lines := make([]string, 0, dir.Len())
	for _, child := range dir.Children() {
		lines = append(lines, child.Permissions()+"  "+child.Name())
	}
	return Output(strings.Join(lines, "\n")), nil
}

func cd(ctx Context, args []string) (Result, *Patch) {
	path := vfs.Home
	if len(args) > 0 {
		path = args[0]
	}
	abs, ok := ctx.FS.Abs(path, ctx.Session.Cwd)
	if !ok {
		return Fail(notFound("cd: %s: No such directory", path)), nil
	}
	return Output("Changed directory to " + abs), SetCwd(abs)
}

func cat(ctx Context, args []string) (Result, *Patch) {
	if len(args) == 0 {
		return Fail(missingOperand("cat: missing file operand")), nil
	}
	file, ok := ctx.FS.ResolveFile(args[0], ctx.Session.Cwd)
	if !ok {
		return Fail(notFound("cat: %s: No such file", args[0])), nil
	}
	return Output(markup.Format(file.Content())), nil
}

func clearLog(Context, []string) (Result, *Patch) {
	return Result{Silent: true}, &Patch{ClearLog: true}
}

func theme(ctx Context, _ []string) (Result, *Patch) {
	next := ctx.Session.Theme.Toggle()
	return Output(fmt.Sprintf("Switched to %s theme", next)), SetTheme(next)
}

func pwd(ctx Context, _ []string) (Result, *Patch) {
	return Output(ctx.Session.Cwd), nil
}

func tab(_ Context, args []string) (Result, *Patch) {
	if len(args) == 0 {
		return Fail(missingOperand("tab: missing tab name")), nil
	}
	name := strings.ToLower(args[0])
	v, ok := ParseView(name)
	if !ok {
		return Fail(notFound("tab: %s: No such tab. Available tabs: %s",
			name, strings.Join(ViewNames(), ", "))), nil
	}
	return Output(fmt.Sprintf("Switched to %s tab", v)), SetView(v)
}

func switchTo(v View) Handler {
	return func(Context, []string) (Result, *Patch) {
		return Output(fmt.Sprintf("Switched to %s tab", v)), SetView(v)
	}
}
