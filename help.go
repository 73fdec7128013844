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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/termfolio/shell"
)

func getHelpMessage() string {
	var commands strings.Builder
	for _, c := range shell.DefaultCommands() {
		fmt.Fprintf(&commands, "* **%s** %s", c.Name, c.Description)
		if c.Usage != "" {
			fmt.Fprintf(&commands, " (`%s`)", c.Usage)
		}
		commands.WriteString("\n")
	}

	var shortcuts strings.Builder
	for _, s := range shell.Shortcuts {
		fmt.Fprintf(&shortcuts, "* **%s** %s\n", s.Keys, s.Description)
	}

	message := fmt.Sprintf(`

 **Termfolio %s**

A portfolio you browse like a shell. Walk a small virtual filesystem with ls, cd and cat,
switch between the projects, about and contact panels, and let Tab finish your typing.

Built with Go %s

# 1. Commands
%s
# 2. Keyboard shortcuts
%s* **Ctrl + K** Clear screen
* **Ctrl + U** Clear the input line
* **Ctrl + Y** Copy the last output to the clipboard
* **PgUp/PgDn** Scroll the transcript
* **Esc** Quit

# 3. Non-interactive use
* termfolio exec "ls" "cat about.md" runs command lines and prints the transcript
* termfolio exec --plain strips the markup from the output
* termfolio settings shows and creates ~/%s

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), commands.String(), shortcuts.String(), configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
