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
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cybrota/termfolio/markup"
	"github.com/cybrota/termfolio/shell"
	"github.com/cybrota/termfolio/vfs"
)

var errCommandFailed = errors.New("one or more commands failed")

// runExec runs each line against a fresh session and prints the transcript.
// Output is styled unless plain is set, in which case markup is stripped.
func runExec(w io.Writer, lines []string, plain bool, theme shell.Theme, logger *zap.Logger) error {
	interp := shell.NewInterpreter(vfs.Default(),
		shell.WithTheme(theme),
		shell.WithLogger(logger),
	)
	styles := NewStyles(theme)

	failed := 0
	for _, line := range lines {
		cwd := interp.Session().Cwd
		res := interp.Run(line)
		if res.Failed() {
			failed++
		}

		if plain {
			fmt.Fprintf(w, "%s $ %s\n", cwd, line)
			if !res.Silent {
				fmt.Fprintln(w, markup.Strip(res.Text()))
			}
			continue
		}

		fmt.Fprintln(w, styles.prompt(cwd)+styles.Input.Render(line))
		if !res.Silent {
			fmt.Fprintln(w, styles.RenderEntry(res.Entry()))
		}
	}

	logger.Debug("exec finished", zap.Int("lines", len(lines)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCommandFailed, failed, len(lines))
	}
	return nil
}
