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
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

var bootLogo = []string{
	"   ███╗   ██╗██╗████████╗███████╗███████╗██╗  ██╗",
	"   ████╗  ██║██║╚══██╔══╝██╔════╝██╔════╝██║  ██║",
	"   ██╔██╗ ██║██║   ██║   █████╗  ███████╗███████║",
	"   ██║╚██╗██║██║   ██║   ██╔══╝  ╚════██║██╔══██║",
	"   ██║ ╚████║██║   ██║   ███████╗███████║██║  ██║",
	"   ╚═╝  ╚═══╝╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═╝",
}

const bootCommand = "ssh -i credentials nitesh@portfolio.dev"

// bootSteps are shown one group at a time, each advancing the bar.
var bootSteps = [][]string{
	{
		"> System initialization sequence started...",
		"> System core initialized successfully",
	},
	{
		"> Mounting portfolio filesystem...",
		"> /dev/skills mounted at /mnt/portfolio",
		"> Checking filesystem integrity... OK",
	},
	{
		"> Starting portfolio services...",
		"> Service: frontend-experience [STARTED]",
		"> Service: backend-systems [STARTED]",
		"> Service: devops-pipeline [STARTED]",
		"> All services running",
	},
	{
		"> Establishing encrypted connection...",
		"> Verifying credentials... success",
		"> Welcome to Nitesh's portfolio environment!",
		"> Launching interface...",
	},
}

// BootSequence prints the startup log. Delays go through sleep so tests can
// run it instantly.
type BootSequence struct {
	Out       io.Writer
	CharDelay time.Duration
	LineDelay time.Duration
	Sleep     func(time.Duration)
}

func NewBootSequence(w io.Writer) *BootSequence {
	return &BootSequence{
		Out:       w,
		CharDelay: 8 * time.Millisecond,
		LineDelay: 80 * time.Millisecond,
		Sleep:     time.Sleep,
	}
}

func (b *BootSequence) Run() error {
	green, info, _, _, reset := GetANSIColors(detectTheme())

	for _, line := range bootLogo {
		fmt.Fprintf(b.Out, "%s%s%s\n", info, line, reset)
	}
	fmt.Fprintln(b.Out)

	fmt.Fprintf(b.Out, "%s$%s ", green, reset)
	for _, r := range bootCommand {
		fmt.Fprintf(b.Out, "%c", r)
		b.Sleep(b.CharDelay)
	}
	fmt.Fprintln(b.Out)

	bar := progressbar.NewOptions(len(bootSteps),
		progressbar.OptionSetWriter(b.Out),
		progressbar.OptionSetDescription("Loading portfolio"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "▰",
			SaucerHead:    "▰",
			SaucerPadding: "▱",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	for _, step := range bootSteps {
		if err := bar.Clear(); err != nil {
			return fmt.Errorf("failed to clear progress bar: %w", err)
		}
		for _, line := range step {
			fmt.Fprintf(b.Out, "%s\n", colorizeBootLine(line, green, reset))
			b.Sleep(b.LineDelay)
		}
		if err := bar.Add(1); err != nil {
			return fmt.Errorf("failed to advance progress bar: %w", err)
		}
	}
	if err := bar.Finish(); err != nil {
		return fmt.Errorf("failed to finish progress bar: %w", err)
	}
	fmt.Fprintln(b.Out)
	return nil
}

func colorizeBootLine(line, color, reset string) string {
	for _, word := range []string{"successfully", "success", "OK", "[STARTED]", "running"} {
		if strings.Contains(line, word) {
			return strings.Replace(line, word, color+word+reset, 1)
		}
	}
	return line
}
