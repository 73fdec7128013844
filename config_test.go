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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cybrota/termfolio/shell"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: light\neditor:\n  result_delay: 0s\n")
	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme light, got %q", cfg.Theme)
	}
	if cfg.Editor.ResultDelay != 0 {
		t.Errorf("expected no result delay, got %v", cfg.Editor.ResultDelay)
	}
	if cfg.Editor.DoubleTabWindow != 500*time.Millisecond {
		t.Errorf("expected default double tab window, got %v", cfg.Editor.DoubleTabWindow)
	}
	if !cfg.Boot.Enabled {
		t.Error("expected boot to stay enabled")
	}
}

func TestLoadConfigDurations(t *testing.T) {
	path := writeConfig(t, "editor:\n  double_tab_window: 750ms\n  result_delay: 1s\n")
	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.DoubleTabWindow != 750*time.Millisecond || cfg.Editor.ResultDelay != time.Second {
		t.Errorf("unexpected editor config: %+v", cfg.Editor)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"broken yaml", "theme: [dark\n"},
		{"unknown theme", "theme: solarized\n"},
		{"zero double tab window", "editor:\n  double_tab_window: 0s\n"},
		{"negative delay", "editor:\n  result_delay: -5ms\n"},
		{"bad duration", "editor:\n  result_delay: soon\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadConfigFrom(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if cfg == nil || *cfg != defaultConfig() {
				t.Errorf("expected defaults alongside the error, got %+v", cfg)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	cfg := defaultConfig()
	cfg.Theme = " Light "
	if got := cfg.ResolveTheme(); got != shell.ThemeLight {
		t.Errorf("expected light, got %q", got)
	}

	t.Setenv("COLORFGBG", "")
	t.Setenv("TERM_THEME", "")
	t.Setenv("THEME", "")
	cfg.Theme = ""
	if got := cfg.ResolveTheme(); got != shell.ThemeDark {
		t.Errorf("expected detected dark theme, got %q", got)
	}
}

func TestLoggingConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Path = "/tmp/termfolio.log"
	lc := cfg.loggingConfig()
	if lc.Level != "info" || lc.Format != "json" || lc.OutputPath != "/tmp/termfolio.log" {
		t.Errorf("unexpected logging config: %+v", lc)
	}
}

func TestDisplaySettingsCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	var buf bytes.Buffer
	if err := displaySettingsAt(&buf, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Created default configuration", "(newly created)", "double_tab_window", "500ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("written config differs from defaults: %+v", *cfg)
	}

	buf.Reset()
	if err := displaySettingsAt(&buf, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "newly created") {
		t.Error("existing config reported as new")
	}
}
