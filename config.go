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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/termfolio/editor"
	"github.com/cybrota/termfolio/logging"
	"github.com/cybrota/termfolio/shell"
)

const configFileName = ".termfolio.yaml"

type EditorConfig struct {
	DoubleTabWindow time.Duration `yaml:"double_tab_window"`
	ResultDelay     time.Duration `yaml:"result_delay"`
}

type BootConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type Config struct {
	// Theme is "light", "dark" or empty to follow the terminal.
	Theme  string       `yaml:"theme"`
	Editor EditorConfig `yaml:"editor"`
	Boot   BootConfig   `yaml:"boot"`
	Log    LogConfig    `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			DoubleTabWindow: editor.DefaultDoubleTabWindow,
			ResultDelay:     20 * time.Millisecond,
		},
		Boot: BootConfig{Enabled: true},
		Log:  LogConfig{Level: "info", Format: "json"},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the user's config file. The defaults are returned when
// there is no file; a broken file yields the defaults and the error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Theme != "" {
		if _, ok := shell.ParseTheme(c.Theme); !ok {
			return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
		}
	}
	if c.Editor.DoubleTabWindow <= 0 {
		return fmt.Errorf("editor.double_tab_window must be positive")
	}
	if c.Editor.ResultDelay < 0 {
		return fmt.Errorf("editor.result_delay must not be negative")
	}
	return nil
}

// ResolveTheme returns the configured theme, or the one detected from the
// terminal when none is set.
func (c *Config) ResolveTheme() shell.Theme {
	if t, ok := shell.ParseTheme(c.Theme); ok {
		return t
	}
	return detectTheme()
}

func (c *Config) loggingConfig() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, OutputPath: c.Log.Path}
}

func writeDefaultConfig(configPath string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return displaySettingsAt(w, configPath)
}

func displaySettingsAt(w io.Writer, configPath string) error {
	green, _, warning, _, reset := GetANSIColors(detectTheme())

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	cfg, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "%s⚠ %v. Using default settings.%s\n\n", warning, err, reset)
	}

	fmt.Fprintf(w, "🔧 Termfolio Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	theme := cfg.Theme
	if theme == "" {
		theme = fmt.Sprintf("(detected: %s)", detectTheme())
	}
	fmt.Fprintf(w, "🎨 %sAppearance:%s\n", green, reset)
	fmt.Fprintf(w, "  • %stheme%s: %s\n\n", green, reset, theme)

	fmt.Fprintf(w, "⌨️  %sEditor:%s\n", green, reset)
	fmt.Fprintf(w, "  • %sdouble_tab_window%s: %s\n", green, reset, cfg.Editor.DoubleTabWindow)
	fmt.Fprintf(w, "    Second Tab within this window accepts the first candidate\n")
	fmt.Fprintf(w, "  • %sresult_delay%s: %s\n", green, reset, cfg.Editor.ResultDelay)
	fmt.Fprintf(w, "    Delay between a command and its output (Ctrl+C interrupts)\n\n")

	fmt.Fprintf(w, "🚀 %sBoot:%s\n", green, reset)
	fmt.Fprintf(w, "  • %senabled%s: %t\n\n", green, reset, cfg.Boot.Enabled)

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = "(disabled)"
	}
	fmt.Fprintf(w, "📜 %sLogging:%s\n", green, reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n", green, reset, cfg.Log.Level)
	fmt.Fprintf(w, "  • %spath%s: %s\n\n", green, reset, logPath)

	fmt.Fprintf(w, "💡 To pin a theme, edit %s:\n", configPath)
	fmt.Fprintf(w, "   theme: dark\n")
	return nil
}
