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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybrota/termfolio/logging"
	"github.com/cybrota/termfolio/shell"
)

var version = "dev"

var asciiLogo = `
████████╗███████╗██████╗ ███╗   ███╗███████╗ ██████╗ ██╗     ██╗ ██████╗
╚══██╔══╝██╔════╝██╔══██╗████╗ ████║██╔════╝██╔═══██╗██║     ██║██╔═══██╗
   ██║   █████╗  ██████╔╝██╔████╔██║█████╗  ██║   ██║██║     ██║██║   ██║
   ██║   ██╔══╝  ██╔══██╗██║╚██╔╝██║██╔══╝  ██║   ██║██║     ██║██║   ██║
   ██║   ███████╗██║  ██║██║ ╚═╝ ██║██║     ╚██████╔╝███████╗██║╚██████╔╝
   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝
A portfolio you browse like a shell [Version: %s]

Copyright @ Naren Yellavula

`

// setup loads the config and starts logging. A broken config is reported
// and the defaults are used.
func setup() (*Config, *zap.Logger, error) {
	cfg, cfgErr := LoadConfig()
	if err := logging.Init(cfg.loggingConfig()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger := logging.L()
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "⚠ %v. Using default settings.\n", cfgErr)
		logger.Warn("config ignored", zap.Error(cfgErr))
	}
	return cfg, logger, nil
}

func themeFlag(cmd *cobra.Command, cfg *Config) (shell.Theme, error) {
	value, _ := cmd.Flags().GetString("theme")
	if value == "" {
		return cfg.ResolveTheme(), nil
	}
	theme, ok := shell.ParseTheme(value)
	if !ok {
		return "", fmt.Errorf("invalid --theme %q: want light or dark", value)
	}
	return theme, nil
}

func runInteractive(cmd *cobra.Command) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	theme, err := themeFlag(cmd, cfg)
	if err != nil {
		return err
	}

	noBoot, _ := cmd.Flags().GetBool("no-boot")
	if cfg.Boot.Enabled && !noBoot {
		if err := NewBootSequence(cmd.OutOrStdout()).Run(); err != nil {
			logger.Warn("boot sequence failed", zap.Error(err))
		}
	}

	logger.Info("starting termfolio", zap.String("version", version), zap.String("theme", string(theme)))
	if err := runBubbleTeaApp(cfg, theme, logger.Named("tui")); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

func main() {
	logo := fmt.Sprintf(asciiLogo, version)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive portfolio terminal",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the portfolio terminal UI`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec <line>...",
		Short: "Run command lines without the UI and print the transcript",
		Long:  fmt.Sprintf("%s\n%s", logo, `Exec runs every argument as one command line against a fresh session`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logging.Sync()

			theme, err := themeFlag(cmd, cfg)
			if err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("plain")
			return runExec(cmd.OutOrStdout(), args, plain, theme, logger.Named("exec"))
		},
	}
	cmdExec.Flags().Bool("plain", false, "strip markup and colors from the output")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Termfolio usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the termfolio CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Termfolio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "termfolio",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return runInteractive(cmd)
		},
	}

	for _, c := range []*cobra.Command{rootCmd, cmdRun} {
		c.Flags().Bool("no-boot", false, "skip the boot sequence")
	}
	rootCmd.PersistentFlags().String("theme", "", "color theme: light or dark (default: config, then terminal)")

	rootCmd.AddCommand(cmdRun, cmdExec, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
