/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package main implements the mwbuild CLI tool for assembling middleware
// container images from cached installer and patch artifacts.
package main

import (
	"context"

	"github.com/mwbuild/mwbuild/logging"
	"github.com/mwbuild/mwbuild/settings"
	"github.com/spf13/cobra"
)

// Context key type for storing the loaded user settings
type settingsKeyType struct{}

var (
	// settingsKey is the context key for storing the user settings
	settingsKey = settingsKeyType{}

	// Root command options
	settingsFile string
)

var rootCmd = &cobra.Command{
	Use:   "mwbuild",
	Short: "mwbuild - middleware container image builder",
	Long: `mwbuild assembles container images for middleware products by combining
cached installer artifacts, response files, and patches into a build context
for a container build engine such as docker or podman.`,
	Version:           version,
	PersistentPreRunE: initConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "Settings file (default is $HOME/.mwbuild/settings.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json, color)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Quiet mode - only show errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode - show debug output")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// settingsFromContext retrieves the user settings from the command context.
// Returns defaults if nothing is stored in context.
func settingsFromContext(cmd *cobra.Command) *settings.UserSettings {
	if us, ok := cmd.Context().Value(settingsKey).(*settings.UserSettings); ok {
		return us
	}
	return &settings.UserSettings{}
}

// initConfig loads the user settings file and wires a configured logger into
// the command context before any subcommand runs.
func initConfig(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := logging.NewWithOptions(logLevel, logFormat, quiet, verbose)
	ctx := logging.WithLogger(cmd.Context(), logger)

	var us *settings.UserSettings
	var err error
	if settingsFile != "" {
		us, err = settings.LoadFromPath(ctx, settingsFile)
	} else {
		us, err = settings.Load(ctx)
	}
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, settingsKey, us)
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
