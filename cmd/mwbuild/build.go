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

package main

import (
	"fmt"
	"os"

	"github.com/mwbuild/mwbuild/build"
	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
	"github.com/mwbuild/mwbuild/settings"
	"github.com/spf13/cobra"
)

// Build command options
type buildOptions struct {
	installType   string
	version       string
	platforms     []string
	responseFiles []string
	tag           string
	baseImage     string
	dryRun        bool
}

var buildOpts = &buildOptions{}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a middleware container image",
	Long: `Build assembles a build context from cached installer artifacts and
response files, generates a Dockerfile, and invokes the configured build
engine. Multi-architecture builds stage each architecture's artifacts into
its own context subdirectory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, buildOpts)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOpts.installType, "type", "t", "wls", "Middleware install type (wls, fmw, soa, ...)")
	buildCmd.Flags().StringVar(&buildOpts.version, "version", "", "Product version, e.g. 12.2.1.4.0")
	buildCmd.Flags().StringSliceVar(&buildOpts.platforms, "platform", nil, "Target platforms (linux/amd64, linux/arm64)")
	buildCmd.Flags().StringSliceVar(&buildOpts.responseFiles, "response", nil, "Response files, one per installer in the stack")
	buildCmd.Flags().StringVar(&buildOpts.tag, "tag", "", "Image tag for the built image")
	buildCmd.Flags().StringVar(&buildOpts.baseImage, "base-image", "ghcr.io/oracle/oraclelinux:8", "Base image for the Dockerfile")
	buildCmd.Flags().BoolVar(&buildOpts.dryRun, "dry-run", false, "Assemble the build context but skip the engine invocation")

	if err := buildCmd.MarkFlagRequired("tag"); err != nil {
		panic(err)
	}
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	ctx := cmd.Context()
	us := settingsFromContext(cmd)

	stack, err := installer.ParseStackType(opts.installType)
	if err != nil {
		return err
	}

	version := opts.version
	if version == "" {
		// Fall back to the configured default for the stack's first installer
		version = us.DefaultVersion(stack.Installers()[0])
	}
	if version == "" {
		return fmt.Errorf("no version given for %s and no default configured", stack)
	}

	store := settings.NewStore(us)
	install, err := build.NewInstall(ctx, store, stack, version, opts.responseFiles, opts.platforms)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(us.BuildContextDirectory, 0o755); err != nil {
		return errors.Wrap("create build directory", us.BuildContextDirectory, err)
	}
	contextDir, err := os.MkdirTemp(us.BuildContextDirectory, "mwbuild_ctx")
	if err != nil {
		return errors.Wrap("create build context directory", us.BuildContextDirectory, err)
	}
	logging.InfoContext(ctx, "assembling build context in %s", contextDir)

	if err := install.Stage(ctx, contextDir); err != nil {
		return err
	}
	if err := install.WriteDockerfile(ctx, contextDir, opts.baseImage); err != nil {
		return err
	}

	if opts.dryRun {
		logging.InfoContext(ctx, "dry run: build context left at %s", contextDir)
		return nil
	}

	if err := build.RunEngine(ctx, us.BuildEngine, contextDir, opts.tag, install.Platforms()); err != nil {
		return err
	}

	logging.InfoContext(ctx, "built %s", opts.tag)
	return nil
}
