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
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwbuild/mwbuild/cache"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
	"github.com/mwbuild/mwbuild/patch"
	"github.com/mwbuild/mwbuild/settings"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the local artifact cache",
}

// listinstallers options
var listFilter = cache.Filter{}

var listInstallersCmd = &cobra.Command{
	Use:   "listinstallers",
	Short: "List cached installers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(settingsFromContext(cmd))
		listings, err := cache.List(cmd.Context(), store, listFilter)
		if err != nil {
			return err
		}
		logging.PrintContext(cmd.Context(), cache.Format(listings))
		return nil
	},
}

// addinstaller options
type addInstallerOptions struct {
	installerType  string
	version        string
	path           string
	platform       string
	productVersion string
}

var addInstallerOpts = &addInstallerOptions{}

var addInstallerCmd = &cobra.Command{
	Use:   "addinstaller",
	Short: "Add a downloaded installer artifact to the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		t, err := installer.ParseType(addInstallerOpts.installerType)
		if err != nil {
			return err
		}
		arch, err := installer.ParseArchitecture(addInstallerOpts.platform)
		if err != nil {
			return err
		}

		path, err := filepath.Abs(addInstallerOpts.path)
		if err != nil {
			return err
		}
		dgst, err := settings.FileDigest(path)
		if err != nil {
			return err
		}

		productVersion := addInstallerOpts.productVersion
		if productVersion == "" {
			productVersion = addInstallerOpts.version
		}

		store := settings.NewStore(settingsFromContext(cmd))
		meta := installer.Metadata{
			Platform:       arch.String(),
			Location:       path,
			Digest:         dgst,
			ProductVersion: productVersion,
		}
		if err := store.AddInstaller(ctx, t, addInstallerOpts.version, meta); err != nil {
			return err
		}
		logging.InfoContext(ctx, "cached %s %s for %s", t, addInstallerOpts.version, arch)
		return nil
	},
}

// addpatch options
type addPatchOptions struct {
	bugNumber    string
	path         string
	platform     string
	patchVersion string
}

var addPatchOpts = &addPatchOptions{}

var addPatchCmd = &cobra.Command{
	Use:   "addpatch",
	Short: "Add a downloaded patch artifact to the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		arch, err := installer.ParseArchitecture(addPatchOpts.platform)
		if err != nil {
			return err
		}

		path, err := filepath.Abs(addPatchOpts.path)
		if err != nil {
			return err
		}
		hash, err := settings.FileDigest(path)
		if err != nil {
			return err
		}

		store := settings.NewStore(settingsFromContext(cmd))
		meta := patch.Metadata{
			PatchVersion: addPatchOpts.patchVersion,
			Location:     path,
			Hash:         hash,
			Platform:     arch.String(),
		}
		if err := store.AddPatch(ctx, addPatchOpts.bugNumber, meta); err != nil {
			return err
		}
		logging.InfoContext(ctx, "cached patch %s for %s", addPatchOpts.bugNumber, arch)
		return nil
	},
}

var listPatchesCmd = &cobra.Command{
	Use:   "listpatches",
	Short: "List cached patches",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(settingsFromContext(cmd))
		catalog, err := store.AllPatches(cmd.Context())
		if err != nil {
			return err
		}

		bugNumbers := make([]string, 0, len(catalog))
		for bug := range catalog {
			bugNumbers = append(bugNumbers, bug)
		}
		sort.Strings(bugNumbers)

		var b strings.Builder
		for _, bug := range bugNumbers {
			fmt.Fprintf(&b, "%s:\n", bug)
			for _, meta := range catalog[bug] {
				fmt.Fprintf(&b, "  - patchVersion: %s\n", meta.PatchVersion)
				fmt.Fprintf(&b, "    location: %s\n", meta.Location)
				fmt.Fprintf(&b, "    hash: %s\n", meta.Hash)
				fmt.Fprintf(&b, "    dateAdded: %s\n", meta.DateAdded)
				fmt.Fprintf(&b, "    platform: %s\n", meta.Platform)
			}
		}
		logging.PrintContext(cmd.Context(), b.String())
		return nil
	},
}

func init() {
	listInstallersCmd.Flags().StringVar(&listFilter.Type, "type", "", "Filter by installer type, e.g. wls, jdk, wdt")
	listInstallersCmd.Flags().StringVar(&listFilter.CommonName, "common-name", "", "Filter by common name (requires --type)")
	listInstallersCmd.Flags().StringVar(&listFilter.Version, "version", "", "Filter by version (requires --type)")

	addInstallerCmd.Flags().StringVar(&addInstallerOpts.installerType, "type", "", "Installer type, e.g. wls, jdk")
	addInstallerCmd.Flags().StringVar(&addInstallerOpts.version, "version", "", "Catalog version key, e.g. 12.2.1.4.0")
	addInstallerCmd.Flags().StringVar(&addInstallerOpts.path, "path", "", "Path to the downloaded artifact")
	addInstallerCmd.Flags().StringVar(&addInstallerOpts.platform, "platform", "linux/amd64", "Artifact platform")
	addInstallerCmd.Flags().StringVar(&addInstallerOpts.productVersion, "product-version", "", "Product version if it differs from the catalog key")
	for _, flag := range []string{"type", "version", "path"} {
		if err := addInstallerCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	addPatchCmd.Flags().StringVar(&addPatchOpts.bugNumber, "bug", "", "Patch bug number")
	addPatchCmd.Flags().StringVar(&addPatchOpts.path, "path", "", "Path to the downloaded patch")
	addPatchCmd.Flags().StringVar(&addPatchOpts.platform, "platform", "linux/amd64", "Patch platform, or \"generic\"")
	addPatchCmd.Flags().StringVar(&addPatchOpts.patchVersion, "patch-version", "", "Patch version")
	for _, flag := range []string{"bug", "path"} {
		if err := addPatchCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	cacheCmd.AddCommand(listInstallersCmd)
	cacheCmd.AddCommand(addInstallerCmd)
	cacheCmd.AddCommand(addPatchCmd)
	cacheCmd.AddCommand(listPatchesCmd)
}
