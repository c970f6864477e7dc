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

package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
	"github.com/mwbuild/mwbuild/settings"
)

// db19PreinstallCommand fixes artifact file permissions before the database
// prerequisite installer runs inside the image.
const db19PreinstallCommand = "34761383/changePerm.sh /u01/oracle"

// Install is the install plan for one image build: one Package per
// (installer-in-stack, target platform) combination, in that iteration
// order. Platform order follows the order requested by the caller; response
// files are matched to installers positionally, so ordering is load-bearing.
type Install struct {
	stack     installer.StackType
	version   string
	platforms []installer.Architecture
	packages  []*Package
}

// NewInstall builds the install plan for a middleware stack at a product
// version across the requested platforms.
//
// Response files are optional. When supplied there must be exactly one per
// installer in the stack (the same set is reused for every platform), each
// naming an existing regular file; otherwise defaults are generated at
// staging time. A missing catalog entry for any (installer, platform) fails
// the plan.
func NewInstall(ctx context.Context, store *settings.Store, stack installer.StackType, version string,
	responseFiles []string, platforms []string) (*Install, error) {
	logging.InfoContext(ctx, "resolving installers [%s] version %s", stack.InstallerListString(), version)

	archs, err := parsePlatforms(platforms)
	if err != nil {
		return nil, err
	}

	stackInstallers := stack.Installers()
	if len(responseFiles) > 0 && len(responseFiles) != len(stackInstallers) {
		return nil, fmt.Errorf(
			"response file count mismatch for %s: expected %d (one per installer: %s), got %d",
			stack, len(stackInstallers), stack.InstallerListString(), len(responseFiles))
	}

	install := &Install{
		stack:     stack,
		version:   version,
		platforms: archs,
	}

	for i, t := range stackInstallers {
		var response ResponseFile
		if len(responseFiles) > 0 {
			info, err := os.Stat(responseFiles[i])
			if err != nil || !info.Mode().IsRegular() {
				return nil, fmt.Errorf("response file not found: %s", responseFiles[i])
			}
			logging.InfoContext(ctx, "using response file %s for %s", responseFiles[i], t)
			response = NewProvidedResponseFile(responseFiles[i])
		} else {
			response = NewDefaultResponseFile(t, stack)
		}

		for _, arch := range archs {
			meta, err := store.InstallerForPlatform(ctx, t, arch, version)
			if err != nil {
				return nil, errors.Wrap("resolve cached installer", fmt.Sprintf("%s %s %s", t, version, arch), err)
			}

			pkg := &Package{
				Type:              t,
				Metadata:          meta,
				InstallerPath:     meta.Location,
				InstallerFilename: filepath.Base(meta.Location),
				ResponseFile:      response,
				Platform:          arch,
			}
			if t == installer.DB19 {
				pkg.PreinstallCommands = []string{db19PreinstallCommand}
			}
			install.packages = append(install.packages, pkg)
		}
	}

	return install, nil
}

// Packages returns the install plan in staging order.
func (i *Install) Packages() []*Package {
	return i.packages
}

// Platforms returns the target architectures in the order requested.
func (i *Install) Platforms() []installer.Architecture {
	return i.platforms
}

// Stack returns the middleware stack being installed.
func (i *Install) Stack() installer.StackType {
	return i.stack
}

// Version returns the product version being installed.
func (i *Install) Version() string {
	return i.version
}

// Stage copies every package's artifact and response file into the build
// context directory. Multi-architecture plans are partitioned into one
// subdirectory per architecture (amd64/, arm64/); single-architecture plans
// use the context root directly.
//
// Each artifact is verified against its recorded digest before copying, then
// inspected: zip archives are opened to find the installer entry point (the
// first inner .jar or .bin entry). Failures abort the build; the context
// directory may be left partially populated.
func (i *Install) Stage(ctx context.Context, buildContextDir string) error {
	multiArch := len(i.platforms) > 1

	for _, pkg := range i.packages {
		dest := buildContextDir
		if multiArch {
			dest = filepath.Join(buildContextDir, pkg.Platform.Short())
		}
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return errors.Wrap("create build context directory", dest, err)
		}

		if err := settings.VerifyDigest(pkg.InstallerPath, pkg.Metadata.Digest); err != nil {
			return err
		}

		logging.DebugContext(ctx, "staging %s into %s", pkg.InstallerFilename, dest)
		if err := copyFile(ctx, pkg.InstallerPath, filepath.Join(dest, pkg.InstallerFilename)); err != nil {
			return errors.Wrap("copy installer", pkg.InstallerPath, err)
		}

		entry, err := archiveEntryPoint(ctx, pkg.InstallerPath)
		if err != nil {
			return err
		}
		pkg.JarName = entry
		pkg.IsZip = strings.HasSuffix(pkg.InstallerFilename, ".zip")
		pkg.IsBin = strings.HasSuffix(entry, ".bin")

		if err := pkg.ResponseFile.Materialize(ctx, dest); err != nil {
			return err
		}
	}
	return nil
}

func parsePlatforms(platforms []string) ([]installer.Architecture, error) {
	if len(platforms) == 0 {
		return []installer.Architecture{installer.AMD64}, nil
	}

	archs := make([]installer.Architecture, 0, len(platforms))
	for _, p := range platforms {
		arch, err := installer.ParseArchitecture(p)
		if err != nil {
			return nil, err
		}
		if arch == installer.Generic {
			return nil, fmt.Errorf("platform %q is not a build target", p)
		}
		archs = append(archs, arch)
	}
	return archs, nil
}
