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
	"os"
	"path/filepath"
	"text/template"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
)

// WriteDockerfile renders the Dockerfile for the staged plan into the build
// context root. Must be called after Stage, which fills in the per-package
// entry point and archive flags the install steps depend on.
//
// Multi-architecture plans emit a single Dockerfile that selects the
// per-architecture subdirectory through the TARGETARCH build argument; the
// packages rendered are those of the first platform since each installer's
// filenames match across architectures within one product version.
func (i *Install) WriteDockerfile(ctx context.Context, buildContextDir, baseImage string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/Dockerfile.tmpl")
	if err != nil {
		return errors.Wrap("parse Dockerfile template", "", err)
	}

	data := struct {
		BaseImage string
		MultiArch bool
		Packages  []*Package
	}{
		BaseImage: baseImage,
		MultiArch: len(i.platforms) > 1,
		Packages:  i.packagesForPlatform(i.platforms[0]),
	}

	dest := filepath.Join(buildContextDir, "Dockerfile")
	logging.InfoContext(ctx, "writing %s", dest)

	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap("create Dockerfile", dest, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return errors.Wrap("render Dockerfile", dest, err)
	}
	return nil
}

func (i *Install) packagesForPlatform(arch installer.Architecture) []*Package {
	var out []*Package
	for _, pkg := range i.packages {
		if pkg.Platform == arch {
			out = append(out, pkg)
		}
	}
	return out
}
