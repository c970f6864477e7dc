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

// Package build assembles the multi-architecture install plan for a
// middleware image: it resolves cached installer artifacts through the
// settings store, validates response files, and stages everything into the
// build context directory handed to the container build engine.
package build

import (
	"github.com/mwbuild/mwbuild/installer"
)

// Package is one installer staged for one target platform. Packages are
// transient: created when a build is requested, populated progressively
// (resolve, stage, inspect), and discarded once the build context is
// assembled. They own no persisted state; Metadata is resolved from and
// owned by the settings store.
type Package struct {
	// Type is the installer category this package stages.
	Type installer.Type

	// Metadata is the catalog record resolved for (Type, version, Platform).
	Metadata installer.Metadata

	// InstallerPath is the cached artifact location on disk.
	InstallerPath string

	// InstallerFilename is the base name of the cached artifact.
	InstallerFilename string

	// ResponseFile is materialized next to the artifact during staging.
	ResponseFile ResponseFile

	// Platform is the build architecture this package targets.
	Platform installer.Architecture

	// PreinstallCommands run inside the image before the installer, e.g.
	// the DB19 filesystem permission fix.
	PreinstallCommands []string

	// JarName is the installer entry point: for zip artifacts, the first
	// .jar or .bin entry found inside the archive; otherwise the artifact
	// filename. Set during staging.
	JarName string

	// IsZip reports whether the staged artifact is itself a zip archive.
	// Set during staging.
	IsZip bool

	// IsBin reports whether the entry point is a .bin installer. Set during
	// staging.
	IsBin bool
}
