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
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ResponseFile is the silent-install configuration staged next to an
// installer artifact. It is either supplied by the user or generated from
// the default template for the installer type.
type ResponseFile interface {
	// Name is the file name the response file takes inside the build
	// context.
	Name() string

	// Materialize writes the response file into destDir.
	Materialize(ctx context.Context, destDir string) error
}

// ProvidedResponseFile is a user-supplied response file, copied into the
// build context as-is.
type ProvidedResponseFile struct {
	path string
}

// NewProvidedResponseFile wraps an existing response file path. Callers
// validate existence before staging.
func NewProvidedResponseFile(path string) *ProvidedResponseFile {
	return &ProvidedResponseFile{path: path}
}

// Name returns the base name of the supplied file.
func (r *ProvidedResponseFile) Name() string {
	return filepath.Base(r.path)
}

// Materialize copies the supplied file into destDir.
func (r *ProvidedResponseFile) Materialize(ctx context.Context, destDir string) error {
	logging.DebugContext(ctx, "copying response file %s into %s", r.path, destDir)
	if err := copyFile(ctx, r.path, filepath.Join(destDir, r.Name())); err != nil {
		return errors.Wrap("copy response file", r.path, err)
	}
	return nil
}

// installTypeNames maps installer types to the INSTALL_TYPE value the silent
// installer expects. Types absent from the map install without one (JDK,
// WDT, and the database prerequisite are not response-file driven).
var installTypeNames = map[installer.Type]string{
	installer.WLS:     "WebLogic Server",
	installer.WLSDEV:  "WebLogic Server",
	installer.WLSSLIM: "WebLogic Server",
	installer.FMW:     "Fusion Middleware Infrastructure",
	installer.SOA:     "SOA Suite",
	installer.OSB:     "Service Bus",
	installer.B2B:     "B2B",
	installer.MFT:     "MFT",
	installer.IDM:     "Collocated Oracle Identity and Access Manager",
	installer.OAM:     "Collocated Oracle Identity and Access Manager",
	installer.OHS:     "Standalone HTTP Server (Managed independently of WebLogic server)",
	installer.OUD:     "Standalone Oracle Unified Directory Server (Managed independently of WebLogic server)",
	installer.OID:     "Standalone Oracle Internet Directory Server (Managed independently of WebLogic server)",
	installer.WCC:     "WebCenter Content",
	installer.WCP:     "WebCenter Portal",
	installer.WCS:     "WebCenter Sites",
	installer.ODI:     "Standalone Installation",
}

// DefaultResponseFile renders the default silent-install response file for
// an installer type when the user does not supply one.
type DefaultResponseFile struct {
	installerType installer.Type
	stack         installer.StackType
}

// NewDefaultResponseFile creates the default response file for one installer
// within a stack.
func NewDefaultResponseFile(t installer.Type, stack installer.StackType) *DefaultResponseFile {
	return &DefaultResponseFile{installerType: t, stack: stack}
}

// Name returns the generated file name, e.g. "wls.rsp".
func (r *DefaultResponseFile) Name() string {
	return string(r.installerType) + ".rsp"
}

// Materialize renders the default template into destDir.
func (r *DefaultResponseFile) Materialize(ctx context.Context, destDir string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/response.rsp.tmpl")
	if err != nil {
		return errors.Wrap("parse response file template", r.Name(), err)
	}

	dest := filepath.Join(destDir, r.Name())
	logging.DebugContext(ctx, "generating default response file %s", dest)

	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap("create response file", dest, err)
	}
	defer f.Close()

	data := struct {
		InstallType string
	}{
		InstallType: installTypeNames[r.installerType],
	}
	if err := tmpl.Execute(f, data); err != nil {
		return errors.Wrap("render response file", dest, err)
	}
	return nil
}
