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

// Package patch defines the patch catalog metadata record. The patch catalog
// is keyed by bug number; each bug number maps to one record per platform.
package patch

import "fmt"

// DefaultOPatchBug is the bug number of the OPatch tool itself. It is the
// only bug number for which a "generic" platform entry serves as a fallback
// when no architecture-specific patch exists.
const DefaultOPatchBug = "28186730"

// GenericPlatform is the catalog sentinel for patches that apply to every
// architecture.
const GenericPlatform = "generic"

// Metadata describes one cached patch artifact for one platform. The YAML
// field order is fixed (patchVersion, location, hash, dateAdded, platform)
// so saved catalogs stay diff-stable.
type Metadata struct {
	PatchVersion string `yaml:"patchVersion"`
	Location     string `yaml:"location"`
	Hash         string `yaml:"hash"`
	DateAdded    string `yaml:"dateAdded"`
	Platform     string `yaml:"platform"`
}

// String renders the record for log messages.
func (m Metadata) String() string {
	return fmt.Sprintf("patch [patchVersion=%s, location=%s, hash=%s, dateAdded=%s, platform=%s]",
		m.PatchVersion, m.Location, m.Hash, m.DateAdded, m.Platform)
}
