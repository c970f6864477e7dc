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

package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
	"github.com/mwbuild/mwbuild/patch"
)

// ErrNotFound is returned by the per-platform lookups when no catalog entry
// matches. Callers decide whether a miss is fatal for their command.
var ErrNotFound = fmt.Errorf("no matching cache entry")

// Store provides lookup, insertion, and persistence over the installer and
// patch catalogs. Every read re-loads the catalog file, so external edits
// between CLI invocations are always picked up; nothing is cached across
// calls. A Store is an explicitly constructed value, passed by reference to
// whatever needs catalog access.
type Store struct {
	installerCatalog string
	patchCatalog     string
}

// NewStore creates a store over the catalog files named in the user settings.
func NewStore(us *UserSettings) *Store {
	return NewStoreFromPaths(us.InstallerCatalogFile, us.PatchCatalogFile)
}

// NewStoreFromPaths creates a store over explicit catalog file paths.
func NewStoreFromPaths(installerCatalog, patchCatalog string) *Store {
	return &Store{
		installerCatalog: installerCatalog,
		patchCatalog:     patchCatalog,
	}
}

// Installers loads the full installer catalog:
// installer type -> product version -> one entry per platform.
//
// Catalog keys that do not name a known installer type are logged and
// skipped, not fatal, so catalogs written by newer tool versions keep
// loading. Duplicate platform entries within one (type, version) bucket are
// resolved last-wins in file order.
func (s *Store) Installers(ctx context.Context) (map[installer.Type]map[string][]installer.Metadata, error) {
	raw := make(map[string]map[string][]installer.Metadata)
	if err := NewCodec(s.installerCatalog).Load(&raw); err != nil {
		return nil, err
	}

	catalog := make(map[installer.Type]map[string][]installer.Metadata, len(raw))
	for key, versions := range raw {
		t, err := installer.ParseType(key)
		if err != nil {
			logging.WarnContext(ctx, "skipping installer catalog entry %q: %v", key, err)
			continue
		}
		buckets := make(map[string][]installer.Metadata, len(versions))
		for version, entries := range versions {
			buckets[version] = dedupeByPlatform(entries)
		}
		catalog[t] = buckets
	}
	return catalog, nil
}

// InstallerForPlatform returns the catalog entry for the given installer
// type, build architecture, and product version, or ErrNotFound.
func (s *Store) InstallerForPlatform(ctx context.Context, t installer.Type, arch installer.Architecture,
	version string) (installer.Metadata, error) {
	catalog, err := s.Installers(ctx)
	if err != nil {
		return installer.Metadata{}, err
	}

	for _, meta := range catalog[t][version] {
		if meta.Platform == arch.String() {
			return meta, nil
		}
	}
	return installer.Metadata{}, fmt.Errorf("%w for installer %s %s on %s", ErrNotFound, t, version, arch)
}

// AddInstaller records a cached installer artifact and persists the catalog.
// An existing entry for the same (type, version, platform) is replaced, so
// lookups never see duplicates. DateAdded is set here, at insertion time, and
// never changes afterwards.
func (s *Store) AddInstaller(ctx context.Context, t installer.Type, version string,
	meta installer.Metadata) error {
	raw := make(map[string]map[string][]installer.Metadata)
	if err := NewCodec(s.installerCatalog).Load(&raw); err != nil {
		return err
	}

	if meta.DateAdded == "" {
		meta.DateAdded = todayDate()
	}

	versions := raw[string(t)]
	if versions == nil {
		versions = make(map[string][]installer.Metadata)
		raw[string(t)] = versions
	}

	entries := versions[version]
	replaced := false
	for i := range entries {
		if entries[i].Platform == meta.Platform {
			entries[i] = meta
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, meta)
	}
	versions[version] = entries

	logging.DebugContext(ctx, "caching %s %s: %s", t, version, meta)
	return NewCodec(s.installerCatalog).Save(raw)
}

// AllPatches loads the full patch catalog, keyed by bug number.
func (s *Store) AllPatches(ctx context.Context) (map[string][]patch.Metadata, error) {
	catalog := make(map[string][]patch.Metadata)
	if err := NewCodec(s.patchCatalog).Load(&catalog); err != nil {
		return nil, err
	}
	logging.DebugContext(ctx, "loaded %d patch entries from %s", len(catalog), s.patchCatalog)
	return catalog, nil
}

// PatchForPlatform returns the patch entry for the given build architecture
// and bug number, or ErrNotFound. For the default OPatch bug number only, an
// entry with the literal platform "generic" serves as a fallback when no
// architecture-specific entry exists.
func (s *Store) PatchForPlatform(ctx context.Context, arch installer.Architecture,
	bugNumber string) (patch.Metadata, error) {
	catalog, err := s.AllPatches(ctx)
	if err != nil {
		return patch.Metadata{}, err
	}

	entries := catalog[bugNumber]
	for _, meta := range entries {
		if meta.Platform == arch.String() {
			return meta, nil
		}
	}
	if bugNumber == patch.DefaultOPatchBug {
		for _, meta := range entries {
			if meta.Platform == patch.GenericPlatform {
				return meta, nil
			}
		}
	}
	return patch.Metadata{}, fmt.Errorf("%w for patch %s on %s", ErrNotFound, bugNumber, arch)
}

// AddPatch records a cached patch artifact and persists the catalog,
// replacing any existing entry for the same (bug number, platform).
func (s *Store) AddPatch(ctx context.Context, bugNumber string, meta patch.Metadata) error {
	catalog, err := s.AllPatches(ctx)
	if err != nil {
		return err
	}

	if meta.DateAdded == "" {
		meta.DateAdded = todayDate()
	}

	entries := catalog[bugNumber]
	replaced := false
	for i := range entries {
		if entries[i].Platform == meta.Platform {
			entries[i] = meta
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, meta)
	}
	catalog[bugNumber] = entries

	return s.SaveAllPatches(catalog, s.patchCatalog)
}

// SaveAllPatches serializes the full patch catalog to the given path. Entry
// fields are written in a fixed order (patchVersion, location, hash,
// dateAdded, platform) so saved catalogs diff cleanly.
func (s *Store) SaveAllPatches(catalog map[string][]patch.Metadata, path string) error {
	return NewCodec(path).Save(catalog)
}

// dedupeByPlatform keeps the last entry for each platform, preserving the
// order in which platforms first appear.
func dedupeByPlatform(entries []installer.Metadata) []installer.Metadata {
	index := make(map[string]int, len(entries))
	out := make([]installer.Metadata, 0, len(entries))
	for _, meta := range entries {
		if i, ok := index[meta.Platform]; ok {
			out[i] = meta
			continue
		}
		index[meta.Platform] = len(out)
		out = append(out, meta)
	}
	return out
}

// todayDate returns the date string recorded on new cache entries.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}
