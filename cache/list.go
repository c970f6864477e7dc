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

// Package cache provides read-only filtered views over the settings store
// for user-facing inspection of the local artifact cache.
package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/settings"
)

// Filter restricts an installer listing. CommonName and Version are
// case-insensitive exact matches against the catalog's version bucket key;
// both require Type to be set.
type Filter struct {
	Type       string
	CommonName string
	Version    string
}

// VersionListing is the cached entries for one version bucket.
type VersionListing struct {
	Version string
	Entries []installer.Metadata
}

// TypeListing is the cached version buckets for one installer type.
type TypeListing struct {
	Type     installer.Type
	Versions []VersionListing
}

// List returns the filtered installer catalog in display order: types
// sorted by name, versions newest-last (semantic comparison where both keys
// parse as versions, lexicographic otherwise). A filter that matches nothing
// yields an empty listing, not an error.
func List(ctx context.Context, store *settings.Store, f Filter) ([]TypeListing, error) {
	if f.Type == "" && (f.CommonName != "" || f.Version != "") {
		return nil, fmt.Errorf("--type is required when filtering by common name or version")
	}

	var typeFilter installer.Type
	if f.Type != "" {
		t, err := installer.ParseType(f.Type)
		if err != nil {
			return nil, err
		}
		typeFilter = t
	}

	catalog, err := store.Installers(ctx)
	if err != nil {
		return nil, err
	}

	var out []TypeListing
	for _, t := range installer.Types() {
		buckets, ok := catalog[t]
		if !ok || (typeFilter != "" && t != typeFilter) {
			continue
		}

		listing := TypeListing{Type: t}
		for version, entries := range buckets {
			if f.CommonName != "" && !strings.EqualFold(f.CommonName, version) {
				continue
			}
			if f.Version != "" && !strings.EqualFold(f.Version, version) {
				continue
			}
			listing.Versions = append(listing.Versions, VersionListing{Version: version, Entries: entries})
		}
		if len(listing.Versions) == 0 {
			continue
		}

		sortVersions(listing.Versions)
		out = append(out, listing)
	}
	return out, nil
}

// Format renders a listing in the catalog's own YAML-like shape for console
// output.
func Format(listings []TypeListing) string {
	var b strings.Builder
	for _, tl := range listings {
		fmt.Fprintf(&b, "%s:\n", string(tl.Type))
		for _, vl := range tl.Versions {
			fmt.Fprintf(&b, "  %s:\n", vl.Version)
			for _, meta := range vl.Entries {
				fmt.Fprintf(&b, "  - location: %s\n", meta.Location)
				fmt.Fprintf(&b, "    platform: %s\n", meta.Platform)
				fmt.Fprintf(&b, "    digest: %s\n", meta.Digest)
				fmt.Fprintf(&b, "    dateAdded: %s\n", meta.DateAdded)
				fmt.Fprintf(&b, "    version: %s\n", meta.ProductVersion)
			}
		}
	}
	return b.String()
}

// sortVersions orders version bucket keys semantically where possible.
// Middleware version strings with more than three segments fall back to a
// lexicographic comparison.
func sortVersions(versions []VersionListing) {
	sort.Slice(versions, func(i, j int) bool {
		vi, erri := semver.NewVersion(versions[i].Version)
		vj, errj := semver.NewVersion(versions[j].Version)
		if erri == nil && errj == nil {
			return vi.LessThan(vj)
		}
		return versions[i].Version < versions[j].Version
	})
}
