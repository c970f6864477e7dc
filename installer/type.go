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

// Package installer defines the installer catalog types: the closed set of
// installer categories, per-artifact metadata records, build architectures,
// and middleware stack composition.
package installer

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the category of a middleware installer. Each type may have separate
// cached artifacts per product version and platform.
type Type string

// Installer types. The catalog file keys on the lowercase name.
const (
	JDK     Type = "jdk"
	WLS     Type = "wls"
	WLSDEV  Type = "wlsdev"
	WLSSLIM Type = "wlsslim"
	FMW     Type = "fmw"
	SOA     Type = "soa"
	OSB     Type = "osb"
	B2B     Type = "b2b"
	MFT     Type = "mft"
	IDM     Type = "idm"
	OAM     Type = "oam"
	OHS     Type = "ohs"
	OUD     Type = "oud"
	OID     Type = "oid"
	WCC     Type = "wcc"
	WCP     Type = "wcp"
	WCS     Type = "wcs"
	ODI     Type = "odi"
	WDT     Type = "wdt"
	DB19    Type = "db19"
)

var allTypes = []Type{
	JDK, WLS, WLSDEV, WLSSLIM, FMW, SOA, OSB, B2B, MFT, IDM,
	OAM, OHS, OUD, OID, WCC, WCP, WCS, ODI, WDT, DB19,
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(allTypes))
	for _, t := range allTypes {
		m[string(t)] = t
	}
	return m
}()

// ParseType converts a catalog key or CLI argument into an installer Type.
// Matching is case-insensitive. Unknown names return an error so callers can
// decide between failing the command and skipping the entry.
func ParseType(name string) (Type, error) {
	t, ok := typeByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown installer type %q (valid types: %s)", name, typeNames())
	}
	return t, nil
}

// Types returns all installer types in a stable order for listings.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the uppercase display name, matching catalog listings.
func (t Type) String() string {
	return strings.ToUpper(string(t))
}

func typeNames() string {
	names := make([]string, 0, len(allTypes))
	for _, t := range Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
