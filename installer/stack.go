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

package installer

import (
	"fmt"
	"strings"
)

// StackType identifies a middleware product stack selected on the command
// line. Most stacks layer product installers on top of the FMW infrastructure
// installer; the installer order within a stack is the install order.
type StackType string

// Middleware stacks.
const (
	StackWLS     StackType = "wls"
	StackWLSDEV  StackType = "wlsdev"
	StackWLSSLIM StackType = "wlsslim"
	StackFMW     StackType = "fmw"
	StackSOA     StackType = "soa"
	StackSOAOSB  StackType = "soa_osb"
	StackOSB     StackType = "osb"
	StackB2B     StackType = "b2b"
	StackMFT     StackType = "mft"
	StackIDM     StackType = "idm"
	StackOAM     StackType = "oam"
	StackOHS     StackType = "ohs"
	StackOUD     StackType = "oud"
	StackOID     StackType = "oid"
	StackWCC     StackType = "wcc"
	StackODI     StackType = "odi"
	StackDB19    StackType = "db19"
)

var stackInstallers = map[StackType][]Type{
	StackWLS:     {WLS},
	StackWLSDEV:  {WLSDEV},
	StackWLSSLIM: {WLSSLIM},
	StackFMW:     {FMW},
	StackSOA:     {FMW, SOA},
	StackSOAOSB:  {FMW, SOA, OSB},
	StackOSB:     {FMW, OSB},
	StackB2B:     {FMW, SOA, B2B},
	StackMFT:     {FMW, MFT},
	StackIDM:     {FMW, IDM},
	StackOAM:     {FMW, IDM, OAM},
	StackOHS:     {OHS},
	StackOUD:     {OUD},
	StackOID:     {FMW, OID},
	StackWCC:     {FMW, WCC},
	StackODI:     {ODI},
	StackDB19:    {DB19},
}

// ParseStackType converts a CLI argument into a StackType. Matching is
// case-insensitive.
func ParseStackType(name string) (StackType, error) {
	s := StackType(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := stackInstallers[s]; !ok {
		return "", fmt.Errorf("unknown install type %q", name)
	}
	return s, nil
}

// Installers returns the ordered list of installer types that make up the
// stack. The returned slice is a copy.
func (s StackType) Installers() []Type {
	list := stackInstallers[s]
	out := make([]Type, len(list))
	copy(out, list)
	return out
}

// InstallerListString returns the comma-separated installer list, used in
// log and error messages.
func (s StackType) InstallerListString() string {
	names := make([]string, 0, len(stackInstallers[s]))
	for _, t := range stackInstallers[s] {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

// String returns the uppercase display name.
func (s StackType) String() string {
	return strings.ToUpper(string(s))
}
