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

// Architecture is an OS/architecture pair identifying which cached artifact
// variant applies to a build platform.
type Architecture string

// Build architectures. Generic is a catalog-only sentinel used by patches
// that apply to every architecture; it is never a build target.
const (
	AMD64   Architecture = "linux/amd64"
	ARM64   Architecture = "linux/arm64"
	Generic Architecture = "generic"
)

// ParseArchitecture normalizes an architecture name to one of the supported
// build platforms. Bare CPU names and common uname spellings are accepted.
func ParseArchitecture(name string) (Architecture, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linux/amd64", "amd64", "x86_64", "x64":
		return AMD64, nil
	case "linux/arm64", "arm64", "aarch64":
		return ARM64, nil
	case "generic":
		return Generic, nil
	default:
		return "", fmt.Errorf("unsupported platform %q (supported: %s, %s)", name, AMD64, ARM64)
	}
}

// SupportedArchitectures returns the build architectures in staging order.
func SupportedArchitectures() []Architecture {
	return []Architecture{AMD64, ARM64}
}

// Short returns the bare CPU name, used for per-architecture subdirectories
// in the build context.
func (a Architecture) Short() string {
	if i := strings.IndexByte(string(a), '/'); i >= 0 {
		return string(a[i+1:])
	}
	return string(a)
}

// String returns the canonical platform name.
func (a Architecture) String() string {
	return string(a)
}
