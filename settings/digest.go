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
	"fmt"
	"os"
	"strings"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/opencontainers/go-digest"
)

// FileDigest computes the content digest of a cached artifact using the
// canonical algorithm (sha256). The returned string includes the algorithm
// prefix, e.g. "sha256:ab12...".
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap("open artifact", path, err)
	}
	defer f.Close()

	d, err := digest.Canonical.FromReader(f)
	if err != nil {
		return "", errors.Wrap("digest artifact", path, err)
	}
	return d.String(), nil
}

// VerifyDigest recomputes the digest of path and compares it with the
// recorded value. Records without an algorithm prefix are treated as bare
// sha256 hex, which is how older catalogs stored them. An empty recorded
// value verifies trivially.
func VerifyDigest(path, recorded string) error {
	if recorded == "" {
		return nil
	}

	want := recorded
	if !strings.Contains(want, ":") {
		want = string(digest.Canonical) + ":" + want
	}
	if _, err := digest.Parse(want); err != nil {
		return errors.Wrap("parse recorded digest", recorded, err)
	}

	got, err := FileDigest(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("digest mismatch for %s: recorded %s, computed %s", path, want, got)
	}
	return nil
}
