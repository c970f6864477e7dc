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
	"os"
	"path/filepath"
	"testing"

	"github.com/mwbuild/mwbuild/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecMissingFile(t *testing.T) {
	t.Parallel()

	codec := NewCodec(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	catalog := make(map[string][]patch.Metadata)
	require.NoError(t, codec.Load(&catalog))
	assert.Empty(t, catalog)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patches.yaml")
	original := map[string][]patch.Metadata{
		"28186730": {
			{
				PatchVersion: "13.9.4.2.11",
				Location:     "/cache/p28186730_generic.zip",
				Hash:         "sha256:1d6dc346ba26bcf1d0c6b5efb030e0dd2f842add",
				DateAdded:    "2025-03-14",
				Platform:     "generic",
			},
		},
		"34012040": {
			{
				PatchVersion: "12.2.1.4.220329",
				Location:     "/cache/p34012040_amd64.zip",
				Hash:         "sha256:e6a8e178e73aea2fc512799423822bf065758f5e",
				DateAdded:    "2025-03-15",
				Platform:     "linux/amd64",
			},
			{
				PatchVersion: "12.2.1.4.220329",
				Location:     "/cache/p34012040_arm64.zip",
				Hash:         "sha256:1b873bc49ea44b2b2e4ffeda2c4c18b4f30b2b9e",
				DateAdded:    "2025-03-15",
				Platform:     "linux/arm64",
			},
		},
	}

	require.NoError(t, NewCodec(path).Save(original))

	loaded := make(map[string][]patch.Metadata)
	require.NoError(t, NewCodec(path).Load(&loaded))
	assert.Equal(t, original, loaded)
}

func TestCodecStableFieldOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patches.yaml")
	catalog := map[string][]patch.Metadata{
		"34012040": {
			{PatchVersion: "12.2.1.4.0", Location: "/cache/p.zip", Hash: "abc", DateAdded: "2025-01-01", Platform: "linux/amd64"},
		},
	}
	require.NoError(t, NewCodec(path).Save(catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `"34012040":
    - patchVersion: 12.2.1.4.0
      location: /cache/p.zip
      hash: abc
      dateAdded: "2025-01-01"
      platform: linux/amd64
`
	assert.Equal(t, want, string(data))
}

func TestCodecMalformedField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patches.yaml")
	// platform is a mapping instead of a string
	bad := `34012040:
  - patchVersion: 12.2.1.4.0
    location: /cache/p.zip
    hash: abc
    dateAdded: 2025-01-01
    platform:
      nested: value
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	catalog := make(map[string][]patch.Metadata)
	err := NewCodec(path).Load(&catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings file")
}

func TestCodecSaveCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "patches.yaml")
	require.NoError(t, NewCodec(path).Save(map[string][]patch.Metadata{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
