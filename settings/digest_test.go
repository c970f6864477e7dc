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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDigest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.bin")
	require.NoError(t, os.WriteFile(path, []byte("installer payload"), 0o644))

	got, err := FileDigest(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "sha256:"))

	// Deterministic across calls
	again, err := FileDigest(path)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestFileDigestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := FileDigest(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestVerifyDigest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.bin")
	require.NoError(t, os.WriteFile(path, []byte("installer payload"), 0o644))

	recorded, err := FileDigest(path)
	require.NoError(t, err)

	t.Run("matching digest", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, VerifyDigest(path, recorded))
	})

	t.Run("bare hex treated as sha256", func(t *testing.T) {
		t.Parallel()
		bare := strings.TrimPrefix(recorded, "sha256:")
		assert.NoError(t, VerifyDigest(path, bare))
	})

	t.Run("empty recorded digest verifies trivially", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, VerifyDigest(path, ""))
	})

	t.Run("mismatch reported", func(t *testing.T) {
		t.Parallel()
		wrong := "sha256:" + strings.Repeat("0", 64)
		err := VerifyDigest(path, wrong)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "digest mismatch")
	})

	t.Run("unparseable recorded digest rejected", func(t *testing.T) {
		t.Parallel()
		err := VerifyDigest(path, "sha256:nothex")
		assert.Error(t, err)
	})
}
