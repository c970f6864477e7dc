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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Architecture
		wantErr  bool
	}{
		{name: "canonical amd64", input: "linux/amd64", expected: AMD64},
		{name: "bare amd64", input: "amd64", expected: AMD64},
		{name: "uname x86_64", input: "x86_64", expected: AMD64},
		{name: "windows style x64", input: "x64", expected: AMD64},
		{name: "canonical arm64", input: "linux/arm64", expected: ARM64},
		{name: "uname aarch64", input: "aarch64", expected: ARM64},
		{name: "uppercase with spaces", input: " ARM64 ", expected: ARM64},
		{name: "generic sentinel", input: "generic", expected: Generic},
		{name: "unsupported", input: "linux/s390x", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseArchitecture(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported platform")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestArchitectureShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "amd64", AMD64.Short())
	assert.Equal(t, "arm64", ARM64.Short())
	assert.Equal(t, "generic", Generic.Short())
}

func TestSupportedArchitectures(t *testing.T) {
	t.Parallel()

	archs := SupportedArchitectures()
	require.Len(t, archs, 2)
	assert.Equal(t, AMD64, archs[0])
	assert.Equal(t, ARM64, archs[1])
	assert.NotContains(t, archs, Generic)
}
