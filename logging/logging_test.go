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

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
}

func TestDetermineLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "unknown defaults to info", input: "chatty", expected: slog.LevelInfo},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DetermineLogLevel(tt.input))
		})
	}
}

func TestConsoleFiltering(t *testing.T) {
	t.Parallel()

	t.Run("default hides debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &Logger{Console: &buf}

		l.Debug("staging %s", "wls.jar")
		l.Info("staging %s", "wls.jar")

		out := buf.String()
		assert.NotContains(t, out, "DEBUG")
		assert.Contains(t, out, "[INFO] staging wls.jar")
	})

	t.Run("quiet shows only errors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &Logger{Console: &buf, Quiet: true}

		l.Info("resolved installer")
		l.Warn("skipping catalog entry")
		l.Error("copy failed")

		out := buf.String()
		assert.NotContains(t, out, "INFO")
		assert.NotContains(t, out, "WARN")
		assert.Contains(t, out, "[ERROR] copy failed")
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &Logger{Console: &buf, Verbose: true}

		l.Debug("entry in zip: %s", "fmw.jar")
		assert.Contains(t, buf.String(), "[DEBUG] entry in zip: fmw.jar")
	})
}

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("debug level enables verbose", func(t *testing.T) {
		t.Parallel()
		l := NewWithOptions("debug", "text", false, false)
		assert.True(t, l.Verbose)
		assert.Equal(t, PlainFormat, l.Format)
	})

	t.Run("format names map to formats", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, JSONFormat, NewWithOptions("", "json", false, false).Format)
		assert.Equal(t, ColorFormat, NewWithOptions("", "color", false, false).Format)
		assert.Equal(t, PlainFormat, NewWithOptions("", "text", false, false).Format)
	})
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &Logger{Console: &buf}
	ctx := WithLogger(context.Background(), l)

	got := FromContext(ctx)
	require.Same(t, l, got)

	InfoContext(ctx, "resolved %d installers", 3)
	assert.Contains(t, buf.String(), "resolved 3 installers")
}

func TestFromContextWithoutLogger(t *testing.T) {
	t.Parallel()

	l := FromContext(context.Background())
	require.NotNil(t, l)

	//nolint:staticcheck // exercising the nil-context fallback on purpose
	l = FromContext(nil)
	require.NotNil(t, l)
}

func TestErrorErr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &Logger{Console: &buf}

	l.ErrorErr(nil)
	assert.Empty(t, buf.String())

	l.ErrorErr(assert.AnError)
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
