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

package build

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/logging"
)

// archiveEntryPoint returns the installer's true entry point. For zip
// artifacts that is the first archive entry ending in .jar or .bin, which is
// what the generated install commands invoke after unpacking; for anything
// else it is the artifact filename itself.
func archiveEntryPoint(ctx context.Context, installerFile string) (string, error) {
	filename := filepath.Base(installerFile)
	if !strings.HasSuffix(filename, ".zip") {
		return filename, nil
	}

	logging.DebugContext(ctx, "locating installer entry point inside %s", filename)
	reader, err := zip.OpenReader(installerFile)
	if err != nil {
		return "", errors.Wrap("open installer archive", installerFile, err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if strings.HasSuffix(entry.Name, ".jar") || strings.HasSuffix(entry.Name, ".bin") {
			logging.DebugContext(ctx, "found entry point %s in %s", entry.Name, filename)
			return entry.Name, nil
		}
	}
	return filename, nil
}

// copyFile copies a single file from src to dst, preserving the source file
// mode. The context is checked before the copy begins.
func copyFile(ctx context.Context, src, dst string) (retErr error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = errors.Wrap("close source file", src, closeErr)
		}
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dstFile.Close(); closeErr != nil && retErr == nil {
			retErr = errors.Wrap("close destination file", dst, closeErr)
		}
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return os.Chmod(dst, info.Mode())
}
