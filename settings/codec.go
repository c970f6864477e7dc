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

	"github.com/mwbuild/mwbuild/errors"
	"gopkg.in/yaml.v3"
)

// Codec is the round-trip serializer for the user settings file and the
// installer/patch catalogs. It decodes schema-first into the typed structures
// the caller supplies; a scalar of the wrong type fails the whole load with a
// yaml error naming the offending line rather than coercing the value.
//
// Catalog files are hand-editable and version-controlled, so saves must be
// diff-stable: struct fields marshal in declaration order and map keys are
// sorted by yaml.v3.
type Codec struct {
	path string
}

// NewCodec creates a codec bound to a file path. The file does not need to
// exist yet.
func NewCodec(path string) *Codec {
	return &Codec{path: path}
}

// Path returns the file path the codec reads and writes.
func (c *Codec) Path() string {
	return c.path
}

// Load decodes the file into out. A missing file is not an error: out is
// left untouched, matching first-run behavior before anything was cached.
func (c *Codec) Load(out interface{}) error {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap("read settings file", c.path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrap("parse settings file", c.path, err)
	}
	return nil
}

// Save encodes in and writes it to the file, creating parent directories as
// needed.
func (c *Codec) Save(in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return errors.Wrap("encode settings file", c.path, err)
	}

	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap("create settings directory", dir, err)
		}
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return errors.Wrap("write settings file", c.path, err)
	}
	return nil
}
