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

import "fmt"

// Metadata describes one cached installer artifact for one platform and
// product version. Records are immutable once added to the catalog; DateAdded
// is set at insertion time and never updated. Field order matches the
// on-disk catalog entry order to keep hand-edited files diff-stable.
//
// Within one (type, version) catalog bucket there is at most one record per
// platform; the settings store enforces this on insert and load.
type Metadata struct {
	Platform       string `yaml:"platform"`
	Location       string `yaml:"file"`
	Digest         string `yaml:"digest"`
	ProductVersion string `yaml:"version"`
	DateAdded      string `yaml:"added"`
}

// String renders the record for log messages.
func (m Metadata) String() string {
	return fmt.Sprintf("installer [platform=%s, file=%s, digest=%s, version=%s, added=%s]",
		m.Platform, m.Location, m.Digest, m.ProductVersion, m.DateAdded)
}
