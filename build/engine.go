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
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
)

// RunEngine invokes the user-configured build engine executable (docker,
// podman, ...) against an assembled build context. The engine is an external
// collaborator: this tool only prepares the context and shells out.
func RunEngine(ctx context.Context, engine, buildContextDir, tag string,
	platforms []installer.Architecture) error {
	args := []string{"build", "--tag", tag}
	if len(platforms) > 1 {
		names := make([]string, 0, len(platforms))
		for _, p := range platforms {
			names = append(names, p.String())
		}
		args = append(args, "--platform", strings.Join(names, ","))
	}
	args = append(args, buildContextDir)

	logging.InfoContext(ctx, "running %s %s", engine, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, engine, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap("run build engine", engine, err)
	}
	return nil
}
