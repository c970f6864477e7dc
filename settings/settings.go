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

// Package settings owns the persisted configuration of the tool: the
// user-scoped settings file, the installer and patch catalogs, and the
// content-digest helpers used to verify cached artifacts.
package settings

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mwbuild/mwbuild/errors"
	"github.com/mwbuild/mwbuild/installer"
	"github.com/mwbuild/mwbuild/logging"
	"github.com/spf13/viper"
)

// InstallerDefaults holds the configured defaults for one installer type,
// from the "installers" section of the settings file.
type InstallerDefaults struct {
	DefaultVersion string `mapstructure:"defaultVersion" yaml:"defaultVersion,omitempty"`
}

// UserSettings is the user-scoped settings file (~/.mwbuild/settings.yaml).
// It holds global directories and tool paths plus the locations of the
// installer and patch catalog files. The catalogs themselves are read through
// Store, not kept here.
type UserSettings struct {
	// BuildContextDirectory is the parent directory under which a temporary
	// build context folder is created for each image build.
	BuildContextDirectory string `mapstructure:"buildContextDirectory" yaml:"buildContextDirectory,omitempty"`

	// InstallerDirectory is where downloaded installer artifacts are stored.
	InstallerDirectory string `mapstructure:"installerDirectory" yaml:"installerDirectory,omitempty"`

	// PatchDirectory is where downloaded patch artifacts are stored.
	PatchDirectory string `mapstructure:"patchDirectory" yaml:"patchDirectory,omitempty"`

	// BuildEngine is the executable used to build container images, e.g.
	// "docker" or "/usr/local/bin/podman".
	BuildEngine string `mapstructure:"buildEngine" yaml:"buildEngine,omitempty"`

	// ContainerEngine is the executable used to run or inspect images.
	ContainerEngine string `mapstructure:"containerEngine" yaml:"containerEngine,omitempty"`

	// PatchRetryMax is how many times a patch-service REST call is retried.
	PatchRetryMax int `mapstructure:"patchRetryMax" yaml:"patchRetryMax,omitempty"`

	// PatchRetryInterval is the time between patch-service retries, in
	// milliseconds.
	PatchRetryInterval int `mapstructure:"patchRetryInterval" yaml:"patchRetryInterval,omitempty"`

	// InstallerCatalogFile is the path of the installer metadata catalog.
	InstallerCatalogFile string `mapstructure:"installerSettingsFile" yaml:"installerSettingsFile,omitempty"`

	// PatchCatalogFile is the path of the patch metadata catalog.
	PatchCatalogFile string `mapstructure:"patchSettingsFile" yaml:"patchSettingsFile,omitempty"`

	// InstallerDefaults holds per-installer-type defaults, keyed by parsed
	// installer type. Unknown type keys in the file are skipped with a
	// warning so newer settings files keep loading on older tools.
	InstallerDefaults map[installer.Type]InstallerDefaults `mapstructure:"-" yaml:"-"`
}

// rawUserSettings mirrors UserSettings with the installers section still
// keyed by the raw file string, so unknown types can be skipped instead of
// failing the unmarshal.
type rawUserSettings struct {
	UserSettings `mapstructure:",squash"`
	Installers   map[string]InstallerDefaults `mapstructure:"installers"`
}

// SettingsDirectory returns the per-user settings directory (~/.mwbuild).
func SettingsDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap("locate home directory", "", err)
	}
	return filepath.Join(home, ".mwbuild"), nil
}

// SettingsFilePath returns the default settings file path
// (~/.mwbuild/settings.yaml).
func SettingsFilePath() (string, error) {
	dir, err := SettingsDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Load reads the settings file from the default per-user location. A missing
// file yields the defaults.
func Load(ctx context.Context) (*UserSettings, error) {
	path, err := SettingsFilePath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(ctx, path)
}

// LoadFromPath reads the settings file from a specific path. Defaults and
// MWBUILD_* environment variables apply the same way as Load; a missing file
// is not an error.
func LoadFromPath(ctx context.Context, path string) (*UserSettings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v, filepath.Dir(path))

	// MWBUILD_BUILD_ENGINE, MWBUILD_PATCH_DIRECTORY, etc.
	v.SetEnvPrefix("MWBUILD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, errors.Wrap("read settings file", path, err)
		}
	}

	var raw rawUserSettings
	if err := v.Unmarshal(&raw); err != nil {
		return nil, errors.Wrap("parse settings file", path, err)
	}

	us := raw.UserSettings
	us.InstallerDefaults = make(map[installer.Type]InstallerDefaults, len(raw.Installers))
	for key, defaults := range raw.Installers {
		t, err := installer.ParseType(key)
		if err != nil {
			logging.WarnContext(ctx, "settings for %q could not be loaded: %v", key, err)
			continue
		}
		us.InstallerDefaults[t] = defaults
	}

	return &us, nil
}

// Save writes the settings back to the given path.
func (u *UserSettings) Save(path string) error {
	out := struct {
		UserSettings `yaml:",inline"`
		Installers   map[string]InstallerDefaults `yaml:"installers,omitempty"`
	}{UserSettings: *u}

	if len(u.InstallerDefaults) > 0 {
		out.Installers = make(map[string]InstallerDefaults, len(u.InstallerDefaults))
		for t, defaults := range u.InstallerDefaults {
			out.Installers[string(t)] = defaults
		}
	}

	return NewCodec(path).Save(out)
}

// DefaultVersion returns the configured default version for an installer
// type, or "" when none is set.
func (u *UserSettings) DefaultVersion(t installer.Type) string {
	return u.InstallerDefaults[t].DefaultVersion
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault("buildEngine", "docker")
	v.SetDefault("containerEngine", "docker")
	v.SetDefault("patchRetryMax", 10)
	v.SetDefault("patchRetryInterval", 500)
	v.SetDefault("buildContextDirectory", filepath.Join(baseDir, "tmp"))
	v.SetDefault("installerDirectory", filepath.Join(baseDir, "installers"))
	v.SetDefault("patchDirectory", filepath.Join(baseDir, "patches"))
	v.SetDefault("installerSettingsFile", filepath.Join(baseDir, "installers.yaml"))
	v.SetDefault("patchSettingsFile", filepath.Join(baseDir, "patches.yaml"))
}
