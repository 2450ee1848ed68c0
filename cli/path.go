package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/confix-lang/confix/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				return "."
			}

			dir = filepath.Join(dir, ".config")
		}

		return filepath.Join(dir, pkg.Name)
	},
)

// cacheDir returns the cache directory path used for transient files.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				return "."
			}

			dir = filepath.Join(dir, ".cache")
		}

		return filepath.Join(dir, pkg.Name)
	},
)

// configPath joins the configuration directory with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		err := os.MkdirAll(dir, defaultDirMode)
		if err != nil {
			return err
		}
	}

	return nil
}
