package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/config"
)

// ErrNotInSite reports that no enclosing site project could be found.
var ErrNotInSite = errors.New("not inside a site project")

// Site captures a located project root together with its parsed configuration.
type Site struct {
	Root   string
	Config config.Config
}

// ConfigFile returns the path of the marker configuration file.
func (s Site) ConfigFile() string {
	return filepath.Join(s.Root, config.FileName)
}

// PostsDir returns the posts root, a fixed _posts directory under the site root.
func (s Site) PostsDir() string {
	return filepath.Join(s.Root, "_posts")
}

// OutputDir returns the configured render output directory.
func (s Site) OutputDir() string {
	out := s.Config.OutputDir
	if filepath.IsAbs(out) {
		return filepath.Clean(out)
	}
	return filepath.Join(s.Root, out)
}

// PostsIndexFile returns the path of the generated posts listing consulted for
// default-author inference. The file is optional.
func (s Site) PostsIndexFile() string {
	return filepath.Join(s.OutputDir(), "posts", "posts.json")
}

// MetaDir returns the hidden per-site metadata directory.
func (s Site) MetaDir() string {
	return filepath.Join(s.Root, ".inkwell")
}

// LogsDir returns the directory that per-invocation log files are written to.
func (s Site) LogsDir() string {
	return filepath.Join(s.MetaDir(), "logs")
}

// Load locates the site enclosing start and parses its configuration. The
// root and configuration are re-read from disk on every call; nothing is
// cached between invocations.
func Load(start string) (Site, error) {
	root, ok, err := Find(start)
	if err != nil {
		return Site{}, err
	}
	if !ok {
		return Site{}, fmt.Errorf("%w: %s", ErrNotInSite, start)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return Site{}, err
	}

	return Site{Root: root, Config: cfg}, nil
}

// Find walks upward from start, inclusive, looking for a directory containing
// the site marker file. ok is false when the filesystem root is reached
// without finding one.
func Find(start string) (dir string, ok bool, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}

	for current := abs; ; {
		exists, err := FileExists(filepath.Join(current, config.FileName))
		if err != nil {
			return "", false, err
		}
		if exists {
			return current, true, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
