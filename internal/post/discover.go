package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrNoPost reports that a directory contains no title-bearing content file.
var ErrNoPost = errors.New("no post found")

// Metadata is the front-matter header of a post content file.
type Metadata struct {
	Title  string   `yaml:"title"`
	Author []Author `yaml:"author,omitempty"`
	Date   string   `yaml:"date,omitempty"`
	Draft  bool     `yaml:"draft,omitempty"`
}

// Author names a single post author in the front-matter author list.
type Author struct {
	Name string `yaml:"name"`
}

var contentExtensions = map[string]bool{
	".rmd":      true,
	".md":       true,
	".markdown": true,
}

// IsContentFile reports whether a file name looks like post content: a
// markdown-like extension and not an underscore-prefixed partial.
func IsContentFile(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	return contentExtensions[strings.ToLower(filepath.Ext(name))]
}

// ReadMetadata parses the front-matter header of a single content file.
func ReadMetadata(path string) (Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("open content file: %w", err)
	}
	defer file.Close()

	var meta Metadata
	if _, err := frontmatter.Parse(file, &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse front matter in %s: %w", path, err)
	}
	return meta, nil
}

// Title returns the declared title of the post stored in postDir. Candidates
// are scanned in lexical order and the first non-empty title field wins;
// files whose front matter cannot be parsed are skipped.
func Title(postDir string) (string, error) {
	meta, err := firstMetadata(postDir)
	if err != nil {
		return "", err
	}
	return meta.Title, nil
}

// firstMetadata returns the front matter of the first title-bearing content
// file in postDir, in lexical order.
func firstMetadata(postDir string) (Metadata, error) {
	entries, err := os.ReadDir(postDir)
	if err != nil {
		return Metadata{}, fmt.Errorf("list post dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsContentFile(entry.Name()) {
			continue
		}
		meta, err := ReadMetadata(filepath.Join(postDir, entry.Name()))
		if err != nil {
			continue
		}
		if meta.Title != "" {
			return meta, nil
		}
	}
	return Metadata{}, fmt.Errorf("%w: %s", ErrNoPost, postDir)
}
