package post

import (
	"path/filepath"
	"regexp"
)

// Dir composes the directory path for a post from the posts root, its slug,
// and an optional date prefix. An empty prefix yields postsRoot/slug,
// otherwise postsRoot/prefix-slug. Pure composition: no filesystem access and
// no existence check, since creation and rename apply different collision
// policies.
func Dir(postsRoot, slug, prefix string) string {
	if prefix == "" {
		return filepath.Join(postsRoot, slug)
	}
	return filepath.Join(postsRoot, prefix+"-"+slug)
}

var datedNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// SplitName splits a post directory name into its optional date prefix and
// slug. Names without a leading YYYY-MM-DD token return an empty prefix.
func SplitName(name string) (prefix, slug string) {
	if m := datedNamePattern.FindStringSubmatch(name); m != nil {
		return m[1], m[2]
	}
	return "", name
}
