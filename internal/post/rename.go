package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/site"
)

// ErrPostNotFound reports that the post directory to rename does not exist.
var ErrPostNotFound = errors.New("unable to find post to rename")

// RenameOptions control post renaming. Source is either a path to the post
// directory or its bare name under the posts root. An empty Title recovers
// the title from the existing content file's front matter. KeepDate reuses
// the source directory's current date prefix instead of resolving Date.
type RenameOptions struct {
	Source   string
	Title    string
	Slug     string
	Date     PrefixSpec
	KeepDate bool
}

// RenameResult describes the outcome of a rename.
type RenameResult struct {
	From      string
	To        string
	Unchanged bool
}

// Rename moves an existing post directory to the path derived from its new
// title, slug, and date prefix. Renaming a post to its current name is a
// no-op success. A differing target that already exists is a collision,
// matching the create-time policy.
func Rename(s site.Site, opts RenameOptions) (RenameResult, error) {
	src, err := resolveSource(s, opts.Source)
	if err != nil {
		return RenameResult{}, err
	}

	title := opts.Title
	if title == "" && opts.Slug == "" {
		title, err = Title(src)
		if err != nil {
			return RenameResult{}, err
		}
	}

	slug := opts.Slug
	if slug == "" {
		slug = NormalizeSlug(title)
	}
	if slug == "" {
		return RenameResult{}, fmt.Errorf("title %q produces an empty slug", title)
	}

	var prefix string
	if opts.KeepDate {
		prefix, _ = SplitName(filepath.Base(src))
	} else {
		prefix, err = opts.Date.Resolve()
		if err != nil {
			return RenameResult{}, err
		}
	}

	target := Dir(s.PostsDir(), slug, prefix)
	if target == src {
		return RenameResult{From: src, To: target, Unchanged: true}, nil
	}

	exists, err := site.DirExists(target)
	if err != nil {
		return RenameResult{}, fmt.Errorf("stat target dir: %w", err)
	}
	if exists {
		return RenameResult{}, fmt.Errorf("%w: %s", ErrPostExists, target)
	}

	if err := os.Rename(src, target); err != nil {
		return RenameResult{}, fmt.Errorf("move post dir: %w", err)
	}

	return RenameResult{From: src, To: target}, nil
}

// resolveSource accepts the source argument as given, or as a directory name
// under the posts root.
func resolveSource(s site.Site, source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("%w: no post directory given", ErrPostNotFound)
	}

	candidates := []string{source, filepath.Join(s.PostsDir(), source)}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolve post dir: %w", err)
		}
		exists, err := site.DirExists(abs)
		if err != nil {
			return "", err
		}
		if exists {
			return abs, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrPostNotFound, source)
}
