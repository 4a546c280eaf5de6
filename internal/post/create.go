package post

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"inkwell/internal/site"
)

// ErrPostExists reports a target post directory that already exists.
var ErrPostExists = errors.New("post directory already exists")

// CreateOptions control post creation. Optional fields are explicit: an empty
// Slug derives one from the title, an empty Author falls back to the posts
// listing and then the OS user, and the zero PrefixSpec means today.
type CreateOptions struct {
	Title  string
	Slug   string
	Author string
	Date   PrefixSpec
	Draft  bool
}

const starterBody = `
Welcome to your new post. Edit this file and render the site to publish it.
`

// Create makes a new post directory under the site's posts root and writes a
// generated content file into it, returning the content file's path. The
// target directory must not already exist; a collision is terminal and leaves
// the filesystem untouched.
func Create(s site.Site, opts CreateOptions) (string, error) {
	slug := opts.Slug
	if slug == "" {
		slug = NormalizeSlug(opts.Title)
	}
	if slug == "" {
		return "", fmt.Errorf("title %q produces an empty slug", opts.Title)
	}

	prefix, err := opts.Date.Resolve()
	if err != nil {
		return "", err
	}

	dir := Dir(s.PostsDir(), slug, prefix)
	exists, err := site.DirExists(dir)
	if err != nil {
		return "", fmt.Errorf("stat post dir: %w", err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrPostExists, dir)
	}

	author := opts.Author
	if author == "" {
		author = DefaultAuthor(s.PostsIndexFile())
	}
	if author == "" {
		author = osUserName()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create post dir: %w", err)
	}

	path := filepath.Join(dir, slug+".Rmd")
	contents, err := contentFile(opts.Title, author, prefix, opts.Draft)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return "", fmt.Errorf("write content file: %w", err)
	}

	return path, nil
}

func contentFile(title, author, datePrefix string, draft bool) ([]byte, error) {
	date := datePrefix
	if date == "" {
		date = time.Now().Format(datePrefixLayout)
	}

	meta := Metadata{
		Title: title,
		Date:  date,
		Draft: draft,
	}
	if author != "" {
		meta.Author = []Author{{Name: author}}
	}

	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	contents := "---\n" + string(header) + "---\n" + starterBody
	return []byte(contents), nil
}

func osUserName() string {
	current, err := user.Current()
	if err != nil {
		return ""
	}
	if current.Name != "" {
		return current.Name
	}
	return current.Username
}
