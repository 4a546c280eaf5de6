package post

import (
	"fmt"
	"os"
	"path/filepath"
)

// Info summarizes one post directory for listings.
type Info struct {
	Name   string `json:"name"`
	Dir    string `json:"dir"`
	Prefix string `json:"date,omitempty"`
	Slug   string `json:"slug"`
	Title  string `json:"title,omitempty"`
	Draft  bool   `json:"draft,omitempty"`
}

// List scans the posts root and summarizes each post directory in lexical
// order. A missing posts root is an empty site, not an error. Title and draft
// fields are best-effort: a post without readable front matter still lists.
func List(postsRoot string) ([]Info, error) {
	entries, err := os.ReadDir(postsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list posts root: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		prefix, slug := SplitName(entry.Name())
		info := Info{
			Name:   entry.Name(),
			Dir:    filepath.Join(postsRoot, entry.Name()),
			Prefix: prefix,
			Slug:   slug,
		}

		if meta, err := firstMetadata(info.Dir); err == nil {
			info.Title = meta.Title
			info.Draft = meta.Draft
		}
		infos = append(infos, info)
	}

	return infos, nil
}
