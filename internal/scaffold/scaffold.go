// Package scaffold instantiates the bundled website and blog templates into a
// fresh project directory.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	gosimple "github.com/gosimple/slug"

	"inkwell/internal/config"
	"inkwell/internal/post"
	"inkwell/internal/site"
)

// Kind selects which bundled template set to instantiate.
type Kind string

const (
	KindWebsite Kind = "website"
	KindBlog    Kind = "blog"
)

// Data feeds the bundled templates.
type Data struct {
	Title  string
	Name   string
	Author string
}

// DirFromTitle derives a filesystem directory name from a site title.
func DirFromTitle(title string) string {
	return gosimple.Make(title)
}

// Create instantiates the template set for kind into dir, creating it as
// needed, and returns the relative paths of the files written. A directory
// that already holds a site config is refused.
func Create(dir string, kind Kind, data Data) ([]string, error) {
	if data.Name == "" {
		data.Name = DirFromTitle(data.Title)
	}
	if data.Title == "" {
		data.Title = data.Name
	}

	marked, err := site.FileExists(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}
	if marked {
		return nil, fmt.Errorf("directory already contains a site: %s", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create site dir: %w", err)
	}

	cfg := config.Default()
	cfg.Name = data.Name
	cfg.Title = data.Title
	cfg.ApplyDefaults()
	cfg.Navbar = []config.NavEntry{
		{Text: "Home", Href: "index.html"},
		{Text: "About", Href: "about.html"},
	}

	contents, err := cfg.Marshal()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, config.FileName), contents, 0o644); err != nil {
		return nil, fmt.Errorf("write site config: %w", err)
	}
	created := []string{config.FileName}

	pages := map[string]string{
		"about.Rmd":  aboutTemplate,
		"styles.css": stylesTemplate,
	}
	if kind == KindBlog {
		pages["index.Rmd"] = blogIndexTemplate
	} else {
		pages["index.Rmd"] = websiteIndexTemplate
	}

	for _, name := range []string{"index.Rmd", "about.Rmd", "styles.css"} {
		if err := renderFile(filepath.Join(dir, name), name, pages[name], data); err != nil {
			return nil, err
		}
		created = append(created, name)
	}

	if kind == KindBlog {
		welcome, err := post.Create(site.Site{Root: dir, Config: cfg}, post.CreateOptions{
			Title:  "Welcome",
			Author: data.Author,
			Date:   post.PrefixAt(time.Now()),
		})
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(dir, welcome)
		if err != nil {
			rel = welcome
		}
		created = append(created, rel)
	}

	return created, nil
}

// renderFile renders the named template with data and writes the result.
func renderFile(path, name, text string, data Data) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
