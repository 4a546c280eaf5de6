package post

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/internal/site"
)

func createFixturePost(t *testing.T, s site.Site, title, date string) string {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("parse fixture date: %v", err)
	}
	path, err := Create(s, CreateOptions{Title: title, Date: PrefixAt(at)})
	if err != nil {
		t.Fatalf("create fixture post: %v", err)
	}
	return filepath.Dir(path)
}

func TestRenameWithNewDate(t *testing.T) {
	s := newTestSite(t)
	src := createFixturePost(t, s, "Hello World", "2020-09-12")

	result, err := Rename(s, RenameOptions{
		Source: src,
		Date:   PrefixFrom("9/15/2020"),
	})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}

	want := filepath.Join(s.PostsDir(), "2020-09-15-hello-world")
	if result.To != want {
		t.Fatalf("expected target %s, got %s", want, result.To)
	}
	if result.Unchanged {
		t.Fatalf("expected a move, got no-op")
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source directory still present after rename")
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("target directory missing: %v", err)
	}
}

func TestRenameRecoversTitleFromFrontMatter(t *testing.T) {
	s := newTestSite(t)
	createFixturePost(t, s, "Original Title", "2020-09-12")

	// Source given as a bare directory name under the posts root.
	result, err := Rename(s, RenameOptions{
		Source: "2020-09-12-original-title",
		Date:   PrefixAt(time.Date(2021, time.January, 2, 0, 0, 0, 0, time.Local)),
	})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}

	want := filepath.Join(s.PostsDir(), "2021-01-02-original-title")
	if result.To != want {
		t.Fatalf("expected recovered-title target %s, got %s", want, result.To)
	}
}

func TestRenameToSameNameIsNoOp(t *testing.T) {
	s := newTestSite(t)
	src := createFixturePost(t, s, "Stable Post", "2020-09-12")

	result, err := Rename(s, RenameOptions{Source: src, KeepDate: true})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if !result.Unchanged {
		t.Fatalf("expected no-op for unchanged name")
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("no-op rename must leave the directory alone: %v", err)
	}
}

func TestRenameKeepDateWithNewTitle(t *testing.T) {
	s := newTestSite(t)
	src := createFixturePost(t, s, "Old Title", "2020-09-12")

	result, err := Rename(s, RenameOptions{
		Source:   src,
		Title:    "New Title",
		KeepDate: true,
	})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}

	want := filepath.Join(s.PostsDir(), "2020-09-12-new-title")
	if result.To != want {
		t.Fatalf("expected %s, got %s", want, result.To)
	}
}

func TestRenameMissingSource(t *testing.T) {
	s := newTestSite(t)

	_, err := Rename(s, RenameOptions{Source: "no-such-post"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestRenameCollision(t *testing.T) {
	s := newTestSite(t)
	src := createFixturePost(t, s, "First Post", "2020-09-12")
	createFixturePost(t, s, "Second Post", "2020-09-12")

	_, err := Rename(s, RenameOptions{
		Source:   src,
		Title:    "Second Post",
		KeepDate: true,
	})
	if !errors.Is(err, ErrPostExists) {
		t.Fatalf("expected ErrPostExists, got %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Fatalf("collision must leave the source in place: %v", statErr)
	}
}

func TestRenameExplicitSlugSkipsDiscovery(t *testing.T) {
	s := newTestSite(t)
	src := filepath.Join(s.PostsDir(), "2020-09-12-empty")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// The directory holds no content file, so discovery would fail; an
	// explicit slug must not require it.
	result, err := Rename(s, RenameOptions{
		Source:   src,
		Slug:     "renamed",
		KeepDate: true,
	})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if filepath.Base(result.To) != "2020-09-12-renamed" {
		t.Fatalf("unexpected target %s", result.To)
	}
}
