package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "name: notebook\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "notebook" {
		t.Fatalf("expected name notebook, got %q", cfg.Name)
	}
	if cfg.Title != "notebook" {
		t.Fatalf("expected title to default to name, got %q", cfg.Title)
	}
	if cfg.OutputDir != "public" {
		t.Fatalf("expected default output dir public, got %q", cfg.OutputDir)
	}
	if cfg.Engine != "quarto" {
		t.Fatalf("expected default engine quarto, got %q", cfg.Engine)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := `name: field-notes
title: Field Notes
output_dir: docs
engine: hugo
navbar:
  - text: Home
    href: index.html
  - text: About
    href: about.html
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "docs" {
		t.Fatalf("expected output dir docs, got %q", cfg.OutputDir)
	}
	if cfg.Engine != "hugo" {
		t.Fatalf("expected engine hugo, got %q", cfg.Engine)
	}
	if len(cfg.Navbar) != 2 || cfg.Navbar[1].Text != "About" {
		t.Fatalf("unexpected navbar: %+v", cfg.Navbar)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Name = "journal"
	cfg.ApplyDefaults()

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "journal" || loaded.OutputDir != cfg.OutputDir {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
