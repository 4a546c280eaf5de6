// Package engine invokes the external site-rendering engine. The engine is an
// opaque collaborator: inkwell locates the configured binary and hands the
// whole site over to it.
package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"inkwell/internal/site"
)

// Status describes a detected engine binary.
type Status struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// Detect locates the engine binary on PATH and probes its version.
func Detect(ctx context.Context, name string) (Status, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return Status{}, fmt.Errorf("render engine %q not found on PATH: %w", name, err)
	}

	status := Status{Name: name, Path: path}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		// Binary exists but the version probe failed; report it anyway.
		return status, nil
	}
	if line, _, _ := strings.Cut(string(out), "\n"); line != "" {
		status.Version = strings.TrimSpace(line)
	}
	return status, nil
}

// Render runs the configured engine over the site root, writing into the
// configured output directory. Engine output streams through to the user.
func Render(ctx context.Context, s site.Site) error {
	status, err := Detect(ctx, s.Config.Engine)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, status.Path, "render", s.Root, "--output-dir", s.Config.OutputDir)
	cmd.Dir = s.Root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("render site with %s: %w", s.Config.Engine, err)
	}
	return nil
}
