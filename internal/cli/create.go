package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"inkwell/internal/scaffold"
	"inkwell/internal/site"
)

var (
	createTitle  string
	createAuthor string
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Scaffold a new site project from a bundled template",
	}

	website := &cobra.Command{
		Use:   "website [directory]",
		Short: "Scaffold a website project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, scaffold.KindWebsite)
		},
	}
	blog := &cobra.Command{
		Use:   "blog [directory]",
		Short: "Scaffold a blog project with a posts directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, scaffold.KindBlog)
		},
	}

	for _, sub := range []*cobra.Command{website, blog} {
		sub.Flags().StringVar(&createTitle, "title", "", "Site title (directory name is derived from it when omitted)")
		sub.Flags().StringVar(&createAuthor, "author", "", "Default author for generated posts")
		cmd.AddCommand(sub)
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string, kind scaffold.Kind) error {
	dir, err := resolveCreateDir(args)
	if err != nil {
		return err
	}

	data := scaffold.Data{
		Title:  createTitle,
		Name:   filepath.Base(dir),
		Author: createAuthor,
	}

	created, err := scaffold.Create(dir, kind, data)
	if err != nil {
		return err
	}

	cmd.Printf("%s %s at %s\n", styled(successStyle, "Created"), string(kind), styled(pathStyle, dir))
	for _, entry := range created {
		cmd.Printf("  created %s\n", entry)
	}
	return nil
}

// resolveCreateDir picks the target directory: the positional argument, a
// name derived from --title, or the next available site-N under the working
// directory.
func resolveCreateDir(args []string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if len(args) > 0 {
		if args[0] == "." {
			return cwd, nil
		}
		if filepath.IsAbs(args[0]) {
			return filepath.Clean(args[0]), nil
		}
		return filepath.Join(cwd, args[0]), nil
	}

	if createTitle != "" {
		if name := scaffold.DirFromTitle(createTitle); name != "" {
			return filepath.Join(cwd, name), nil
		}
	}

	return nextAvailableDir(cwd)
}

func nextAvailableDir(base string) (string, error) {
	for i := 1; ; i++ {
		candidate := filepath.Join(base, fmt.Sprintf("site-%d", i))
		exists, err := site.DirExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
