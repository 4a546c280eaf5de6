package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inkwell/internal/site"
)

var (
	siteDir    string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Static-site scaffolding and post management CLI",
	}

	cmd.PersistentFlags().StringVar(&siteDir, "site", "", "Path to a directory inside the site project")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newPostCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// currentSite locates the enclosing site project using the optional --site
// flag or the working directory.
func currentSite() (site.Site, error) {
	start := siteDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return site.Site{}, fmt.Errorf("get working directory: %w", err)
		}
		start = cwd
	}
	return site.Load(start)
}
