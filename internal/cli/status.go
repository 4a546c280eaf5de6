package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"inkwell/internal/post"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List the posts of the enclosing site",
		RunE:  runStatus,
	}
	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	s, err := currentSite()
	if err != nil {
		return err
	}

	infos, err := post.List(s.PostsDir())
	if err != nil {
		return err
	}

	if outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(statusReport{Root: s.Root, Posts: infos})
	}

	cmd.Printf("Site: %s\n", s.Root)
	if len(infos) == 0 {
		cmd.Printf("No posts yet.\n")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer writer.Flush()

	fmt.Fprintf(writer, "DATE\tSLUG\tTITLE\tDRAFT\n")
	for _, info := range infos {
		draft := ""
		if info.Draft {
			draft = "draft"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", info.Prefix, info.Slug, info.Title, draft)
	}
	return nil
}

type statusReport struct {
	Root  string      `json:"root"`
	Posts []post.Info `json:"posts"`
}
