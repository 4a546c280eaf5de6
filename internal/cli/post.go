package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/logx"
	"inkwell/internal/post"
)

var (
	newSlug   string
	newDate   string
	newNoDate bool
	newAuthor string
	newDraft  bool

	renameTitle    string
	renameSlug     string
	renameDate     string
	renameNoDate   bool
	renameKeepDate bool
)

var errMissingTitle = errors.New("a post title is required")

func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create and rename blog posts",
	}

	cmd.AddCommand(newPostNewCmd())
	cmd.AddCommand(newPostRenameCmd())
	return cmd
}

func newPostNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new dated post directory",
		Args:  cobra.ArbitraryArgs,
		RunE:  runPostNew,
	}

	cmd.Flags().StringVar(&newSlug, "slug", "", "Directory slug (derived from the title when omitted)")
	cmd.Flags().StringVar(&newDate, "date", "", "Date prefix, e.g. 2020-09-15 or 9/15/2020 (today when omitted)")
	cmd.Flags().BoolVar(&newNoDate, "no-date", false, "Create the post without a date prefix")
	cmd.Flags().StringVar(&newAuthor, "author", "", "Post author (inferred from the posts listing when omitted)")
	cmd.Flags().BoolVar(&newDraft, "draft", false, "Mark the post as a draft")
	return cmd
}

func runPostNew(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return errMissingTitle
	}

	s, err := currentSite()
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(s)
	if err != nil {
		return err
	}
	defer closer.Close()

	path, err := post.Create(s, post.CreateOptions{
		Title:  title,
		Slug:   newSlug,
		Author: newAuthor,
		Date:   prefixSpec(newDate, newNoDate),
		Draft:  newDraft,
	})
	if err != nil {
		return err
	}

	logger.Printf("post new: title=%q file=%s", title, path)
	cmd.Printf("%s %s\n", styled(successStyle, "Created"), styled(pathStyle, path))
	return nil
}

func newPostRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <post>",
		Short: "Rename an existing post directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runPostRename,
	}

	cmd.Flags().StringVar(&renameTitle, "title", "", "New title (recovered from the post's front matter when omitted)")
	cmd.Flags().StringVar(&renameSlug, "slug", "", "New slug (derived from the title when omitted)")
	cmd.Flags().StringVar(&renameDate, "date", "", "New date prefix (today when omitted)")
	cmd.Flags().BoolVar(&renameNoDate, "no-date", false, "Rename without a date prefix")
	cmd.Flags().BoolVar(&renameKeepDate, "keep-date", false, "Keep the post's current date prefix")
	return cmd
}

func runPostRename(cmd *cobra.Command, args []string) error {
	s, err := currentSite()
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(s)
	if err != nil {
		return err
	}
	defer closer.Close()

	result, err := post.Rename(s, post.RenameOptions{
		Source:   args[0],
		Title:    renameTitle,
		Slug:     renameSlug,
		Date:     prefixSpec(renameDate, renameNoDate),
		KeepDate: renameKeepDate,
	})
	if err != nil {
		return err
	}

	if result.Unchanged {
		logger.Printf("post rename: unchanged dir=%s", result.From)
		cmd.Printf("%s %s\n", styled(noticeStyle, "Post already has this name:"), styled(pathStyle, result.From))
		return nil
	}

	logger.Printf("post rename: from=%s to=%s", result.From, result.To)
	cmd.Printf("%s %s -> %s\n", styled(successStyle, "Renamed"), result.From, styled(pathStyle, result.To))
	return nil
}

// prefixSpec maps the date flags onto a prefix spec; --no-date wins over
// --date, and neither flag means today.
func prefixSpec(date string, noDate bool) post.PrefixSpec {
	switch {
	case noDate:
		return post.PrefixNone()
	case date != "":
		return post.PrefixFrom(date)
	default:
		return post.PrefixToday()
	}
}
