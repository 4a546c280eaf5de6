package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"inkwell/internal/engine"
	"inkwell/internal/logx"
)

var renderCheck bool

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the site with the configured engine",
		RunE:  runRender,
	}

	cmd.Flags().BoolVar(&renderCheck, "check", false, "Only probe the engine binary and print its version")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := currentSite()
	if err != nil {
		return err
	}

	if renderCheck {
		status, err := engine.Detect(ctx, s.Config.Engine)
		if err != nil {
			return err
		}
		if outputJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(status)
		}
		cmd.Printf("engine: %s\npath: %s\nversion: %s\n", status.Name, status.Path, status.Version)
		return nil
	}

	logger, closer, err := logx.New(s)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Printf("render: engine=%s root=%s output=%s", s.Config.Engine, s.Root, s.Config.OutputDir)
	if err := engine.Render(ctx, s); err != nil {
		logger.Printf("render failed: %v", err)
		return err
	}

	cmd.Printf("%s site into %s\n", styled(successStyle, "Rendered"), styled(pathStyle, s.OutputDir()))
	return nil
}
