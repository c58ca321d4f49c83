package cli

import (
	"fmt"

	"github.com/Aman-s12345/swagger-sync/internal/annotator"
	"github.com/spf13/cobra"
)

func (a *app) annotateCommand() *cobra.Command {
	var (
		roots  []string
		ext    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Prepend OpenAPI blocks to controller entry files",
		Long: `Walks each controller root and, for every file named after its directory
(user/user.js), prepends @openapi blocks for the list and create endpoints.
Files that already contain @openapi or @swagger are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("root") {
				a.cfg.Annotate.RootDirs = roots
			}
			if flags.Changed("ext") {
				a.cfg.Annotate.SourceExt = ext
			}
			if flags.Changed("dry-run") {
				a.cfg.Annotate.DryRun = dryRun
			}
			if err := a.cfg.ValidateAnnotate(); err != nil {
				return err
			}

			result, err := annotator.New(a.cfg.Annotate, a.logger).Run()
			if err != nil {
				return fmt.Errorf("annotate: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.cfg.Annotate.DryRun {
				fmt.Fprintf(out, "%d files would be updated, %d already annotated\n",
					len(result.Pending), len(result.Annotated))
				return nil
			}
			fmt.Fprintf(out, "Updated %d files, %d already annotated\n",
				len(result.Updated), len(result.Annotated))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&roots, "root", nil, "Controller root directory (repeatable)")
	cmd.Flags().StringVar(&ext, "ext", "", "Source file extension")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report files that would change without writing them")

	return cmd
}
