package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sortd/internal/catalog"
	"sortd/internal/organize"
	"sortd/internal/planner"
)

func newOrganizeCommand(cmdCtx *commandContext) *cobra.Command {
	var sourceFlag string
	var destFlag string
	var dryRun bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move files from the source tree into category folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			return cmdCtx.withStore(func(store *catalog.Store) error {
				ctx, cancel := signalContext()
				defer cancel()

				cat, err := organize.BuildCatalog(ctx, cfg, store)
				if err != nil {
					return err
				}

				var prompt *promptClassifier
				var classifier planner.Classifier
				if interactive {
					if !stdinIsTerminal() {
						return fmt.Errorf("--interactive requires a terminal on stdin")
					}
					prompt = newPromptClassifier(os.Stdin, cmd.OutOrStdout())
					classifier = prompt
				}

				runner := organize.NewRunner(cfg, cat, logger)
				result, err := runner.Run(ctx, organize.Options{
					Source:     sourceFlag,
					Dest:       destFlag,
					DryRun:     dryRun,
					Classifier: classifier,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if dryRun {
					renderPlan(out, result.Plan)
				}
				renderReport(out, result)
				renderUnmapped(out, cat.Unmapped())

				if prompt != nil {
					for ext, category := range prompt.Assignments() {
						if err := store.Put(ctx, ext, category); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source directory (defaults to the configured source_dir)")
	cmd.Flags().StringVar(&destFlag, "dest", "", "Destination directory (defaults to the configured dest_dir)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Plan and report without moving anything")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for categories when an extension has none")
	return cmd
}
