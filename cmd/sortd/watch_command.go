package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sortd/internal/catalog"
	"sortd/internal/organize"
	"sortd/internal/services"
	"sortd/internal/watcher"
)

func newWatchCommand(cmdCtx *commandContext) *cobra.Command {
	var sourceFlag string
	var destFlag string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the source tree and organize as files settle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			source := sourceFlag
			if source == "" {
				source = cfg.Paths.SourceDir
			}
			if source == "" {
				return services.Wrap(services.ErrConfiguration, "watch", "resolve paths", "source directory must be configured", nil)
			}

			return cmdCtx.withStore(func(store *catalog.Store) error {
				ctx, cancel := signalContext()
				defer cancel()

				cat, err := organize.BuildCatalog(ctx, cfg, store)
				if err != nil {
					return err
				}
				runner := organize.NewRunner(cfg, cat, logger)
				runOnce := func() error {
					result, err := runner.Run(ctx, organize.Options{Source: sourceFlag, Dest: destFlag})
					if err != nil {
						if services.Fatal(err) || errors.Is(err, context.Canceled) {
							return err
						}
						// Transient failures leave files for the next pass.
						fmt.Fprintf(cmd.ErrOrStderr(), "organize pass failed: %v\n", err)
						return nil
					}
					fmt.Fprintln(cmd.OutOrStdout(), organize.Describe(result.Report))
					return nil
				}

				debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
				settle := time.Duration(cfg.Watch.SettleSeconds) * time.Second

				w, err := watcher.New(source, debounce, logger)
				if err != nil {
					return err
				}
				defer w.Close()
				go w.Run(ctx)

				fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", source)
				if err := runOnce(); err != nil {
					return err
				}

				for {
					select {
					case <-ctx.Done():
						return nil
					case trigger := <-w.Triggers():
						logger.Info("source changed", "files", len(trigger.Paths))
						select {
						case <-time.After(settle):
						case <-ctx.Done():
							return nil
						}
						if err := runOnce(); err != nil {
							return err
						}
					}
				}
			})
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source directory (defaults to the configured source_dir)")
	cmd.Flags().StringVar(&destFlag, "dest", "", "Destination directory (defaults to the configured dest_dir)")
	return cmd
}
