package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"sortd/internal/catalog"
	"sortd/internal/config"
	"sortd/internal/organize"
)

func newCatalogCommand(cmdCtx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the extension catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(cmdCtx))
	catalogCmd.AddCommand(newCatalogSetCommand(cmdCtx))
	catalogCmd.AddCommand(newCatalogUnsetCommand(cmdCtx))

	return catalogCmd
}

func newCatalogListCommand(cmdCtx *commandContext) *cobra.Command {
	var persistedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show extension-to-category mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			return cmdCtx.withStore(func(store *catalog.Store) error {
				ctx := cmd.Context()
				rows := make([][]string, 0, 64)

				if persistedOnly {
					persisted, err := store.All(ctx)
					if err != nil {
						return err
					}
					exts := make([]string, 0, len(persisted))
					for ext := range persisted {
						exts = append(exts, ext)
					}
					sort.Strings(exts)
					for _, ext := range exts {
						rows = append(rows, []string{extLabel(ext), persisted[ext]})
					}
				} else {
					cat, err := organize.BuildCatalog(ctx, cfg, store)
					if err != nil {
						return err
					}
					for _, mapping := range cat.Mappings() {
						rows = append(rows, []string{extLabel(mapping.Extension), mapping.Category})
					}
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Extension", "Category"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&persistedOnly, "persisted", false, "Show only mappings saved in the catalog database")
	return cmd
}

func newCatalogSetCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <extension> <category>",
		Short: "Map an extension to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := catalog.Normalize(args[0])
			category := args[1]
			if err := config.ValidateCategoryName(category); err != nil {
				return err
			}
			category = catalog.CanonicalCategory(category)

			return cmdCtx.withStore(func(store *catalog.Store) error {
				if err := store.Put(cmd.Context(), ext, category); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", extLabel(ext), category)
				return nil
			})
		},
	}
}

func newCatalogUnsetCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <extension>",
		Short: "Remove a persisted extension mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := catalog.Normalize(args[0])
			return cmdCtx.withStore(func(store *catalog.Store) error {
				if err := store.Delete(cmd.Context(), ext); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed mapping for %s\n", extLabel(ext))
				return nil
			})
		},
	}
}

func extLabel(ext string) string {
	if ext == catalog.NoExtension {
		return "(no extension)"
	}
	return ext
}
