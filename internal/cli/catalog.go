package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enumeral/enumeral/internal/catalog"
)

// CatalogEntry is one row of a catalog listing.
type CatalogEntry struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Entries int    `json:"entries"`
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and populate the persistent enum catalog",
	}
	cmd.AddCommand(newCatalogImportCommand(rootOpts))
	cmd.AddCommand(newCatalogListCommand(rootOpts))
	return cmd
}

func newCatalogImportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		declsDir string
		dbPath   string
	)
	cmd := &cobra.Command{
		Use:           "import",
		Short:         "Import declaration files into the catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogImport(rootOpts, declsDir, dbPath, cmd)
		},
	}
	cmd.Flags().StringVar(&declsDir, "decls", ".", "directory of enum declaration files")
	cmd.Flags().StringVar(&dbPath, "db", "catalog.db", "catalog database path")
	return cmd
}

func runCatalogImport(opts *RootOptions, declsDir, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := catalog.LoadDir(declsDir)
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error())
		return &ExitError{Code: ExitCommandError, Message: "load declarations", Err: err}
	}

	store, err := catalog.OpenStore(dbPath)
	if err != nil {
		formatter.Error(ErrCodeCatalog, err.Error())
		return &ExitError{Code: ExitCommandError, Message: "open catalog", Err: err}
	}
	defer store.Close()

	if err := store.SaveAll(result.Definitions); err != nil {
		formatter.Error(ErrCodeCatalog, err.Error())
		return &ExitError{Code: ExitFailure, Message: "import failed", Err: err}
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"imported": len(result.Definitions)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d enum type(s)\n", len(result.Definitions))
	return nil
}

func newCatalogListCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List enum types stored in the catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(rootOpts, dbPath, cmd)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "catalog.db", "catalog database path")
	return cmd
}

func runCatalogList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := catalog.OpenStore(dbPath)
	if err != nil {
		formatter.Error(ErrCodeCatalog, err.Error())
		return &ExitError{Code: ExitCommandError, Message: "open catalog", Err: err}
	}
	defer store.Close()

	defs, err := store.LoadAll()
	if err != nil {
		formatter.Error(ErrCodeCatalog, err.Error())
		return &ExitError{Code: ExitFailure, Message: "load catalog", Err: err}
	}

	if opts.Format == "json" {
		entries := make([]CatalogEntry, len(defs))
		for i, def := range defs {
			entries[i] = CatalogEntry{Name: def.Name(), Kind: def.Kind().String(), Entries: len(def.Entries())}
		}
		return formatter.Success(entries)
	}
	for _, def := range defs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d entries\n", def.Name(), def.Kind(), len(def.Entries()))
	}
	return nil
}
