package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enumeral/enumeral/internal/catalog"
	"github.com/enumeral/enumeral/internal/enumtype"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool     `json:"valid"`
	Types []string `json:"types,omitempty"`
	Files int      `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <decls-dir>",
		Short: "Validate enum declarations without registering them",
		Long: `Validate YAML enum declaration files against the declaration schema.

Checks structure, backing-kind/value agreement, case-insensitive key
collisions, and duplicate qualified names, without touching a registry
or catalog database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := catalog.LoadDir(dir)
	if err != nil {
		var declErr *catalog.DeclValidationError
		if errors.As(err, &declErr) {
			formatter.Error(ErrCodeInvalidDecl, err.Error())
			return &ExitError{Code: ExitFailure, Message: "invalid declarations"}
		}
		formatter.Error(ErrCodeLoad, err.Error())
		return &ExitError{Code: ExitCommandError, Message: "load declarations"}
	}
	formatter.VerboseLog("Found %d declaration file(s) in %s", result.FileCount, dir)

	// A throwaway registry surfaces duplicate names across files.
	reg := enumtype.NewRegistry()
	if err := catalog.RegisterAll(reg, result.Definitions); err != nil {
		formatter.Error(ErrCodeInvalidDecl, err.Error())
		return &ExitError{Code: ExitFailure, Message: "invalid declarations"}
	}

	names := make([]string, len(result.Definitions))
	for i, def := range result.Definitions {
		names[i] = def.Name()
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Types: names, Files: result.FileCount})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d enum type(s) in %d file(s)\n", len(names), result.FileCount)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}
