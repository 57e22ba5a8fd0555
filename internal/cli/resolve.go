package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enumeral/enumeral/internal/catalog"
	"github.com/enumeral/enumeral/internal/enumtype"
	"github.com/enumeral/enumeral/internal/resolve"
)

// ResolveResult is the JSON payload of a successful resolution.
type ResolveResult struct {
	Type  string `json:"type"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var declsDir string

	cmd := &cobra.Command{
		Use:   "resolve <dotted-identifier>",
		Short: "Resolve a dotted identifier chain as an enum literal",
		Long: `Resolve a dotted identifier chain (e.g. test.enum.mood.HAPPY) against
the declared enum types, printing the underlying value on a match.

The chain splits on '.'; both the type-name prefix and the key suffix
match case-insensitively.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, declsDir, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&declsDir, "decls", ".", "directory of enum declaration files")
	return cmd
}

func runResolve(opts *RootOptions, declsDir, chainArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := loadRegistry(declsDir, formatter)
	if err != nil {
		return err
	}

	chain := strings.Split(chainArg, ".")
	val, matched, resolveErr := resolve.NewResolver(reg).TryResolve(chain)
	if !matched {
		formatter.Error(ErrCodeNotLiteral, fmt.Sprintf("'%s' is not an enum literal", chainArg))
		return &ExitError{Code: ExitFailure, Message: "not an enum literal"}
	}
	if resolveErr != nil {
		formatter.Error(resolveErrCode(resolveErr), resolveErr.Error())
		return &ExitError{Code: ExitFailure, Message: "resolution failed", Err: resolveErr}
	}

	if opts.Format == "json" {
		return formatter.Success(ResolveResult{
			Type:  val.Type().Name(),
			Kind:  val.Type().Kind().String(),
			Value: val.Raw().String(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", val.Type().Name(), val.Raw())
	return nil
}

// loadRegistry builds a fresh registry from a declarations directory.
func loadRegistry(declsDir string, formatter *OutputFormatter) (*enumtype.Registry, error) {
	reg := enumtype.NewRegistry()
	result, err := catalog.LoadAndRegister(reg, declsDir)
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error())
		return nil, &ExitError{Code: ExitCommandError, Message: "load declarations", Err: err}
	}
	formatter.VerboseLog("Registered %d enum type(s) from %d file(s)", len(result.Definitions), result.FileCount)
	return reg, nil
}

// resolveErrCode maps resolution errors to diagnostic codes.
func resolveErrCode(err error) string {
	var typeAsValue *enumtype.TypeAsValueError
	if errors.As(err, &typeAsValue) {
		return ErrCodeTypeAsValue
	}
	if enumtype.IsUnknownKey(err) {
		return ErrCodeUnknownKey
	}
	return ErrCodeLoad
}
