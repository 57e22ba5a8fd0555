package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/enumeral/enumeral/internal/cast"
	"github.com/enumeral/enumeral/internal/enumtype"
)

// CastResult is the JSON payload of a successful cast.
type CastResult struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewCastCommand creates the cast command.
func NewCastCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		declsDir string
		typeName string
	)

	cmd := &cobra.Command{
		Use:   "cast --type <enum-type> <scalar>",
		Short: "Cast a backing scalar into an enum type",
		Long: `Cast a scalar into an enum type, validating membership.

For integral enums the scalar parses as a signed 64-bit integer; for
textual enums it is taken verbatim, byte for byte.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(rootOpts, declsDir, typeName, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&declsDir, "decls", ".", "directory of enum declaration files")
	cmd.Flags().StringVar(&typeName, "type", "", "target enum type (qualified name)")
	cmd.MarkFlagRequired("type")
	return cmd
}

func runCast(opts *RootOptions, declsDir, typeName, scalar string, cmd *cobra.Command) error {
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

	def, ok := reg.Lookup(typeName)
	if !ok {
		formatter.Error(ErrCodeLoad, fmt.Sprintf("unknown enum type '%s'", typeName))
		return &ExitError{Code: ExitCommandError, Message: "unknown enum type"}
	}

	var raw enumtype.Raw
	switch def.Kind() {
	case enumtype.KindIntegral:
		n, parseErr := strconv.ParseInt(scalar, 10, 64)
		if parseErr != nil {
			formatter.Error(ErrCodeUnknownValue, fmt.Sprintf("'%s' is not an integer", scalar))
			return &ExitError{Code: ExitCommandError, Message: "bad scalar"}
		}
		raw = enumtype.IntegralRaw(n)
	case enumtype.KindTextual:
		raw = enumtype.TextualRaw(scalar)
	}

	val, castErr := cast.ToEnum(raw, def)
	if castErr != nil {
		formatter.Error(ErrCodeUnknownValue, castErr.Error())
		return &ExitError{Code: ExitFailure, Message: "cast failed", Err: castErr}
	}

	if opts.Format == "json" {
		return formatter.Success(CastResult{Type: val.Type().Name(), Value: val.Raw().String()})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", val.Raw())
	return nil
}
