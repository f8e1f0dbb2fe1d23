package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// ValidateResult is the JSON payload of a successful validation.
type ValidateResult struct {
	Entities []string `json:"entities"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate",
		Short:         "Check a mapping file for conflicting columns and keys",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(rootOpts, cmd)
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	reg, err := loadRegistry(opts, newLogger(cmd.ErrOrStderr(), opts.Verbose))
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodeMappings, err, nil)
	}

	if err := reg.Validate(); err != nil {
		var details []string
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				details = append(details, e.Error())
			}
		}
		return formatter.Error(ExitFailure, ErrCodeValidate,
			fmt.Errorf("%d mapping problem(s)", len(details)), details)
	}

	result := ValidateResult{Entities: reg.Entities()}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ %d entity mapping(s) valid\n", len(result.Entities))
		for _, name := range result.Entities {
			fmt.Fprintf(w, "  %s\n", name)
		}
	})
}
