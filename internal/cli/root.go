// Package cli implements the predql command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zoobzio/predql"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format   string // "text" | "json"
	Mappings string
	Verbose  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the predql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "predql",
		Short: "Compile predicate documents to parameterized SQL",
		Long: `predql compiles YAML predicate documents into bracket-quoted SQL with
named @Property_N parameters, using entity mappings loaded from YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log mapping details to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Mappings, "mappings", "m", "", "YAML mapping file")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// newLogger returns a logger writing to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// loadRegistry reads the mapping file named by opts.
func loadRegistry(opts *RootOptions, logger logrus.FieldLogger) (*predql.Registry, error) {
	if opts.Mappings == "" {
		return nil, fmt.Errorf("--mappings is required")
	}
	f, err := os.Open(opts.Mappings)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return predql.LoadMappings(f, predql.WithLogger(logger), predql.WithAutoMap(false))
}
