package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoobzio/predql"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Predicate string
	Select    string
	Count     string
	Sorts     []string
}

// CompileResult is the JSON payload of a successful compile.
type CompileResult struct {
	SQL    string       `json:"sql"`
	Params []ParamValue `json:"params"`
}

// ParamValue is one bound parameter, in binding order.
type ParamValue struct {
	Value any    `json:"value"`
	Name  string `json:"name"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a predicate document to SQL",
		Long: `Compile a YAML predicate document against the entity mappings.

Without --select or --count the output is the bare boolean expression for a
WHERE clause. With --select or --count a full statement over that entity is
rendered, and --predicate becomes optional.`,
		Example: `  predql compile -m mappings.yaml -p predicate.yaml
  predql compile -m mappings.yaml -p predicate.yaml --select Order --sort Order.Total:desc
  predql compile -m mappings.yaml --count Order --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompile(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Predicate, "predicate", "p", "", "YAML predicate document")
	cmd.Flags().StringVar(&opts.Select, "select", "", "render a SELECT over this entity")
	cmd.Flags().StringVar(&opts.Count, "count", "", "render a COUNT over this entity")
	cmd.Flags().StringArrayVar(&opts.Sorts, "sort", nil, "sort term Entity.Property[:asc|desc], repeatable")

	return cmd
}

func runCompile(opts *CompileOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if opts.Select != "" && opts.Count != "" {
		return formatter.Error(ExitCommandError, ErrCodeUsage, fmt.Errorf("--select and --count are mutually exclusive"), nil)
	}
	if opts.Select == "" && opts.Count == "" && opts.Predicate == "" {
		return formatter.Error(ExitCommandError, ErrCodeUsage, fmt.Errorf("--predicate is required without --select or --count"), nil)
	}
	if len(opts.Sorts) > 0 && opts.Select == "" {
		return formatter.Error(ExitCommandError, ErrCodeUsage, fmt.Errorf("--sort requires --select"), nil)
	}

	reg, err := loadRegistry(opts.RootOptions, newLogger(cmd.ErrOrStderr(), opts.Verbose))
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodeMappings, err, nil)
	}

	var pred predql.Predicate
	if opts.Predicate != "" {
		data, err := os.ReadFile(opts.Predicate)
		if err != nil {
			return formatter.Error(ExitCommandError, ErrCodePredicate, err, nil)
		}
		if pred, err = predql.ParsePredicate(data); err != nil {
			return formatter.Error(ExitCommandError, ErrCodePredicate, err, nil)
		}
	}

	var result *predql.QueryResult
	switch {
	case opts.Select != "":
		sorts, serr := parseSorts(opts.Select, opts.Sorts)
		if serr != nil {
			return formatter.Error(ExitCommandError, ErrCodeUsage, serr, nil)
		}
		result, err = reg.Select(predql.EntityNamed(opts.Select), pred, sorts...)
	case opts.Count != "":
		result, err = reg.Count(predql.EntityNamed(opts.Count), pred)
	default:
		result, err = reg.Query(pred)
	}
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodeCompile, err, nil)
	}

	out := CompileResult{SQL: result.SQL, Params: make([]ParamValue, 0, result.Params.Len())}
	for _, name := range result.Params.Names() {
		v, _ := result.Params.Get(name)
		out.Params = append(out.Params, ParamValue{Name: name, Value: v})
	}

	return formatter.Success(out, func(w io.Writer) {
		fmt.Fprintln(w, out.SQL)
		for _, p := range out.Params {
			fmt.Fprintf(w, "%s = %#v\n", p.Name, p.Value)
		}
	})
}

// parseSorts converts "Entity.Property[:asc|desc]" terms into sort descriptors.
// Every term must name the selected entity.
func parseSorts(entity string, terms []string) ([]predql.Sort, error) {
	sorts := make([]predql.Sort, 0, len(terms))
	for _, term := range terms {
		path, dir, _ := strings.Cut(term, ":")
		owner, prop, ok := strings.Cut(path, ".")
		if !ok || owner == "" || prop == "" {
			return nil, fmt.Errorf("sort %q: expected Entity.Property[:asc|desc]", term)
		}
		if owner != entity {
			return nil, fmt.Errorf("sort %q: entity must be %s", term, entity)
		}

		s := predql.Sort{PropertyName: prop, Ascending: true}
		switch strings.ToLower(dir) {
		case "", "asc":
		case "desc":
			s.Ascending = false
		default:
			return nil, fmt.Errorf("sort %q: direction must be asc or desc", term)
		}
		sorts = append(sorts, s)
	}
	return sorts, nil
}
