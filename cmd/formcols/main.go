// Command formcols builds a model matrix from a CSV file and a formula.
//
// Usage:
//
//	formcols --data data.csv --formula "y ~ 1 + a*b + log(x)"
//	formcols -d data.csv -f "y ~ 0 + c" --contrasts overrides.yaml --head 5
//
// The optional contrasts file is a YAML map from variable name to a
// registered scheme name (treatment, sum, helmert, full).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/formula/contrast"
	"github.com/katalvlaran/formula/modelcols"
	"github.com/katalvlaran/formula/parse"
	"github.com/katalvlaran/formula/schema"
	"github.com/katalvlaran/formula/table"
)

// cliConfig holds flag state. Defaults are overwritten by flags.
type cliConfig struct {
	dataPath      string
	formulaSrc    string
	contrastsPath string
	head          int
}

var config = cliConfig{head: 10}

var rootCmd = &cobra.Command{
	Use:          "formcols",
	Short:        "formcols - build model matrices from CSV data and a model formula",
	Long:         `Parses a model formula, resolves it against the schema of a CSV file, and prints the generated model matrix with its column names.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&config.dataPath, "data", "d", "", "Path to the CSV data file (header row required)")
	rootCmd.Flags().StringVarP(&config.formulaSrc, "formula", "f", "", `Model formula, e.g. "y ~ 1 + a*b"`)
	rootCmd.Flags().StringVar(&config.contrastsPath, "contrasts", "", "YAML file mapping variable names to contrast scheme names")
	rootCmd.Flags().IntVar(&config.head, "head", config.head, "Number of matrix rows to print (0 = all)")
	_ = rootCmd.MarkFlagRequired("data")
	_ = rootCmd.MarkFlagRequired("formula")
}

func run(cmd *cobra.Command) error {
	file, err := os.Open(config.dataPath)
	if err != nil {
		return err
	}
	defer file.Close()

	tbl, err := table.ReadCSV(file)
	if err != nil {
		return err
	}

	f, err := parse.Formula(config.formulaSrc)
	if err != nil {
		return err
	}

	opts, err := loadContrasts(config.contrastsPath)
	if err != nil {
		return err
	}

	sch, err := schema.Extract(tbl, f)
	if err != nil {
		return err
	}
	resolved, err := schema.Apply(f, sch, opts)
	if err != nil {
		return err
	}

	res, err := modelcols.Build(resolved, tbl, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "formula:  %s\n", resolved.String())
	fmt.Fprintf(out, "rows:     %d\n", tbl.Len())
	if res.Y != nil {
		fmt.Fprintf(out, "response: %v\n", res.YNames)
	}
	fmt.Fprintf(out, "columns:  %v\n", res.XNames)

	limit := res.X.Rows()
	if config.head > 0 && config.head < limit {
		limit = config.head
	}
	for i := 0; i < limit; i++ {
		row, err := res.X.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v\n", row)
	}
	if limit < res.X.Rows() {
		fmt.Fprintf(out, "... (%d more rows)\n", res.X.Rows()-limit)
	}

	return nil
}

// loadContrasts reads the optional YAML override file and resolves each
// scheme name against the contrast registry.
func loadContrasts(path string) (*schema.Options, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contrasts file: %w", err)
	}
	var byName map[string]string
	if err := yaml.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("failed to parse contrasts file: %w", err)
	}
	opts := &schema.Options{Contrasts: make(map[string]contrast.Scheme, len(byName))}
	for varName, schemeName := range byName {
		s, err := contrast.Lookup(schemeName)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", varName, err)
		}
		opts.Contrasts[varName] = s
	}

	return opts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
