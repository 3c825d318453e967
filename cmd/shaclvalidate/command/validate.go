package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ensaremirerol/shacl-validate/config"
	"github.com/ensaremirerol/shacl-validate/internal/loader"
	"github.com/ensaremirerol/shacl-validate/rdf"
	"github.com/ensaremirerol/shacl-validate/report"
	"github.com/ensaremirerol/shacl-validate/shape"
	"github.com/ensaremirerol/shacl-validate/sparql"
	"github.com/ensaremirerol/shacl-validate/validate"
	"github.com/ensaremirerol/shacl-validate/voc/sh"
)

var severityRank = map[string]int{"Info": 0, "Warning": 1, "Violation": 2}

// NewValidateCmd builds the "validate" subcommand: load a data graph and
// a shapes graph, run the SHACL core, and print a report (spec.md §1,
// §6).
func NewValidateCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a data graph against a shapes graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			bindValidateFlags(v, cmd)
			cfg := config.FromViper(v)
			return runValidate(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	cmd.Flags().String("data", "", "path to the N-Quads data graph")
	cmd.Flags().String("shapes", "", "path to the N-Quads shapes graph")
	cmd.Flags().String("output", "text", `report format: "text", "json", or "rdf"`)
	cmd.Flags().String("out", "", "write the report to this file instead of stdout")
	cmd.Flags().String("severity", "Violation", `minimum severity to report: "Info", "Warning", or "Violation"`)
	cmd.Flags().Int("workers", 0, "shape-level goroutine pool size (0: runtime.GOMAXPROCS(0))")

	return cmd
}

func bindValidateFlags(v *viper.Viper, cmd *cobra.Command) {
	_ = v.BindPFlag(config.KeyDataFile, cmd.Flags().Lookup("data"))
	_ = v.BindPFlag(config.KeyShapesFile, cmd.Flags().Lookup("shapes"))
	_ = v.BindPFlag(config.KeyOutputFormat, cmd.Flags().Lookup("output"))
	_ = v.BindPFlag(config.KeyOutputFile, cmd.Flags().Lookup("out"))
	_ = v.BindPFlag(config.KeySeverity, cmd.Flags().Lookup("severity"))
	_ = v.BindPFlag(config.KeyWorkers, cmd.Flags().Lookup("workers"))
}

func runValidate(cmd *cobra.Command, cfg config.Config) error {
	if cfg.DataFile == "" || cfg.ShapesFile == "" {
		return fmt.Errorf("validate: --data and --shapes are required")
	}

	bar := progressbar.NewOptions(4,
		progressbar.OptionSetDescription("loading"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)

	data, err := loader.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	_ = bar.Add(1)

	shapesGraph, err := loader.Load(cfg.ShapesFile)
	if err != nil {
		return err
	}
	_ = bar.Add(1)

	compiled, err := shape.Compile(shapesGraph)
	if err != nil {
		return err
	}
	_ = bar.Add(1)

	engine := validate.NewEngine(data, compiled.Shapes, sparql.NopStore{})
	engine.Workers = cfg.Workers
	result := engine.Validate(context.Background())
	_ = bar.Add(1)
	fmt.Fprintln(cmd.ErrOrStderr())

	minSeverity := severityRank[cfg.MinSeverity]
	filtered := report.New()
	filtered.Conforms = result.Conforms
	for _, r := range result.Results {
		if rank(r.Severity) >= minSeverity {
			filtered.Results = append(filtered.Results, r)
		}
	}

	out := cmd.OutOrStdout()
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, cfg.OutputFormat, filtered); err != nil {
		return err
	}
	if !filtered.Conforms {
		return errNonConformant
	}
	return nil
}

var errNonConformant = fmt.Errorf("validate: data graph does not conform")

func rank(severity rdf.Term) int {
	if severity == nil {
		return severityRank["Violation"]
	}
	switch severity.String() {
	case "<" + sh.Info + ">":
		return severityRank["Info"]
	case "<" + sh.Warning + ">":
		return severityRank["Warning"]
	default:
		return severityRank["Violation"]
	}
}

func writeReport(w io.Writer, format string, r *report.Report) error {
	switch format {
	case "json":
		data, err := report.ToJSON(r)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "rdf":
		g := report.ToGraph(r)
		for _, t := range g.All() {
			fmt.Fprintf(w, "%v %v %v .\n", t.Subject, t.Predicate, t.Object)
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, report.ToText(r))
		return err
	}
}
