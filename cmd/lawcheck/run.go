package main

import (
	"errors"
	"io"
	"log"

	"github.com/KasperOmsK/monadfn/internal/suite"
	"github.com/KasperOmsK/monadfn/laws"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

// errLawsFailed makes the process exit non-zero once the report is printed.
var errLawsFailed = errors.New("laws failed")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run law suites, all of them by default",
		Long: `Run draws random samples for every law of the selected suites and
reports the first counterexample of each failing law together with the
seed and sample index that reproduce it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.IntP("samples", "n", 100, "samples per law")
	flags.Uint64P("seed", "s", 0, "random seed, 0 derives one from the clock")
	flags.IntP("bound", "b", suite.DefaultBound, "size bound of generated values")
	flags.Bool("metrics", false, "print the metrics registry after the run")
	for _, name := range []string{"samples", "seed", "bound", "metrics"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = a.cfg.Suites
	}
	suites, err := a.lookup(a.cfg.Bound, names...)
	if err != nil {
		return err
	}

	runner := laws.NewRunner(
		laws.WithSamples(a.cfg.Samples),
		laws.WithSeed(a.cfg.Seed),
	)
	report, err := runner.Run(cmd.Context(), suites...)

	out := cmd.OutOrStdout()
	printReport(out, report)
	if a.cfg.Metrics {
		metrics.WriteOnce(runner.Registry(), out)
	}
	if err != nil {
		return err
	}
	if !report.OK() {
		return errLawsFailed
	}
	return nil
}

func printReport(w io.Writer, r laws.Report) {
	l := log.New(w, "", 0)
	for _, s := range r.Suites {
		status := "ok"
		if len(s.Failures) > 0 {
			status = "FAIL"
		}
		l.Printf("%-4s %-9s %2d passed %2d failed  %s", status, s.Name, s.Passed, len(s.Failures), s.Duration)
		for _, f := range s.Failures {
			l.Printf("     %s", f)
		}
	}
	l.Printf("seed %d, %d samples per law", r.Seed, r.Samples)
}
