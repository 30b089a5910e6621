package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"Buildcalc/internal/calc/importer"
	"Buildcalc/internal/calc/sizing"
	"Buildcalc/internal/calc/tables"
)

func lookup(tablesDir, name string) (sizing.Table, error) {
	set, err := tables.Load(tablesDir)
	if err != nil {
		return sizing.Table{}, err
	}
	t, ok := set.Get(name)
	if !ok {
		return sizing.Table{}, fmt.Errorf("unknown table %q (have %v)", name, set.Names())
	}
	return t, nil
}

func runTables(out io.Writer, tablesDir string) error {
	set, err := tables.Load(tablesDir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tSPAN\tCAPACITY\tSIZES")
	for _, s := range set.Summaries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.Name, s.Title, s.SpanUnit, s.CapacityUnit, s.Sizes)
	}
	return tw.Flush()
}

func runSize(out io.Writer, tablesDir, name string, span, capacity float64) error {
	t, err := lookup(tablesDir, name)
	if err != nil {
		return err
	}

	sel, err := sizing.FindAdequateSizes(t, sizing.Query{RequiredCapacity: capacity, RequiredSpan: span})
	if errors.Is(err, sizing.ErrNoAdequateSize) {
		fmt.Fprintf(out, "No size in %s carries %g %s over %g %s.\n", t.Name, capacity, t.CapacityUnit, span, t.SpanUnit)
		return nil
	}
	if err != nil {
		return err
	}

	rec := sel.Recommended()
	fmt.Fprintf(out, "Recommended: %s (%d%% utilized)\n\n", rec.Size, rec.UtilizationPercent)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SIZE\tCAPACITY (%s)\tUTILIZATION\n", t.CapacityUnit)
	for opt := range sel.All() {
		fmt.Fprintf(tw, "%s\t%.1f\t%d%%\n", opt.Size, opt.InterpolatedCapacity, opt.UtilizationPercent)
	}
	return tw.Flush()
}

func runBatch(out io.Writer, tablesDir, name, input, output string) error {
	t, err := lookup(tablesDir, name)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	rows, err := importer.ReadRows(in)
	if err != nil {
		return err
	}
	batch := importer.Size(t, rows)

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := importer.WriteResults(f, batch); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sized %d of %d rows, results written to %s\n", batch.Sized, batch.Count, output)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tLABEL\tSPAN\tREQUIRED\tRESULT")
	for _, r := range batch.Results {
		result := r.Err
		switch r.Status {
		case sizing.StatusAdequate:
			result = fmt.Sprintf("%s (%d%%)", r.Recommended, r.Utilization)
		case sizing.StatusNoAdequateSize:
			result = "no adequate size"
		}
		fmt.Fprintf(tw, "%d\t%s\t%g\t%g\t%s\n", r.Line, r.Label, r.Span, r.RequiredCapacity, result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSized %d of %d rows\n", batch.Sized, batch.Count)
	return nil
}
