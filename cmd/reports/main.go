package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/internal/report"
)

func main() {
	var (
		name      = flag.String("report", "", "report variant to run")
		primary   = flag.String("in", "", "primary input file (CSV or spreadsheet)")
		secondary = flag.String("secondary", "", "secondary input file, for reconciling variants")
		outDir    = flag.String("out", ".", "directory for the output tables")
		workbook  = flag.String("xlsx", "", "also write every output table into one xlsx workbook")
		list      = flag.Bool("list", false, "list the available report variants")
	)
	flag.Parse()

	if *list {
		for _, v := range report.VariantNames() {
			fmt.Println(v)
		}
		return
	}

	if *name == "" || *primary == "" {
		fmt.Fprintln(os.Stderr, "usage: reports -report <variant> -in <file> [-secondary <file>] [-out <dir>]")
		os.Exit(2)
	}

	spec, err := report.Lookup(*name)
	if err != nil {
		fatal(err)
	}

	primaryDS, err := report.LoadFile(*primary)
	if err != nil {
		fatal(err)
	}

	var secondaryDS *model.Dataset
	if spec.Secondary != nil {
		if *secondary == "" {
			fatal(fmt.Errorf("report %s needs a secondary input (%s)", spec.Name, spec.Secondary.Name))
		}
		secondaryDS, err = report.LoadFile(*secondary)
		if err != nil {
			fatal(err)
		}
	}

	start := time.Now()
	result, err := report.Run(spec, primaryDS, secondaryDS, time.Now())
	if err != nil {
		fatal(err)
	}

	outputs, err := report.ExportTables(*outDir, result)
	if err != nil {
		fatal(err)
	}

	if *workbook != "" {
		if _, err := report.ExportWorkbook(*workbook, result); err != nil {
			fatal(err)
		}
		fmt.Printf("💾 Wrote workbook %s\n", *workbook)
	}

	total := 0
	for _, out := range outputs {
		total += out.RecordCount
	}
	fmt.Printf("🏁 Report %s completed: %d tables, %d rows in %v\n",
		spec.Name, len(outputs), total, time.Since(start))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	os.Exit(1)
}
