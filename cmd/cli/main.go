package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"financial-health/internal/config"
	"financial-health/internal/i18n"
	"financial-health/internal/logging"
	"financial-health/internal/model"
	"financial-health/internal/pipeline"
	"financial-health/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "assess":
		cmdAssess(os.Args[2:])
	case "benchmarks":
		cmdBenchmarks(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli assess --file books.xlsx --industry retail [--config configs/config.yaml] [--out-csv results/forecast.csv] [--out-pdf results/report.pdf] [--language hi]")
	fmt.Println("  cli benchmarks [--config configs/config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - assess accepts .csv and .xlsx (save legacy .xls as .xlsx) and prints the assessment as JSON")
	fmt.Println("  - unknown industries are assessed against the services benchmark")
}

func cmdAssess(args []string) {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to a CSV or Excel financial statement")
	industry := fs.String("industry", string(model.DefaultIndustry), "Industry category")
	name := fs.String("name", "", "Business name printed on the PDF report (default: file name)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outCSV := fs.String("out-csv", "", "Optional path to write the forecast CSV")
	outPDF := fs.String("out-pdf", "", "Optional path to write the PDF report")
	lang := fs.String("language", "en", "Output language (en, hi)")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	cfg := mustLoadConfig(*cfgPath)
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	content, err := os.ReadFile(*filePath)
	if err != nil {
		panic(err)
	}

	p := pipeline.FromConfig(cfg)
	a, out, err := p.AssessFile(context.Background(), filepath.Base(*filePath), content, *industry)
	if err != nil {
		panic(err)
	}
	if len(out.Derived) > 0 {
		fmt.Fprintf(os.Stderr, "derived fields: %v\n", out.Derived)
	}

	language := i18n.Negotiate(*lang)
	var payload any = a
	if language != "en" {
		translated, err := i18n.TranslateJSON(a, language)
		if err != nil {
			panic(err)
		}
		payload = translated
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		panic(err)
	}

	if *outCSV != "" {
		mustMkdir(*outCSV)
		if err := report.WriteForecastCSVFile(*outCSV, a.Forecast); err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d forecast rows to %s\n", len(a.Forecast.RevenueForecast), *outCSV)
	}

	if *outPDF != "" {
		business := model.Business{Name: *name, Industry: a.Industry}
		if business.Name == "" {
			business.Name = strings.TrimSuffix(filepath.Base(*filePath), filepath.Ext(*filePath))
		}
		mustMkdir(*outPDF)
		f, err := os.Create(*outPDF)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := report.NewPDFRenderer(cfg.Report.UnicodeFont).Render(f, business, a, language); err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote report to %s\n", *outPDF)
	}

	fmt.Fprintf(os.Stderr, "Score=%d Rating=%s Risk=%s\n", a.Score, a.Rating, a.RiskLevel)
}

func cmdBenchmarks(args []string) {
	fs := flag.NewFlagSet("benchmarks", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg := mustLoadConfig(*cfgPath)
	fmt.Printf("%-14s %-8s %-8s %-8s %-8s\n", "industry", "margin", "current", "d/e", "inv.t")
	for _, e := range cfg.Benchmarks().All() {
		b := e.Benchmark
		fmt.Printf(
			"%-14s %-8.2f %-8.2f %-8.2f %-8.2f\n",
			e.Industry,
			b.ProfitMargin,
			b.CurrentRatio,
			b.DebtToEquity,
			b.InventoryTurnover,
		)
	}
}

func mustLoadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func mustMkdir(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
}
