package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cory-johannsen/cardex/internal/catalog"
)

func main() {
	dataPath := flag.String("data", "", "path to the catalog file")
	format := flag.String("format", "auto", "catalog format: auto, json or yaml")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: catalog-check -data <file> [-format auto|json|yaml]")
		os.Exit(1)
	}

	f, ok := catalog.ParseFormat(*format)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: auto, json, yaml)\n", *format)
		os.Exit(1)
	}

	start := time.Now()
	cat, err := catalog.LoadFromFile(*dataPath, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	stats := cat.Stats()
	fmt.Printf("%d creatures\n", stats.Total)
	for _, stage := range []catalog.Stage{catalog.StageBasic, catalog.StageOne, catalog.StageTwo} {
		fmt.Printf("  %-8s %d\n", stage, stats.ByStage[stage])
	}
	for _, t := range stats.Types() {
		fmt.Printf("  %-8s %d\n", t, stats.ByType[t])
	}
	fmt.Printf("check complete in %s\n", time.Since(start).Round(time.Millisecond))
}
