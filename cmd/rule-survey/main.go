package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"sparse-life/internal/survey"
)

func main() {
	opts := survey.DefaultOptions()
	rules := flag.String("rules", "", "comma separated rule names or rulestrings (default all)")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "generations to run per rule")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed for the starting soup")
	flag.IntVar(&opts.Size, "size", opts.Size, "side of the square soup")
	flag.BoolVar(&opts.Noise, "noise", opts.Noise, "seed with Perlin noise instead of uniform random")
	flag.StringVar(&opts.Pattern, "pattern", opts.Pattern, "pattern stamped at the origin")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "concurrent simulations (default GOMAXPROCS)")
	verbose := flag.Bool("v", false, "log progress")
	flag.Parse()

	if *rules != "" {
		opts.Rules = strings.Split(*rules, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if *verbose {
		log.Printf("surveying %d steps from seed %d (%dx%d soup)", opts.Steps, opts.Seed, opts.Size, opts.Size)
	}
	results, err := survey.Run(ctx, opts)
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	for _, r := range results {
		fmt.Println(r)
	}
	if *verbose {
		log.Printf("surveyed %d rules in %s", len(results), time.Since(start).Round(time.Millisecond))
	}
}
