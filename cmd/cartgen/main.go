// Command cartgen generates partial Cartesian product test cases and their
// complete subsets.
//
// Usage:
//
//	cartgen -out cases -cases 50 -columns 2 -max-values 4 -seed 1
//
// For each case it writes <id>.in, <id>_reduced.in and <id>.ans to the output
// directory, and lists the ids of failed cases in errors.txt.  With -v it also
// prints the column domains and the complete subset of every passed case.  The
// exit status is 1 if any case failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jonlawlor/cartesian"
	"github.com/jonlawlor/cartesian/batch"
	"github.com/jonlawlor/cartesian/casefile"
	"github.com/jonlawlor/cartesian/gen"
)

func main() {
	def := gen.DefaultConfig()
	var (
		out       = flag.String("out", "cases", "output directory")
		cases     = flag.Int("cases", batch.DefaultCases, "number of cases to generate")
		columns   = flag.Int("columns", def.Columns, "number of columns per table")
		maxValues = flag.Int("max-values", def.MaxValues, "maximum number of values per column")
		lo        = flag.Int64("lo", def.Lo, "smallest generated value")
		hi        = flag.Int64("hi", def.Hi, "largest generated value")
		seed      = flag.Int64("seed", 1, "random seed")
		maxRows   = flag.Int("max-rows", batch.DefaultMaxRows, "largest number of distinct rows to search")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
		jsonLogs  = flag.Bool("json", false, "write logs as JSON")
		verbose   = flag.Bool("v", false, "print the complete subset of every passed case")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "cartgen: %v\n", err)
		os.Exit(2)
	}
	logger := batch.NewTextLogger(os.Stderr, level)
	if *jsonLogs {
		logger = batch.NewJSONLogger(os.Stderr, level)
	}

	store, err := casefile.Open(*out)
	if err != nil {
		logger.Error("open output", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := batch.New(
		batch.WithStore(store),
		batch.WithCases(*cases),
		batch.WithConfig(gen.Config{
			Columns:   *columns,
			MaxValues: *maxValues,
			Lo:        *lo,
			Hi:        *hi,
		}),
		batch.WithSeed(*seed),
		batch.WithMaxRows(*maxRows),
		batch.WithLogger(logger),
	)
	rep, err := r.Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if *verbose {
		for _, id := range rep.Passed {
			if err := printCase(store, id); err != nil {
				logger.Error("read case", "case", id, "error", err)
			}
		}
	}
	fmt.Printf("%d passed, %d failed\n", len(rep.Passed), len(rep.Failures))
	for _, f := range rep.Failures {
		fmt.Printf("  %s: %s: %v\n", f.ID, f.Kind, f.Err)
	}
	if len(rep.Failures) > 0 {
		os.Exit(1)
	}
}

// printCase prints the column domains of a case and its complete subset.
func printCase(store *casefile.Store, id string) error {
	c, err := store.ReadCase(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d of %d rows\n", id, c.Minimal.Card(), c.Reduced.Card())
	deg, err := c.Minimal.Deg()
	if err != nil {
		return err
	}
	for j := 0; j < deg; j++ {
		fmt.Printf("  c%d: %v\n", j, c.Minimal.ColumnValues(j))
	}
	fmt.Println(cartesian.PrettyPrint(c.Minimal))
	return nil
}
