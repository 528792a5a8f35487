// Command gendata writes a synthetic weather CSV for demos and test
// fixtures. Output is deterministic for a fixed seed.
//
// Usage:
//
//	go run ./cmd/gendata -out data/weather.csv -days 7 -start 2021-07-05 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/weather.csv", "output CSV path")
	days := flag.Int("days", 7, "number of consecutive days to generate")
	start := flag.String("start", "2021-07-05", "first date (ISO-8601)")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *days <= 0 {
		return fmt.Errorf("-days must be positive, got %d", *days)
	}
	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		return fmt.Errorf("invalid -start date: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "min", "max"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < *days; i++ {
		date := startDate.AddDate(0, 0, i).Format("2006-01-02")
		// Plausible midsummer Fahrenheit readings with a guaranteed spread.
		low := 30 + rng.Intn(30)
		high := low + 15 + rng.Intn(25)
		row := []string{date, strconv.Itoa(low), strconv.Itoa(high)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", *out, err)
	}

	log.Printf("wrote %d days to %s", *days, *out)
	return nil
}
