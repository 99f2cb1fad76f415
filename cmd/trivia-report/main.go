package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/report"
	"trivia-quiz/internal/trivia/sqlite"
)

func main() {
	out := flag.String("out", "difficulty.png", "path for the rendered bar chart")
	flag.Parse()

	cfg := config.Load()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()

	counts, err := report.DifficultyCounts(context.Background(), store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	report.WriteTable(os.Stdout, counts)
	if len(counts) == 0 {
		return
	}

	if err := report.RenderBarChart(*out, counts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println("chart written to", *out)
}
