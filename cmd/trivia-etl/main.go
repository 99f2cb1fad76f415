package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/logger"
	"trivia-quiz/internal/opentdb"
	"trivia-quiz/internal/trivia"
	"trivia-quiz/internal/trivia/sqlite"
)

func main() {
	amount := flag.Int("amount", 10, "number of questions to fetch")
	category := flag.Int("category", 0, "OpenTriviaDB category id (0 = any)")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Errorw("open store failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	client := opentdb.NewClient(cfg.OpenTDBURL, &http.Client{Timeout: 15 * time.Second})
	pipeline := trivia.NewPipeline(client.FetchQuestions, store, log)

	inserted, err := pipeline.Run(context.Background(), *amount, *category)
	if err != nil {
		os.Exit(1)
	}
	fmt.Printf("inserted %d questions into %s\n", inserted, cfg.DBPath)
}
