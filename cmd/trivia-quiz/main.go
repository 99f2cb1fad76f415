package main

import (
	"context"
	"fmt"
	"os"

	"trivia-quiz/internal/cli"
	"trivia-quiz/internal/config"
	"trivia-quiz/internal/trivia/sqlite"
)

func main() {
	cfg := config.Load()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()

	app := cli.New(store, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
