package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mashaer-ai/mashaer/internal/cli"
)

func main() {
	// Best effort: a missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
