package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Pick up GH_TOKEN/GH_HOST from a local .env so they reach the gh
	// subprocess. A missing file is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
