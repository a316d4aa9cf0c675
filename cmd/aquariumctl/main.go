// Command aquariumctl runs a single aquarium invocation from the shell, the
// way the serverless runtime would, and prints the framed response.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout, os.Stderr, nil).Execute(); err != nil {
		os.Exit(1)
	}
}
