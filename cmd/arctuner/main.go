package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/highvelocity/arctuner/internal/infrastructure/cli"
)

func main() {
	opts := cli.Options{
		Verbose:    isVerbose(),
		ConfigPath: os.Getenv("ARCTUNER_CONFIG"),
	}

	root := cli.NewRootCmd(opts)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("ARCTUNER_DEBUG"), "1") || strings.EqualFold(os.Getenv("ARCTUNER_DEBUG"), "true")
}
