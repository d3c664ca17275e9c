package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/de-tools/profit-report/pkg/runtime/terminal"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	cli := terminal.NewCLI(terminal.Options{
		Input:     os.Stdin,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
