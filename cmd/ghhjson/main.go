package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ghhjson "github.com/garrisonhh/ghh-json"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ghhjson",
		Short: "Inspect and rewrite JSON documents",
	}

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		var serr *ghhjson.SyntaxError
		if errors.As(err, &serr) {
			fmt.Fprintln(os.Stderr, serr.Detail())
		}
		os.Exit(1)
	}
}

// readSource returns the contents of the file at path, or of stdin
// when path is empty.
func readSource(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// loadSource parses data, accepting the relaxed form with comments and
// trailing commas when relaxed is set.
func loadSource(data []byte, relaxed bool) (*ghhjson.Document, error) {
	if relaxed {
		return ghhjson.LoadHuJSON(data)
	}
	return ghhjson.Load(data)
}
