package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ghhjson "github.com/garrisonhh/ghh-json"
)

func newGetCmd() *cobra.Command {
	var (
		mini    bool
		raw     bool
		indent  int
		relaxed bool
	)

	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Extract the value at a path in a JSON document",
		Long: `Extract the value at a path and print it to stdout.

The path is a dot-separated list of segments, applied left to right.
Segments that parse as integers index arrays, with negative values
counting back from the end; all other segments name object members.
The empty path "" selects the whole document.

If no file is provided, reads JSON from stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 1 {
				filename = args[1]
			}

			source, err := readSource(filename)
			if err != nil {
				return err
			}
			d, err := loadSource(source, relaxed)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			defer d.Close()

			v, err := ghhjson.Path(d.Root(), parsePath(args[0])...)
			if err != nil {
				return err
			}

			if raw {
				if s, err := v.Text(); err == nil {
					fmt.Println(s)
					return nil
				}
			}
			output, err := ghhjson.Serialize(v, ghhjson.Format{Mini: mini, Indent: indent})
			if err != nil {
				return fmt.Errorf("serialize: %w", err)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&mini, "mini", "m", false, "minify instead of pretty-printing")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "print string results without quotes")
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces of indentation per level")
	cmd.Flags().BoolVar(&relaxed, "hujson", false, "accept comments and trailing commas")

	return cmd
}

// parsePath splits a dot-separated path into traversal elements,
// treating integer segments as array offsets.
func parsePath(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	elems := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			elems[i] = n
		} else {
			elems[i] = p
		}
	}
	return elems
}
