package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ghhjson "github.com/garrisonhh/ghh-json"
)

func newFmtCmd() *cobra.Command {
	var (
		write   bool
		mini    bool
		indent  int
		relaxed bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a JSON document",
		Long: `Reformat a JSON document to stdout.

If no file is provided, reads JSON from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 0 {
				filename = args[0]
			} else if write {
				return fmt.Errorf("-w requires a file argument")
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

			output, err := ghhjson.Serialize(d.Root(), ghhjson.Format{Mini: mini, Indent: indent})
			if err != nil {
				return fmt.Errorf("serialize: %w", err)
			}

			if write {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVarP(&mini, "mini", "m", false, "minify instead of pretty-printing")
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces of indentation per level")
	cmd.Flags().BoolVar(&relaxed, "hujson", false, "accept comments and trailing commas")

	return cmd
}
