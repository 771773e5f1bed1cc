package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var relaxed bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Report memory statistics for a parsed JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 0 {
				filename = args[0]
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

			st := d.Stats()
			fmt.Printf("input bytes: %d\n", len(source))
			fmt.Printf("values:      %d\n", st.Values)
			fmt.Printf("heap blocks: %d\n", st.HeapBlocks)
			fmt.Printf("arena pages: %d\n", st.ArenaPages)
			fmt.Printf("arena bytes: %d\n", st.ArenaBytes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&relaxed, "hujson", false, "accept comments and trailing commas")

	return cmd
}
