// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdbgo/rowset"
)

func newWalkCmd() *cobra.Command {
	var start int64
	var count uint64
	var reverse bool
	var limit int

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "insert a synthetic range and print it back in ascending or descending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rowset.New()
			defer s.Release()

			if err := s.InsertRange(start, count); err != nil {
				return err
			}

			it, err := s.NewIterator(reverse)
			if err != nil {
				return err
			}
			defer it.Release()

			out := cmd.OutOrStdout()
			printed := 0
			for it.Next() {
				if limit > 0 && printed >= limit {
					break
				}
				fmt.Fprintln(out, it.RowID())
				printed++
			}
			log.Info().Int64("start", start).Uint64("count", count).Bool("reverse", reverse).Int("printed", printed).Msg("walk done")
			return nil
		},
	}

	cmd.Flags().Int64VarP(&start, "start", "s", 0, "first row id to insert before walking")
	cmd.Flags().Uint64VarP(&count, "count", "n", 10, "number of consecutive row ids to insert before walking")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "walk in descending order")
	cmd.Flags().IntVarP(&limit, "limit", "m", 0, "stop after printing this many ids (0 = no limit)")
	return cmd
}
