// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vdbgo/rowset"
	"github.com/vdbgo/rowset/internal/metrics"
)

func newInsertRangeCmd() *cobra.Command {
	var start int64
	var count uint64

	cmd := &cobra.Command{
		Use:   "insert-range",
		Short: "insert a contiguous range of row ids and report the resulting cardinality",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := metrics.NewRecorder(prometheus.DefaultRegisterer, rowset.New())
			defer rec.Release()

			if err := rec.InsertRange(start, count); err != nil {
				log.Error().Err(err).Int64("start", start).Uint64("count", count).Msg("insert-range failed")
				return err
			}

			n, err := rec.Cardinality()
			if err != nil {
				return err
			}
			log.Info().Int64("start", start).Uint64("count", count).Uint64("cardinality", n).Msg("insert-range done")
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&start, "start", "s", 0, "first row id to insert")
	cmd.Flags().Uint64VarP(&count, "count", "n", 1, "number of consecutive row ids to insert")
	return cmd
}
