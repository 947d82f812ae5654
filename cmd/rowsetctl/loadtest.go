// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vdbgo/rowset"
)

// newLoadtestCmd builds a fixed, immutable set up front and then hammers
// its reference count from many goroutines concurrently, each opening
// an iterator, walking it to completion, and releasing it. The
// reference count is the part of a Set documented as safe for
// concurrent use; the walks only read, because all structural mutation
// happens in one goroutine before the workers start.
func newLoadtestCmd() *cobra.Command {
	var count uint64
	var workers int

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "stress-test concurrent iteration and reference counting over a fixed set",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rowset.New()
			defer s.Release()

			if err := s.InsertRange(0, count); err != nil {
				return err
			}

			want, err := s.Cardinality()
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			for w := 0; w < workers; w++ {
				w := w
				g.Go(func() error {
					return walkOnce(ctx, s, want, w)
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}
			log.Info().Uint64("rows", want).Int("workers", workers).Msg("loadtest passed")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&count, "count", "n", 100000, "number of rows to pre-populate before the stress run")
	cmd.Flags().IntVarP(&workers, "workers", "w", 8, "number of goroutines concurrently iterating the set")
	return cmd
}

func walkOnce(ctx context.Context, s *rowset.Set, want uint64, worker int) error {
	it, err := s.NewIterator(worker%2 == 0)
	if err != nil {
		return fmt.Errorf("worker %d: new iterator: %w", worker, err)
	}
	defer it.Release()

	var seen uint64
	for it.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		seen++
	}
	if seen != want {
		return fmt.Errorf("worker %d: saw %d rows, want %d", worker, seen, want)
	}
	return nil
}
