// SPDX-License-Identifier: MIT

// Command rowsetctl drives a rowset.Set from the command line: insert a
// range of row ids, walk and print them back, or run a concurrent
// reference-count stress harness against a fixed, pre-populated set.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

func main() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	root := &cobra.Command{
		Use:           "rowsetctl",
		Short:         "exercise the rowset engine from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := zerolog.ParseLevel(level)
			if err != nil {
				return err
			}
			log = log.Level(parsed)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newInsertRangeCmd(), newWalkCmd(), newLoadtestCmd())
	return root
}
