package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <model>",
	Short: "Count the records stored under a model",
	Long:  "Counts by fetching the whole kind, which is exactly what the connector's count verb does without a targeted id. Expensive on large kinds.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		c, err := newConnector(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		var runErr error
		c.CountAll(ctx, args[0], nil, nil, func(err error, n int) {
			if err != nil {
				runErr = err
				return
			}
			fmt.Printf("%s: %d record(s)\n", args[0], n)
		})
		return runErr
	},
}
