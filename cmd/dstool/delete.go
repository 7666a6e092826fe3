package main

import (
	"fmt"

	"github.com/spf13/cobra"

	connector "github.com/grendes-wunder/loopback-connector-google-cloud-datastore"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <model> <id>",
	Short: "Delete a record by id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		c, err := newConnector(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		var runErr error
		c.DestroyAll(ctx, args[0], query.Where{"id": args[1]}, nil, func(err error, result connector.Count) {
			if err != nil {
				runErr = err
				return
			}
			fmt.Printf("deleted %d record(s)\n", result.Count)
		})
		return runErr
	},
}
