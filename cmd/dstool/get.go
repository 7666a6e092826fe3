package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

var getLimit int

var getCmd = &cobra.Command{
	Use:   "get <model> [id...]",
	Short: "Fetch records for a model, optionally by one or more ids",
	Long:  "Fetches a whole model, one record by id, or several ids in a single batch get.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		c, err := newConnector(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		var filter *query.Filter
		switch {
		case len(args) > 2:
			ids := make([]interface{}, len(args)-1)
			for i, arg := range args[1:] {
				ids[i] = arg
			}
			filter = &query.Filter{Where: query.Where{"id": map[string]interface{}{"in": ids}}}
		case len(args) == 2:
			filter = &query.Filter{Where: query.Where{"id": args[1]}}
		case getLimit > 0:
			filter = &query.Filter{Limit: getLimit}
		}

		var runErr error
		c.All(ctx, args[0], filter, nil, func(err error, records []entity.Properties) {
			if err != nil {
				runErr = err
				return
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, rec := range records {
				if err := enc.Encode(rec); err != nil {
					runErr = err
					return
				}
			}
			fmt.Fprintf(os.Stderr, "%d record(s)\n", len(records))
		})
		return runErr
	},
}

func init() {
	getCmd.Flags().IntVar(&getLimit, "limit", 0, "Maximum number of records to fetch")
}
