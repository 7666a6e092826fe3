package main

import (
	"fmt"

	"github.com/spf13/cobra"

	connector "github.com/grendes-wunder/loopback-connector-google-cloud-datastore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the connector version",
	Run: func(cmd *cobra.Command, args []string) {
		info := connector.GetVersionInfo()
		fmt.Printf("dstool v%s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildDate)
	},
}
