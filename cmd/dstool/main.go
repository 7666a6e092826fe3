package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	connector "github.com/grendes-wunder/loopback-connector-google-cloud-datastore"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/datastore/gcd"
)

var (
	configPath string
	projectID  string
	keyFile    string
	namespace  string
)

var rootCmd = &cobra.Command{
	Use:   "dstool",
	Short: "dstool: inspect and maintain connector data in Cloud Datastore",
	Long:  "A maintenance CLI for the Cloud Datastore connector: count, fetch, and delete records by model name.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&projectID, "project", "", "Datastore project id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&keyFile, "keyfile", "", "Service-account key file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "", "Datastore namespace (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
}

// newConnector builds a connector from the config file, environment,
// and flag overrides, in that order of increasing precedence.
func newConnector(ctx context.Context) (*connector.Connector, error) {
	cfg, err := gcd.LoadConfig(configPath)
	if err != nil {
		// A missing project id is recoverable through the flag; file
		// read or parse errors are not.
		if projectID == "" || !errors.Is(err, gcd.ErrMissingProjectID) {
			return nil, err
		}
	}
	if projectID != "" {
		cfg.ProjectID = projectID
	}
	if keyFile != "" {
		cfg.KeyFilename = keyFile
	}
	if namespace != "" {
		cfg.Namespace = namespace
	}

	store, err := gcd.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return connector.New(store), nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
