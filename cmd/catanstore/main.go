package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SOC-Training-Tool/SOC-Server/internal/app/gamestore"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	backendAWS   = "aws"
	backendLocal = "local"
)

type rootOptions struct {
	backend string
	dbPath  string
	profile string
	region  string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "catanstore",
		Short:         "Store and retrieve Catan move sets and boards",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logging.SetLogger(l)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.backend, "backend", backendAWS, "Storage backend: aws or local")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite file for the local backend (default LOCAL_DB_PATH)")
	root.PersistentFlags().StringVar(&opts.profile, "profile", "", "Shared AWS credentials profile (default AWS_PROFILE)")
	root.PersistentFlags().StringVar(&opts.region, "region", "", "AWS region (default AWS_REGION)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(saveCmd(opts))
	root.AddCommand(listCmd(opts, "movesets", "List every move set stored for a player"))
	root.AddCommand(listCmd(opts, "boards", "List every board stored for a player"))
	root.AddCommand(inspectCmd())
	return root
}

// openClient builds the store client selected by the root flags.
func openClient(ctx context.Context, opts *rootOptions) (*gamestore.Client, error) {
	cfg, err := gamestore.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.profile != "" {
		cfg.AwsProfile = opts.profile
	}
	if opts.region != "" {
		cfg.AwsRegion = opts.region
	}

	switch opts.backend {
	case backendAWS:
		return gamestore.NewAWSClient(ctx, cfg)
	case backendLocal:
		path := cfg.LocalDbPath
		if opts.dbPath != "" {
			path = opts.dbPath
		}
		return gamestore.NewLocalClient(path, cfg)
	}
	return nil, fmt.Errorf("unknown backend %q", opts.backend)
}

func main() {
	defer func() { _ = logging.Sync() }()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
