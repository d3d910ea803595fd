package main

import (
	"fmt"
	"time"

	"github.com/SOC-Training-Tool/SOC-Server/pkg/utils"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect KEY",
		Short: "Show the artifact kind and creation time encoded in a storage key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, createdAt, err := utils.ParseStorageKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kind    %s\ncreated %s\n",
				prefix,
				createdAt.UTC().Format(time.RFC3339Nano),
			)
			return nil
		},
	}
}
