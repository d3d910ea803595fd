package main

import (
	"fmt"

	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/spf13/cobra"
)

func listCmd(opts *rootOptions, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PLAYER",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := entities.ParseArtifactKind(use)
			if err != nil {
				return err
			}
			client, err := openClient(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer client.Close()

			blobs, err := client.GetArtifactsForPlayer(cmd.Context(), args[0], kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, blob := range blobs {
				fmt.Fprintln(out, string(blob))
			}
			return nil
		},
	}
}
