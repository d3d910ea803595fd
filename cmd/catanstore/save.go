package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/spf13/cobra"
)

func saveCmd(opts *rootOptions) *cobra.Command {
	var (
		playerSpecs []string
		moveSetPath string
		boardPath   string
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store a move set and board and index them for each player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			players, err := parsePlayers(playerSpecs)
			if err != nil {
				return err
			}
			moveSet, err := os.ReadFile(moveSetPath)
			if err != nil {
				return fmt.Errorf("read move set: %w", err)
			}
			board, err := os.ReadFile(boardPath)
			if err != nil {
				return fmt.Errorf("read board: %w", err)
			}

			client, err := openClient(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Save(cmd.Context(), players, moveSet, board)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moveset %s\nboard   %s\nsaved   %s\n",
				result.MoveSetKey,
				result.BoardKey,
				result.Timestamp.UTC().Format(time.RFC3339),
			)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&playerSpecs, "player", "p", nil, "Player as name:position[:victoryPoints], repeatable")
	cmd.Flags().StringVar(&moveSetPath, "moveset", "", "Path to the serialized move set")
	cmd.Flags().StringVar(&boardPath, "board", "", "Path to the serialized board")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("moveset")
	_ = cmd.MarkFlagRequired("board")
	return cmd
}

// parsePlayers reads name:position[:victoryPoints] specs. Victory points
// default to 0.
func parsePlayers(specs []string) ([]entities.PlayerContext, error) {
	players := make([]entities.PlayerContext, 0, len(specs))
	for _, raw := range specs {
		parts := strings.Split(raw, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid player %q: want name:position[:victoryPoints]", raw)
		}
		position, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid position in %q: %w", raw, err)
		}
		player := entities.PlayerContext{PlayerName: parts[0], Position: position}
		if len(parts) == 3 {
			player.VictoryPoints, err = strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid victory points in %q: %w", raw, err)
			}
		}
		players = append(players, player)
	}
	return players, nil
}
