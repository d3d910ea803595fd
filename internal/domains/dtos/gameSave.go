package dtos

import (
	"time"

	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
)

type PlayerContextRequest struct {
	PlayerName    string `json:"playerName"`
	Position      int    `json:"position"`
	VictoryPoints int    `json:"victoryPoints"`
}

// GameSaveRequest carries the blobs as base64 strings on the wire.
type GameSaveRequest struct {
	Players []PlayerContextRequest `json:"players"`
	MoveSet []byte                 `json:"moveSet"`
	Board   []byte                 `json:"board"`
}

type GameSaveResponse struct {
	MoveSetKey string    `json:"moveSetKey"`
	BoardKey   string    `json:"boardKey"`
	Timestamp  time.Time `json:"timestamp"`
}

func GameSaveRequestToEntities(req GameSaveRequest) []entities.PlayerContext {
	players := make([]entities.PlayerContext, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, entities.PlayerContext{
			PlayerName:    p.PlayerName,
			Position:      p.Position,
			VictoryPoints: p.VictoryPoints,
		})
	}
	return players
}
