package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SOC-Training-Tool/SOC-Server/internal/app/gamestore"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/dtos"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

type gameSaver interface {
	Save(ctx context.Context, players []entities.PlayerContext, moveSet, board []byte) (gamestore.SaveResult, error)
}

var storeClient gameSaver

// ErrBadRequest marks failures caused by the event itself. Callers
// should not retry them.
var ErrBadRequest = errors.New("bad request")

func handler(ctx context.Context, event json.RawMessage) (dtos.GameSaveResponse, error) {
	var req dtos.GameSaveRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return dtos.GameSaveResponse{}, fmt.Errorf("%w: failed to unmarshal request: %w", ErrBadRequest, err)
	}

	result, err := storeClient.Save(ctx, dtos.GameSaveRequestToEntities(req), req.MoveSet, req.Board)
	if err != nil {
		if errors.Is(err, gamestore.ErrInvalidSave) {
			return dtos.GameSaveResponse{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		logging.Error("Failed to save game", zap.Error(err))
		return dtos.GameSaveResponse{}, fmt.Errorf("failed to save game: %w", err)
	}

	return dtos.GameSaveResponse{
		MoveSetKey: result.MoveSetKey,
		BoardKey:   result.BoardKey,
		Timestamp:  result.Timestamp,
	}, nil
}

func main() {
	cfg, err := gamestore.LoadConfig()
	if err != nil {
		logging.Fatal("Failed to load config", zap.Error(err))
	}
	client, err := gamestore.NewAWSClient(context.Background(), cfg)
	if err != nil {
		logging.Fatal("Failed to create game store client", zap.Error(err))
	}
	storeClient = client
	lambda.Start(handler)
}
