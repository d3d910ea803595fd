package main

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/SOC-Training-Tool/SOC-Server/internal/app/gamestore"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSaver struct {
	players []entities.PlayerContext
	moveSet []byte
	board   []byte
	err     error
}

func (f *fakeSaver) Save(_ context.Context, players []entities.PlayerContext, moveSet, board []byte) (gamestore.SaveResult, error) {
	f.players, f.moveSet, f.board = players, moveSet, board
	if f.err != nil {
		return gamestore.SaveResult{}, f.err
	}
	return gamestore.SaveResult{MoveSetKey: "moveset-1-a", BoardKey: "board-1-b", Timestamp: time.UnixMilli(1)}, nil
}

func TestHandler(t *testing.T) {
	saver := &fakeSaver{}
	storeClient = saver

	// "TTE=" and "QjE=" are base64 for "M1" and "B1".
	event := []byte(`{
		"players": [
			{"playerName": "Alice", "position": 1, "victoryPoints": 10},
			{"playerName": "Bob", "position": 2}
		],
		"moveSet": "TTE=",
		"board": "QjE="
	}`)
	resp, err := handler(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "moveset-1-a", resp.MoveSetKey)
	assert.Equal(t, "board-1-b", resp.BoardKey)
	assert.Equal(t, []entities.PlayerContext{
		{PlayerName: "Alice", Position: 1, VictoryPoints: 10},
		{PlayerName: "Bob", Position: 2},
	}, saver.players)
	assert.Equal(t, []byte("M1"), saver.moveSet)
	assert.Equal(t, []byte("B1"), saver.board)
}

func TestHandlerRejectsBadInput(t *testing.T) {
	for _, saveErr := range []error{
		gamestore.ErrNoPlayers,
		gamestore.ErrInvalidPlayerName,
		gamestore.ErrDuplicatePlayer,
	} {
		storeClient = &fakeSaver{err: saveErr}
		_, err := handler(context.Background(), []byte(`{"players": []}`))
		assert.ErrorIs(t, err, ErrBadRequest)
		assert.ErrorIs(t, err, saveErr)
	}

	storeClient = &fakeSaver{}
	_, err := handler(context.Background(), []byte(`not json`))
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHandlerStorageFailure(t *testing.T) {
	outage := errors.New("s3 unavailable")
	storeClient = &fakeSaver{err: outage}

	_, err := handler(context.Background(), []byte(`{"players": [{"playerName": "Alice"}]}`))
	assert.ErrorIs(t, err, outage)
	assert.False(t, errors.Is(err, ErrBadRequest))
}

func TestMain(m *testing.M) {
	logging.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}
