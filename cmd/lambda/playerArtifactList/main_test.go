package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/dtos"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLister struct {
	blobs map[string][][]byte
	err   error
}

func (f *fakeLister) GetArtifactsForPlayer(_ context.Context, player string, kind entities.ArtifactKind) ([][]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blobs[player+"/"+string(kind)], nil
}

func TestMain(m *testing.M) {
	logging.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

func request(player, kind string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"player": player, "kind": kind},
		RequestContext: events.APIGatewayProxyRequestContext{
			Authorizer: map[string]interface{}{
				"jwt": map[string]interface{}{
					"claims": map[string]interface{}{"sub": "user-1"},
				},
			},
		},
	}
}

func TestHandler(t *testing.T) {
	storeClient = &fakeLister{blobs: map[string][][]byte{
		"Alice/moveset": {[]byte("M1")},
	}}

	resp, err := handler(context.Background(), request("Alice", "movesets"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dtos.PlayerArtifactListResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Alice", body.Player)
	assert.Equal(t, "moveset", body.Kind)
	assert.Equal(t, [][]byte{[]byte("M1")}, body.Items)

	resp, err = handler(context.Background(), request("Nobody", "boards"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"player":"Nobody","kind":"board","items":[]}`, resp.Body)
}

func TestHandlerRejects(t *testing.T) {
	storeClient = &fakeLister{}

	unauthorized := request("Alice", "boards")
	unauthorized.RequestContext.Authorizer = nil
	resp, err := handler(context.Background(), unauthorized)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = handler(context.Background(), request("", "boards"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = handler(context.Background(), request("Alice", "dice"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	storeClient = &fakeLister{err: errors.New("throttled")}
	resp, err = handler(context.Background(), request("Alice", "boards"))
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
