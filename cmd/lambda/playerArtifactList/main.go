package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SOC-Training-Tool/SOC-Server/internal/app/gamestore"
	"github.com/SOC-Training-Tool/SOC-Server/internal/aws/auth"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/dtos"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

type artifactLister interface {
	GetArtifactsForPlayer(ctx context.Context, player string, kind entities.ArtifactKind) ([][]byte, error)
}

var storeClient artifactLister

// handler serves GET /players/{player}/{kind}.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if _, err := auth.CallerId(event.RequestContext.Authorizer); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized}, nil
	}

	player := event.PathParameters["player"]
	if player == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}
	kind, err := entities.ParseArtifactKind(event.PathParameters["kind"])
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
	}

	blobs, err := storeClient.GetArtifactsForPlayer(ctx, player, kind)
	if err != nil {
		logging.Error("Failed to list player artifacts", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to list player artifacts: %w", err)
	}

	respJson, err := json.Marshal(dtos.PlayerArtifactListResponseFromBlobs(player, kind, blobs))
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(respJson),
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
