package dtos

import "github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"

type PlayerArtifactListResponse struct {
	Player string   `json:"player"`
	Kind   string   `json:"kind"`
	Items  [][]byte `json:"items"`
}

func PlayerArtifactListResponseFromBlobs(
	player string,
	kind entities.ArtifactKind,
	blobs [][]byte,
) PlayerArtifactListResponse {
	if blobs == nil {
		blobs = [][]byte{}
	}
	return PlayerArtifactListResponse{
		Player: player,
		Kind:   string(kind),
		Items:  blobs,
	}
}
