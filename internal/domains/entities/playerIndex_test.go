package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtifactKind(t *testing.T) {
	for in, want := range map[string]ArtifactKind{
		"moveset":  MoveSetArtifact,
		"movesets": MoveSetArtifact,
		"board":    BoardArtifact,
		"boards":   BoardArtifact,
	} {
		got, err := ParseArtifactKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseArtifactKind("dice")
	assert.ErrorIs(t, err, ErrUnknownArtifactKind)
}

func TestPlayerIndexStorageKey(t *testing.T) {
	rec := PlayerIndex{MoveSetKey: "moveset-1-a", BoardKey: "board-1-b"}
	assert.Equal(t, "moveset-1-a", rec.StorageKey(MoveSetArtifact))
	assert.Equal(t, "board-1-b", rec.StorageKey(BoardArtifact))
	assert.Equal(t, MoveSetKeyAttribute, MoveSetArtifact.KeyAttribute())
	assert.Equal(t, BoardKeyAttribute, BoardArtifact.KeyAttribute())
}
