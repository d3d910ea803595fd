package entities

import "fmt"

type ArtifactKind string

const (
	MoveSetArtifact ArtifactKind = "moveset"
	BoardArtifact   ArtifactKind = "board"
)

var ErrUnknownArtifactKind = fmt.Errorf("unknown artifact kind")

// ParseArtifactKind accepts the singular and plural forms used by the
// CLI and HTTP routes.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch s {
	case "moveset", "movesets":
		return MoveSetArtifact, nil
	case "board", "boards":
		return BoardArtifact, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArtifactKind, s)
}

// KeyAttribute is the index attribute holding this kind's object key.
func (k ArtifactKind) KeyAttribute() string {
	if k == BoardArtifact {
		return BoardKeyAttribute
	}
	return MoveSetKeyAttribute
}

// KeyPrefix is the storage key prefix for this kind.
func (k ArtifactKind) KeyPrefix() string {
	return string(k)
}
