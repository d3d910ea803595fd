package entities

// Attribute names shared by the player index table and projections.
const (
	PlayerAttribute        = "Player"
	TimeStampAttribute     = "TimeStamp"
	VictoryPointsAttribute = "VictoryPoints"
	PositionAttribute      = "Position"
	BoardKeyAttribute      = "Board_S3Key"
	MoveSetKeyAttribute    = "MoveSet_S3Key"
)

// PlayerIndex is one row of the player index table. A save with N
// players writes N rows sharing BoardKey and MoveSetKey.
type PlayerIndex struct {
	PlayerName    string `dynamodbav:"Player"`
	TimeStamp     int64  `dynamodbav:"TimeStamp"`
	VictoryPoints int    `dynamodbav:"VictoryPoints"`
	Position      int    `dynamodbav:"Position"`
	BoardKey      string `dynamodbav:"Board_S3Key"`
	MoveSetKey    string `dynamodbav:"MoveSet_S3Key"`
}

// StorageKey returns the object key the record holds for kind.
func (p PlayerIndex) StorageKey(kind ArtifactKind) string {
	if kind == BoardArtifact {
		return p.BoardKey
	}
	return p.MoveSetKey
}

// PlayerContext describes one participant of a save. It is not
// persisted on its own.
type PlayerContext struct {
	PlayerName    string
	Position      int
	VictoryPoints int
}
