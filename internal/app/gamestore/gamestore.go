package gamestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SOC-Training-Tool/SOC-Server/internal/aws/storage"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/logging"
	"github.com/SOC-Training-Tool/SOC-Server/pkg/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrInvalidSave wraps every rejection of a save's input, so callers can
// tell bad requests apart from storage failures.
var ErrInvalidSave = errors.New("invalid save request")

var (
	ErrNoPlayers         = fmt.Errorf("%w: at least one player is required", ErrInvalidSave)
	ErrInvalidPlayerName = fmt.Errorf("%w: player name must not be empty", ErrInvalidSave)
	ErrDuplicatePlayer   = fmt.Errorf("%w: player listed more than once", ErrInvalidSave)
)

// maxIndexAttempts bounds how many successive timestamps are tried for one
// player record when earlier saves already hold the same millisecond.
const maxIndexAttempts = 16

type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, data []byte) error
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

type IndexStore interface {
	PutPlayerIndex(ctx context.Context, record entities.PlayerIndex) error
	FetchPlayerIndexes(ctx context.Context, player string, attribute string) ([]entities.PlayerIndex, error)
}

type SaveResult struct {
	MoveSetKey string
	BoardKey   string
	Timestamp  time.Time
}

// Client stores game artifacts and indexes them by player name.
type Client struct {
	objects ObjectStore
	index   IndexStore
	cfg     Config
	tracer  trace.Tracer
	closer  io.Closer

	now    func() time.Time
	newKey func(prefix string) string
}

func NewClient(objects ObjectStore, index IndexStore, cfg Config) *Client {
	return &Client{
		objects: objects,
		index:   index,
		cfg:     cfg,
		tracer:  otel.Tracer("github.com/SOC-Training-Tool/SOC-Server/internal/app/gamestore"),
		now:     time.Now,
		newKey:  utils.GenerateStorageKey,
	}
}

// Close releases the backing store when it holds local resources.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

/*
Save stores both blobs and writes one index record per player.

Objects are written before any index record, so a record never points at
an object that was not written. A failure part way leaves the objects
already written in place.
*/
func (c *Client) Save(
	ctx context.Context,
	players []entities.PlayerContext,
	moveSet []byte,
	board []byte,
) (
	SaveResult,
	error,
) {
	ctx, span := c.tracer.Start(ctx, "gamestore.Save",
		trace.WithAttributes(attribute.Int("players", len(players))),
	)
	defer span.End()

	result, err := c.save(ctx, players, moveSet, board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SaveResult{}, err
	}
	span.SetAttributes(
		attribute.String("moveset_key", result.MoveSetKey),
		attribute.String("board_key", result.BoardKey),
	)
	return result, nil
}

func (c *Client) save(
	ctx context.Context,
	players []entities.PlayerContext,
	moveSet []byte,
	board []byte,
) (
	SaveResult,
	error,
) {
	if err := validatePlayers(players); err != nil {
		return SaveResult{}, err
	}

	moveSetKey := c.newKey(entities.MoveSetArtifact.KeyPrefix())
	boardKey := c.newKey(entities.BoardArtifact.KeyPrefix())

	if err := c.objects.PutObject(ctx, c.cfg.MoveSetBucket, moveSetKey, moveSet); err != nil {
		return SaveResult{}, fmt.Errorf("failed to store move set: %w", err)
	}
	if err := c.objects.PutObject(ctx, c.cfg.BoardBucket, boardKey, board); err != nil {
		return SaveResult{}, fmt.Errorf("failed to store board: %w", err)
	}

	now := c.now()
	for _, player := range players {
		err := c.putPlayerIndex(ctx, entities.PlayerIndex{
			PlayerName:    player.PlayerName,
			TimeStamp:     now.UnixMilli(),
			VictoryPoints: player.VictoryPoints,
			Position:      player.Position,
			BoardKey:      boardKey,
			MoveSetKey:    moveSetKey,
		})
		if err != nil {
			return SaveResult{}, fmt.Errorf("failed to index player %q: %w", player.PlayerName, err)
		}
	}

	logging.Info("game saved",
		zap.Int("players", len(players)),
		zap.String("moveset_key", moveSetKey),
		zap.String("board_key", boardKey),
	)
	return SaveResult{
		MoveSetKey: moveSetKey,
		BoardKey:   boardKey,
		Timestamp:  time.UnixMilli(now.UnixMilli()),
	}, nil
}

// putPlayerIndex inserts record, moving its timestamp forward one
// millisecond at a time while another save already holds that sort key.
func (c *Client) putPlayerIndex(ctx context.Context, record entities.PlayerIndex) error {
	var err error
	for attempt := 0; attempt < maxIndexAttempts; attempt++ {
		err = c.index.PutPlayerIndex(ctx, record)
		if !errors.Is(err, storage.ErrPlayerIndexExists) {
			return err
		}
		logging.Debug("player index timestamp taken",
			zap.String("player", record.PlayerName),
			zap.Int64("timestamp", record.TimeStamp),
		)
		record.TimeStamp++
	}
	return err
}

func validatePlayers(players []entities.PlayerContext) error {
	if len(players) == 0 {
		return ErrNoPlayers
	}
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if p.PlayerName == "" {
			return ErrInvalidPlayerName
		}
		if _, dup := seen[p.PlayerName]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.PlayerName)
		}
		seen[p.PlayerName] = struct{}{}
	}
	return nil
}

func (c *Client) GetMoveSetsForPlayer(ctx context.Context, player string) ([][]byte, error) {
	return c.GetArtifactsForPlayer(ctx, player, entities.MoveSetArtifact)
}

func (c *Client) GetBoardsForPlayer(ctx context.Context, player string) ([][]byte, error) {
	return c.GetArtifactsForPlayer(ctx, player, entities.BoardArtifact)
}

// GetArtifactsForPlayer returns the contents of every kind object indexed
// for player. Objects that cannot be fetched are logged and left out, so
// the result may be shorter than the number of index records.
func (c *Client) GetArtifactsForPlayer(
	ctx context.Context,
	player string,
	kind entities.ArtifactKind,
) (
	[][]byte,
	error,
) {
	ctx, span := c.tracer.Start(ctx, "gamestore.GetArtifactsForPlayer",
		trace.WithAttributes(
			attribute.String("player", player),
			attribute.String("kind", string(kind)),
		),
	)
	defer span.End()

	records, err := c.index.FetchPlayerIndexes(ctx, player, kind.KeyAttribute())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to fetch player index: %w", err)
	}

	bucket := c.bucketFor(kind)
	blobs := make([][]byte, 0, len(records))
	skipped := 0
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := record.StorageKey(kind)
		if key == "" {
			skipped++
			logging.Warn("index record without storage key",
				zap.String("player", player),
				zap.String("kind", string(kind)),
			)
			continue
		}
		data, err := c.objects.GetObject(ctx, bucket, key)
		if err != nil {
			skipped++
			logging.Error("failed to fetch game artifact",
				zap.String("player", player),
				zap.String("bucket", bucket),
				zap.String("key", key),
				zap.Error(err),
			)
			continue
		}
		blobs = append(blobs, data)
	}
	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("skipped", skipped),
	)
	return blobs, nil
}

func (c *Client) bucketFor(kind entities.ArtifactKind) string {
	if kind == entities.BoardArtifact {
		return c.cfg.BoardBucket
	}
	return c.cfg.MoveSetBucket
}
