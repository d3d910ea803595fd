package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SOC-Training-Tool/SOC-Server/internal/aws/storage"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"

	_ "modernc.org/sqlite"
)

// Store keeps objects and player index records in one SQLite file. It
// satisfies the same contracts as the S3 and DynamoDB adapters and is
// meant for local play and development.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS objects (
	bucket TEXT NOT NULL,
	object_key TEXT NOT NULL,
	data BLOB NOT NULL,
	PRIMARY KEY (bucket, object_key)
);
CREATE TABLE IF NOT EXISTS player_index (
	player TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	victory_points INTEGER NOT NULL,
	position INTEGER NOT NULL,
	board_key TEXT NOT NULL,
	moveset_key TEXT NOT NULL,
	PRIMARY KEY (player, timestamp)
);`

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize store schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO objects (bucket, object_key, data) VALUES (?, ?, ?)
		 ON CONFLICT(bucket, object_key) DO NOTHING`,
		bucket, key, data,
	)
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, key, err)
	}
	return checkInserted(res, fmt.Errorf("%w: %s/%s", storage.ErrObjectExists, bucket, key))
}

func (s *Store) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM objects WHERE bucket = ? AND object_key = ?`, bucket, key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", storage.ErrObjectNotFound, bucket, key)
		}
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

func (s *Store) PutPlayerIndex(ctx context.Context, record entities.PlayerIndex) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO player_index
		 (player, timestamp, victory_points, position, board_key, moveset_key)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player, timestamp) DO NOTHING`,
		record.PlayerName,
		record.TimeStamp,
		record.VictoryPoints,
		record.Position,
		record.BoardKey,
		record.MoveSetKey,
	)
	if err != nil {
		return fmt.Errorf("put player index: %w", err)
	}
	return checkInserted(res, fmt.Errorf("%w: %s@%d", storage.ErrPlayerIndexExists, record.PlayerName, record.TimeStamp))
}

// FetchPlayerIndexes mirrors the DynamoDB projection: when attribute is
// set, every other field of the returned records is zero.
func (s *Store) FetchPlayerIndexes(
	ctx context.Context,
	player string,
	attribute string,
) (
	[]entities.PlayerIndex,
	error,
) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, timestamp, victory_points, position, board_key, moveset_key
		 FROM player_index WHERE player = ?`, player,
	)
	if err != nil {
		return nil, fmt.Errorf("query player index: %w", err)
	}
	defer rows.Close()

	records := []entities.PlayerIndex{}
	for rows.Next() {
		var rec entities.PlayerIndex
		if err := rows.Scan(
			&rec.PlayerName,
			&rec.TimeStamp,
			&rec.VictoryPoints,
			&rec.Position,
			&rec.BoardKey,
			&rec.MoveSetKey,
		); err != nil {
			return nil, fmt.Errorf("scan player index: %w", err)
		}
		records = append(records, project(rec, attribute))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player index: %w", err)
	}
	return records, nil
}

// checkInserted returns conflict when an ON CONFLICT DO NOTHING insert
// wrote no row.
func checkInserted(res sql.Result, conflict error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return conflict
	}
	return nil
}

func project(rec entities.PlayerIndex, attribute string) entities.PlayerIndex {
	var out entities.PlayerIndex
	switch attribute {
	case "":
		return rec
	case entities.PlayerAttribute:
		out.PlayerName = rec.PlayerName
	case entities.TimeStampAttribute:
		out.TimeStamp = rec.TimeStamp
	case entities.VictoryPointsAttribute:
		out.VictoryPoints = rec.VictoryPoints
	case entities.PositionAttribute:
		out.Position = rec.Position
	case entities.BoardKeyAttribute:
		out.BoardKey = rec.BoardKey
	case entities.MoveSetKeyAttribute:
		out.MoveSetKey = rec.MoveSetKey
	}
	return out
}

// openDB opens a SQLite database with WAL mode and a busy timeout.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return db, nil
}
