// Package record archives the bot's per-turn decisions as parquet, one file
// per game.
package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// TurnRow is one decision of one game.
type TurnRow struct {
	GameID    string `parquet:"game_id,dict"`
	Player    string `parquet:"player,dict"`
	Turn      int32  `parquet:"turn"`
	PosX      int32  `parquet:"pos_x"`
	PosY      int32  `parquet:"pos_y"`
	Action    string `parquet:"action,dict"`
	Strategy  string `parquet:"strategy,dict"`
	PlaceBomb bool   `parquet:"place_bomb"`
	// Choices is the candidate set the action was drawn from.
	Choices   []string `parquet:"choices"`
	Blocks    int32    `parquet:"blocks"`
	Bombs     int32    `parquet:"bombs"`
	TookMs    int64    `parquet:"took_ms"`
	Fault     string   `parquet:"fault,optional"`
	CreatedNs int64    `parquet:"created_ns"`
}

// Recorder buffers the rows of the current game and writes them on Flush.
type Recorder struct {
	dir string

	mu     sync.Mutex
	gameID string
	rows   []TurnRow
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Begin starts a new game. Rows of an unflushed previous game are dropped.
func (r *Recorder) Begin(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gameID = gameID
	r.rows = r.rows[:0]
}

func (r *Recorder) Record(row TurnRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row.GameID == "" {
		row.GameID = r.gameID
	}
	if row.CreatedNs == 0 {
		row.CreatedNs = time.Now().UnixNano()
	}
	r.rows = append(r.rows, row)
}

// Flush writes the buffered rows to <dir>/turns_<game>.parquet and returns the
// path. Nothing is written when no rows are buffered.
func (r *Recorder) Flush() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return "", nil
	}
	path, err := WriteTurns(r.dir, r.gameID, r.rows)
	if err != nil {
		return "", err
	}
	r.rows = r.rows[:0]
	return path, nil
}

// WriteTurns writes rows atomically through a temp file.
func WriteTurns(outDir, gameID string, rows []TurnRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	finalPath := filepath.Join(outDir, fmt.Sprintf("turns_%s.parquet", gameID))
	tmpPath := finalPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "bot_turn_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return finalPath, nil
}

// ReadTurns loads every row of an archive written by WriteTurns.
func ReadTurns(path string) ([]TurnRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, err
	}

	reader := parquet.NewGenericReader[TurnRow](pf)
	defer reader.Close()

	rows := make([]TurnRow, reader.NumRows())
	read := 0
	for read < len(rows) {
		n, err := reader.Read(rows[read:])
		read += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return rows[:read], nil
}
