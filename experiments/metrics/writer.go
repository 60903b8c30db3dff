package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentConfig struct {
	ID        int
	Strategy  string
	Ply       int
	Evaluator string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID seated at player 1
	Agent2 int // AgentConfig.ID seated at player 2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type gameRow struct {
	ID             int32  `parquet:"id"`
	Agent1         int32  `parquet:"agent1"`
	Agent2         int32  `parquet:"agent2"`
	StartingPlayer int32  `parquet:"starting_player"`
	Winner         int32  `parquet:"winner"`
	Banked1        int32  `parquet:"banked1"`
	Banked2        int32  `parquet:"banked2"`
	StartTimeMs    int64  `parquet:"start_time_ms"`
	DurationNs     int64  `parquet:"duration_ns"`
	TotalMoves     int32  `parquet:"total_moves"`
	Format         string `parquet:"format,dict"`
}

type moveRow struct {
	Game       int32   `parquet:"game"`
	Step       int32   `parquet:"step"`
	Player     int32   `parquet:"player"`
	Move       int32   `parquet:"move"`
	ExtraTurn  bool    `parquet:"extra_turn"`
	Strategy   string  `parquet:"strategy,dict"`
	Depth      int32   `parquet:"depth"`
	DurationNs int64   `parquet:"duration_ns"`
	Nodes      int64   `parquet:"nodes"`
	Leaves     int64   `parquet:"leaves"`
	Prunes     int64   `parquet:"prunes"`
	Score      float64 `parquet:"score"` // NaN for human and random moves
}

const recordFormat = "mancala_v1"

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "strategy", "ply", "evaluator"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Ply),
			config.Evaluator,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([]gameRow, len(records))
	for i, record := range records {
		rows[i] = gameRow{
			ID:             int32(record.ID),
			Agent1:         int32(record.Agent1),
			Agent2:         int32(record.Agent2),
			StartingPlayer: int32(record.StartingPlayer),
			Winner:         int32(record.Winner),
			Banked1:        int32(record.Banked[0]),
			Banked2:        int32(record.Banked[1]),
			StartTimeMs:    record.StartTime.UnixMilli(),
			DurationNs:     int64(record.Duration),
			TotalMoves:     int32(record.TotalMoves),
			Format:         recordFormat,
		}
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, len(records))
	for i, record := range records {
		rows[i] = moveRow{
			Game:       int32(record.Game),
			Step:       int32(record.Step),
			Player:     int32(record.Player),
			Move:       int32(record.Move),
			ExtraTurn:  record.ExtraTurn,
			Strategy:   record.Strategy,
			Depth:      int32(record.Depth),
			DurationNs: int64(record.Duration),
			Nodes:      int64(record.Nodes),
			Leaves:     int64(record.Leaves),
			Prunes:     int64(record.Prunes),
			Score:      record.Score,
		}
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows)
}

// writeParquet writes to a temp file and renames it so readers never see a
// half-written file.
func writeParquet[T any](outPath string, rows []T) error {
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", recordFormat),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
