package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed yoga_data.csv
var defaultDataset []byte

// DefaultPath selects the dataset embedded in the binary.
const DefaultPath = "-"

var _ domain.PoseDataset = (*Loader)(nil)

// Loader reads poses from a CSV or YAML file. The format is chosen by file
// extension; CSV files must start with a header row.
type Loader struct {
	path string
}

// NewLoader creates a Loader for path. DefaultPath or an empty path selects
// the embedded dataset.
func NewLoader(path string) Loader {
	return Loader{path: path}
}

// LoadPoses implements domain.PoseDataset.
func (l Loader) LoadPoses(ctx context.Context) ([]domain.PoseRecord, error) {
	if l.path == "" || l.path == DefaultPath {
		return ParseCSV(bytes.NewReader(defaultDataset))
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck

	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".csv":
		return ParseCSV(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return nil, domain.NewDatasetErr(fmt.Sprintf("unsupported dataset format %q", filepath.Ext(l.path)))
	}
}

// ParseCSV reads poses from CSV data with a header row. Columns beyond the
// required ones are ignored.
func ParseCSV(r io.Reader) ([]domain.PoseRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewDatasetErr("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	// strip a UTF-8 BOM left by spreadsheet exports
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if err := domain.ValidateColumns(header); err != nil {
		return nil, err
	}

	var poses []domain.PoseRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", len(poses)+1, err)
		}

		values := make(map[string]string, len(header))
		for i, column := range header {
			values[strings.TrimSpace(column)] = row[i]
		}
		pose, err := domain.PoseRecordFromColumns(values)
		if err != nil {
			return nil, err
		}
		poses = append(poses, pose)
	}
	return poses, nil
}

// ParseYAML reads poses from a YAML sequence of mappings keyed by column name.
func ParseYAML(r io.Reader) ([]domain.PoseRecord, error) {
	var rows []map[string]string
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewDatasetErr("dataset is empty")
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	poses := make([]domain.PoseRecord, 0, len(rows))
	for i, row := range rows {
		pose, err := domain.PoseRecordFromColumns(row)
		if err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", i+1, err)
		}
		poses = append(poses, pose)
	}
	return poses, nil
}

// InitPoseDataset registers the pose dataset loader.
type InitPoseDataset struct {
	Logger *log.Logger `resolve:""`
	Path   string      `config:"DATASET_PATH" default:"-"`
}

// Initialize registers a Loader as domain.PoseDataset.
func (i InitPoseDataset) Initialize(ctx context.Context) (context.Context, error) {
	source := i.Path
	if source == DefaultPath {
		source = "embedded yoga_data.csv"
	}
	i.Logger.Printf("PoseDataset: using %s", source)

	depend.Register[domain.PoseDataset](NewLoader(i.Path))
	return ctx, nil
}
