package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Dataset column names.
const (
	ColumnPose         = "pose"
	ColumnDefinition   = "definition"
	ColumnIntensity    = "intensity"
	ColumnDuration     = "duration"
	ColumnInstructions = "instructions"
	ColumnMuscleGroups = "muscle_groups"
)

// RequiredColumns lists every column a pose dataset must provide.
var RequiredColumns = []string{
	ColumnPose,
	ColumnDefinition,
	ColumnIntensity,
	ColumnDuration,
	ColumnInstructions,
	ColumnMuscleGroups,
}

// PoseRecord is one row of the pose dataset.
type PoseRecord struct {
	Pose         string `yaml:"pose"`
	Definition   string `yaml:"definition"`
	Intensity    string `yaml:"intensity"`
	Duration     string `yaml:"duration"`
	Instructions string `yaml:"instructions"`
	MuscleGroups string `yaml:"muscle_groups"`
}

// PoseRecordFromColumns builds a PoseRecord from a column/value mapping.
// It fails with a DatasetErr when any required column is absent.
func PoseRecordFromColumns(values map[string]string) (PoseRecord, error) {
	if err := ValidateColumns(keys(values)); err != nil {
		return PoseRecord{}, err
	}
	return PoseRecord{
		Pose:         values[ColumnPose],
		Definition:   values[ColumnDefinition],
		Intensity:    values[ColumnIntensity],
		Duration:     values[ColumnDuration],
		Instructions: values[ColumnInstructions],
		MuscleGroups: values[ColumnMuscleGroups],
	}, nil
}

// IndexingText returns the text embedded for this pose. The field order is
// fixed so embeddings are reproducible across restarts.
func (p PoseRecord) IndexingText() string {
	return fmt.Sprintf("%s %s %s", p.Pose, p.Definition, p.MuscleGroups)
}

// ValidateColumns checks that columns contains every required column.
func ValidateColumns(columns []string) error {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[strings.TrimSpace(c)] = struct{}{}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return NewDatasetErr(fmt.Sprintf(
		"dataset must contain the following columns: %s (missing: %s)",
		strings.Join(RequiredColumns, ", "),
		strings.Join(missing, ", "),
	))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PoseCandidate is a pose returned by a nearest-neighbour query.
type PoseCandidate struct {
	Record   PoseRecord
	Distance float64
}

// PoseDataset loads the pose rows the index is built from.
type PoseDataset interface {
	// LoadPoses returns all dataset rows in file order.
	LoadPoses(ctx context.Context) ([]PoseRecord, error)
}

// PoseIndex answers nearest-neighbour queries over embedded poses.
type PoseIndex interface {
	// Nearest returns up to k poses ordered by ascending distance to vector.
	Nearest(ctx context.Context, vector []float64, k int) ([]PoseCandidate, error)
	// Len returns the number of indexed poses.
	Len() int
}
