// dataset reads the files produced by the experiment preparation
// pipeline: gzipped JSON trajectory records, per-video metadata records,
// and environment shape layers for the background. Files ending in .gz
// are decompressed transparently.
package dataset

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jackft/iw/trajstore"
)

// Reads trajectory observations from a JSON array of
// {"person_id", "frame", "x", "y"} records, preserving file order. The
// pipeline emits records frame-sorted per entity, which the trajectory
// store relies on (see [trajstore.New]).
func LoadTrajectories(path string) ([]trajstore.Observation, error) {
	data, err := readMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("read trajectories: %w", err)
	}

	var records []struct {
		PersonID int     `json:"person_id"`
		Frame    int     `json:"frame"`
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse trajectories %s: %w", path, err)
	}

	observations := make([]trajstore.Observation, len(records))
	for i, record := range records {
		observations[i] = trajstore.Observation{
			EntityID: record.PersonID,
			Frame:    record.Frame,
			X:        record.X,
			Y:        record.Y,
		}
	}
	return observations, nil
}

// Reads entity metadata from a JSON array of records. Each record must
// carry a "person_id" field; every other field becomes an attribute.
// Attribute values may be strings, numbers, booleans or null (stored as
// the string "null"); records with a missing or non-numeric person_id
// are skipped rather than failing the load.
func LoadMetadata(path string) (map[int]trajstore.Metadata, error) {
	data, err := readMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	metadata := make(map[int]trajstore.Metadata, len(records))
	for _, record := range records {
		id, found := record["person_id"].(float64)
		if !found { continue }
		attributes := make(trajstore.Metadata, len(record))
		for name, raw := range record {
			if name == "person_id" { continue }
			attributes[name] = toValue(raw)
		}
		metadata[int(id)] = attributes
	}
	return metadata, nil
}

func toValue(raw any) trajstore.Value {
	switch value := raw.(type) {
	case string:
		return trajstore.String(value)
	case float64:
		return trajstore.Number(value)
	case bool:
		return trajstore.Bool(value)
	case nil:
		return trajstore.String("null")
	default: // nested structure; keep something joinable
		return trajstore.String(fmt.Sprint(value))
	}
}

func readMaybeGzip(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil { return nil, err }
		defer zr.Close()
		reader = zr
	}
	return io.ReadAll(reader)
}
