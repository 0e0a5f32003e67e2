package dataset

import "compress/gzip"
import "os"
import "path/filepath"
import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/jackft/iw/trajstore"

const trajectoryJSON = `[
	{"person_id": 5, "frame": 10, "x": 120, "y": 340},
	{"person_id": 5, "frame": 11, "x": 121, "y": 342},
	{"person_id": 7, "frame": 10, "x": 50, "y": 60}
]`

func writeGzip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil { t.Fatal(err) }
	writer := gzip.NewWriter(file)
	if _, err := writer.Write([]byte(content)); err != nil { t.Fatal(err) }
	if err := writer.Close(); err != nil { t.Fatal(err) }
	if err := file.Close(); err != nil { t.Fatal(err) }
	return path
}

func writePlain(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { t.Fatal(err) }
	return path
}

func TestLoadTrajectories(t *testing.T) {
	want := []trajstore.Observation{
		{EntityID: 5, Frame: 10, X: 120, Y: 340},
		{EntityID: 5, Frame: 11, X: 121, Y: 342},
		{EntityID: 7, Frame: 10, X: 50, Y: 60},
	}

	for _, path := range []string{
		writePlain(t, "trajectory.json", trajectoryJSON),
		writeGzip(t, "trajectory.json.gz", trajectoryJSON),
	} {
		observations, err := LoadTrajectories(path)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff(want, observations); diff != "" {
			t.Fatalf("observations mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestLoadTrajectoriesErrors(t *testing.T) {
	if _, err := LoadTrajectories(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if _, err := LoadTrajectories(writePlain(t, "bad.json", "{not json")); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestLoadMetadata(t *testing.T) {
	const metadataJSON = `[
		{"person_id": 5, "condition": "A", "group_size": 2, "leader": true, "note": null},
		{"person_id": 7, "condition": "B"},
		{"condition": "dropped, no id"}
	]`
	metadata, err := LoadMetadata(writeGzip(t, "meta.json.gz", metadataJSON))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(metadata) != 2 {
		t.Fatalf("expected 2 records, got %d", len(metadata))
	}
	record := metadata[5]
	if record.Attribute("condition") != "A" {
		t.Fatalf("string attribute lost: %q", record.Attribute("condition"))
	}
	if record.Attribute("group_size") != "2" {
		t.Fatalf("numeric attribute must join as %q, got %q", "2", record.Attribute("group_size"))
	}
	if record.Attribute("leader") != "true" {
		t.Fatalf("boolean attribute lost: %q", record.Attribute("leader"))
	}
	if record.GroupKey("condition", "group_size") != "A:2" {
		t.Fatalf("group key mismatch: %q", record.GroupKey("condition", "group_size"))
	}
	if metadata[7].Attribute("group_size") != trajstore.MissingAttribute {
		t.Fatalf("missing attribute must degrade to %q", trajstore.MissingAttribute)
	}
}

func TestLoadEnvironment(t *testing.T) {
	const environmentJSON = `{
		"0": {"closed": true, "points": [{"x": 0, "y": 0}, {"x": 100, "y": 0}, {"x": 100, "y": 50}], "fill": "c1c1c1", "stroke": null},
		"3": {"closed": false, "points": [{"x": 5, "y": 5}, {"x": 10, "y": 10}], "fill": null, "stroke": "000000"}
	}`
	environment, err := LoadEnvironment(writePlain(t, "mural.json", environmentJSON))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	layer := environment["0"]
	if !layer.Closed || len(layer.Points) != 3 {
		t.Fatalf("layer 0 not parsed: %+v", layer)
	}
	if layer.Fill == nil || layer.Fill.R != 0xC1 || layer.Fill.A != 0xFF {
		t.Fatalf("fill color not parsed: %+v", layer.Fill)
	}
	if layer.Stroke != nil {
		t.Fatalf("null stroke must stay nil")
	}
	if environment["3"].Stroke == nil || environment["3"].Stroke.R != 0 {
		t.Fatalf("stroke color not parsed")
	}

	if diff := cmp.Diff([]string{"0", "3"}, environment.LayerOrder()); diff != "" {
		t.Fatalf("layer order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvironmentBadColor(t *testing.T) {
	const badJSON = `{"0": {"closed": true, "points": [{"x": 0, "y": 0}], "fill": "notahex", "stroke": null}}`
	if _, err := LoadEnvironment(writePlain(t, "bad.json", badJSON)); err == nil {
		t.Fatalf("expected an error for a malformed color")
	}
}
