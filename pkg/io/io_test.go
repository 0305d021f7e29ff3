package io

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/buildinfo"
	"github.com/matzehuels/antennas/pkg/graph"
)

func sampleGrid(t *testing.T) (antenna.Grid, *graph.Graph) {
	t.Helper()
	grid, err := antenna.ParseRows([]string{"A.B", ".A.", "C.."})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	g, err := graph.FromGrid(grid)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	return grid, g
}

func TestReportRoundTrip(t *testing.T) {
	grid, g := sampleGrid(t)
	rep := NewReport(grid, g, grid.Effects(false))

	if rep.RunID == "" {
		t.Error("report should carry a run id")
	}
	if rep.Generator != buildinfo.UserAgent() {
		t.Errorf("generator = %q, want %q", rep.Generator, buildinfo.UserAgent())
	}
	if len(rep.Vertices) != 4 || len(rep.Edges) != 2 || len(rep.Effects) != 2 {
		t.Fatalf("report sizes: %d vertices, %d edges, %d effects", len(rep.Vertices), len(rep.Edges), len(rep.Effects))
	}

	var buf bytes.Buffer
	if err := WriteJSON(rep, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"frequency": "A"`) {
		t.Errorf("frequencies should encode as characters:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.RunID != rep.RunID || got.Width != 3 || got.Height != 3 {
		t.Errorf("header mismatch: %+v", got)
	}

	rebuilt, err := got.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if rebuilt.NumVertices() != g.NumVertices() || rebuilt.NumEdges() != g.NumEdges() {
		t.Errorf("rebuilt graph has %d vertices, %d edges", rebuilt.NumVertices(), rebuilt.NumEdges())
	}
}

func TestExportImportJSON(t *testing.T) {
	grid, g := sampleGrid(t)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ExportJSON(NewReport(grid, g, nil), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	rep, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(rep.Antennas()) != 4 {
		t.Errorf("Antennas() = %v", rep.Antennas())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of a missing file should fail")
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"vertices": [`},
		{"bad id", `{"vertices": [{"id": 3, "frequency": "A", "x": 0, "y": 0}]}`},
		{"bad edge", `{"vertices": [{"id": 0, "frequency": "A", "x": 0, "y": 0}], "edges": [{"from": 0, "to": 9}]}`},
		{"bad effect", `{"vertices": [], "effects": [{"x": 1, "y": 1, "source": 0, "partner": 1}]}`},
		{"bad frequency", `{"vertices": [{"id": 0, "frequency": "AB", "x": 0, "y": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.json)); err == nil {
				t.Errorf("ReadJSON(%s) should fail", tt.json)
			}
		})
	}
}

func TestReportGraphInconsistent(t *testing.T) {
	rep := &Report{
		Vertices: []Vertex{{ID: 0, Frequency: 'A'}, {ID: 1, Frequency: 'B', X: 1}},
		Edges:    []graph.Edge{{From: 0, To: 1}},
	}
	if _, err := rep.Graph(); !errors.Is(err, ErrInvalidReport) {
		t.Errorf("Graph() error = %v, want ErrInvalidReport", err)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	grid, _ := sampleGrid(t)
	effects := grid.Effects(false)

	var buf bytes.Buffer
	if err := WriteBinary(&buf, grid.Antennas, effects); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	d, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if len(d.Antennas) != len(grid.Antennas) {
		t.Fatalf("got %d antennas, want %d", len(d.Antennas), len(grid.Antennas))
	}
	for i, a := range grid.Antennas {
		if d.Antennas[i] != a {
			t.Errorf("antenna %d = %v, want %v", i, d.Antennas[i], a)
		}
	}
	if len(d.Effects) != len(effects) || d.Effects[0] != effects[0] {
		t.Errorf("effects = %v, want %v", d.Effects, effects)
	}
}

func TestBinaryFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bin")
	if err := ExportBinary(path, nil, nil); err != nil {
		t.Fatalf("ExportBinary: %v", err)
	}
	d, err := ImportBinary(path)
	if err != nil {
		t.Fatalf("ImportBinary: %v", err)
	}
	if len(d.Antennas) != 0 || len(d.Effects) != 0 {
		t.Errorf("empty dump decoded as %+v", d)
	}
}

func TestReadBinaryGarbage(t *testing.T) {
	_, err := ReadBinary(strings.NewReader("definitely not bson"))
	if !errors.Is(err, ErrBinaryFormat) {
		t.Errorf("ReadBinary error = %v, want ErrBinaryFormat", err)
	}
}

func TestWriteMatrix(t *testing.T) {
	antennas := []antenna.Antenna{antenna.New('A', 1, 1), antenna.New('A', 2, 2)}
	effects := antenna.Effects(antennas)

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, antennas, effects); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	want := "# . . .\n" +
		". A . .\n" +
		". . A .\n" +
		". . . #\n"
	if buf.String() != want {
		t.Errorf("WriteMatrix =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteMatrixAntennaWinsAndNegativeDropped(t *testing.T) {
	antennas := []antenna.Antenna{antenna.New('x', 0, 0), antenna.New('x', 1, 0)}
	effects := []antenna.Effect{
		{Position: antenna.Position{X: 1, Y: 0}},
		{Position: antenna.Position{X: -1, Y: 0}},
	}

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, antennas, effects); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	if got := buf.String(); got != "x x\n" {
		t.Errorf("WriteMatrix = %q, want %q", got, "x x\n")
	}
}

func TestWriteMatrixEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatrix(&buf, nil, nil); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty input should produce no output, got %q", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")

	if err := writeFile(filepath.Join(dir, "ok.txt"), func(w io.Writer) error {
		_, err := io.WriteString(w, "x")
		return err
	}); err != nil {
		t.Errorf("writeFile() error: %v", err)
	}
	if err := writeFile(filepath.Join(dir, "bad.txt"), func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("writer error = %v, want %v", err, boom)
	}
	if err := writeFile(filepath.Join(dir, "missing", "x.txt"), func(io.Writer) error { return nil }); err == nil {
		t.Error("writeFile() into a missing directory should fail")
	}

	grid, g := sampleGrid(t)
	for name, export := range map[string]func(string) error{
		"json":   func(p string) error { return ExportJSON(NewReport(grid, g, nil), p) },
		"binary": func(p string) error { return ExportBinary(p, grid.Antennas, nil) },
		"matrix": func(p string) error { return ExportMatrix(p, grid.Antennas, nil) },
	} {
		if err := export(filepath.Join(dir, "missing", name)); err == nil {
			t.Errorf("%s export into a missing directory should fail", name)
		}
	}
}
