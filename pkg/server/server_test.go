package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/buildinfo"
	"github.com/matzehuels/antennas/pkg/cache"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/pipeline"
)

func newTestServer(t *testing.T, mutate ...func(*Config)) *Server {
	t.Helper()
	grid, err := antenna.ParseRows([]string{"A.B", ".A.", "C.."})
	require.NoError(t, err)
	g, err := graph.FromGrid(grid)
	require.NoError(t, err)

	cfg := Config{Grid: grid, Graph: g, GridHash: "test"}
	for _, m := range mutate {
		m(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestNew_RequiresGraph(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoGraph)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.Equal(t, buildinfo.UserAgent(), rec.Header().Get("Server"))
}

func TestSummary(t *testing.T) {
	rec := get(t, newTestServer(t), "/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.EqualValues(t, 4, body["vertices"])
	assert.EqualValues(t, 2, body["edges"])
	assert.EqualValues(t, 3, body["components"])
	assert.EqualValues(t, 3, body["width"])
	assert.Equal(t, []any{"A", "B", "C"}, body["frequencies"])
}

func TestVertices(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		target string
		status int
		count  int
	}{
		{"/vertices", http.StatusOK, 4},
		{"/vertices?limit=2", http.StatusOK, 2},
		{"/vertices?frequency=A", http.StatusOK, 2},
		{"/vertices?frequency=A&limit=1", http.StatusOK, 1},
		{"/vertices?frequency=Z", http.StatusOK, 0},
		{"/vertices?frequency=AB", http.StatusBadRequest, 0},
		{"/vertices?limit=0", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusOK {
				assert.EqualValues(t, tt.count, decode(t, rec)["count"])
			}
		})
	}
}

func TestVertex(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/vertices/0/0")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	neighbors := body["neighbors"].([]any)
	require.Len(t, neighbors, 1)
	assert.EqualValues(t, 1, neighbors[0].(map[string]any)["x"])

	rec = get(t, s, "/vertices/1/0")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VERTEX_NOT_FOUND", decode(t, rec)["code"])

	rec = get(t, s, "/vertices/a/0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_COORDINATE", decode(t, rec)["code"])
}

func TestTraverse(t *testing.T) {
	s := newTestServer(t)

	for _, algo := range []string{"dfs", "bfs"} {
		rec := get(t, s, "/traverse/"+algo+"?from=0,0")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.EqualValues(t, 2, body["count"])
		order := body["order"].([]any)
		assert.EqualValues(t, 1, order[1].(map[string]any)["depth"])
	}

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/traverse/astar?from=0,0").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/traverse/dfs").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/traverse/dfs?from=2,2").Code)
}

func TestPaths(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/paths?from=0,0&to=1,1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, false, body["truncated"])

	rec = get(t, s, "/paths?from=0,0&to=2,0")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.EqualValues(t, 0, body["count"])
	assert.Equal(t, []any{}, body["paths"])

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/paths?from=0,0").Code)
}

func TestPaths_Truncated(t *testing.T) {
	grid, err := antenna.ParseRows([]string{"AA", "AA"})
	require.NoError(t, err)
	g, err := graph.FromGrid(grid)
	require.NoError(t, err)
	s, err := New(Config{Grid: grid, Graph: g, MaxPaths: 2})
	require.NoError(t, err)

	rec := get(t, s, "/paths?from=0,0&to=1,1&limit=50")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 2, body["count"])
	assert.Equal(t, true, body["truncated"])
}

func TestIntersections(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/intersections?a=A&b=B")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode(t, rec)["count"])

	rec = get(t, s, "/intersections?a=A&b=B&limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["count"])

	rec = get(t, s, "/intersections?a=A&b=Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FREQUENCY_NOT_FOUND", decode(t, rec)["code"])

	rec = get(t, s, "/intersections?a=A")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEffects(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/effects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode(t, rec)["count"])

	rec = get(t, s, "/effects?clip=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["count"])

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/effects?clip=maybe").Code)
}

func TestDOT(t *testing.T) {
	rec := get(t, newTestServer(t), "/graph.dot?effects=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/vnd.graphviz")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "graph G {"))
	assert.Contains(t, rec.Body.String(), "e_2_2")
}

func TestSVG_ServedFromCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	keyer := cache.NewDefaultKeyer()
	key := keyer.ArtifactKey("test", cache.ArtifactKeyOpts{Format: "svg"})
	require.NoError(t, c.Set(context.Background(), key, []byte("<svg>cached</svg>"), 0))

	s := newTestServer(t, func(cfg *Config) {
		cfg.Runner = pipeline.NewRunner(c, keyer, nil)
	})
	rec := get(t, s, "/graph.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))
	assert.Equal(t, "<svg>cached</svg>", rec.Body.String())
}

func TestSVG_Render(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	s := newTestServer(t, func(cfg *Config) { cfg.Runner = pipeline.NewRunner(c, nil, nil) })

	rec := get(t, s, "/graph.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	key := cache.NewDefaultKeyer().ArtifactKey("test", cache.ArtifactKeyOpts{Format: "svg"})
	_, hit, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, hit, "rendered SVG should be cached")
}

func TestReport(t *testing.T) {
	rec := get(t, newTestServer(t), "/report.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Len(t, body["vertices"], 4)
	assert.Len(t, body["effects"], 2)
	assert.NotEmpty(t, body["run_id"])
}

func TestArtifactBadFlag(t *testing.T) {
	rec := get(t, newTestServer(t), "/graph.dot?detailed=sometimes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFoundRoute(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(t, newTestServer(t), "/nope").Code)
}
