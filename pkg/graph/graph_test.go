package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// sample is the 3x3 grid used across the package tests:
//
//	A.B
//	.A.
//	C..
var sample = []string{"A.B", ".A.", "C.."}

func buildSample(t *testing.T) *Graph {
	t.Helper()
	g, err := Build(sample)
	require.NoError(t, err)
	return g
}

func mustVertex(t *testing.T, g *Graph, x, y int) *Vertex {
	t.Helper()
	v, ok := g.VertexAt(x, y)
	require.Truef(t, ok, "no vertex at (%d,%d)", x, y)
	return v
}

func TestBuild_Sample(t *testing.T) {
	g := buildSample(t)

	require.Equal(t, 4, g.NumVertices())
	assert.Equal(t, []string{"A@(0,0)", "B@(2,0)", "A@(1,1)", "C@(0,2)"}, vertexStrings(g.Vertices()))

	a1 := mustVertex(t, g, 0, 0)
	a2 := mustVertex(t, g, 1, 1)
	b := mustVertex(t, g, 2, 0)
	c := mustVertex(t, g, 0, 2)

	assert.True(t, g.HasEdge(a1, a2))
	assert.True(t, g.HasEdge(a2, a1))
	assert.False(t, g.HasEdge(a1, b))
	assert.False(t, g.HasEdge(b, c))
	assert.Equal(t, 2, g.NumEdges())
}

func TestBuild_EmptyInput(t *testing.T) {
	g, err := Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.NumVertices())
	assert.Zero(t, g.NumEdges())
	assert.Empty(t, g.Vertices())
}

func TestBuild_OneVertexPerCell(t *testing.T) {
	rows := []string{"ab.c", " d  ", "....", "eeee"}
	g, err := Build(rows)
	require.NoError(t, err)

	cells := 0
	for _, r := range rows {
		for _, c := range r {
			if c != '.' && c != ' ' {
				cells++
			}
		}
	}
	assert.Equal(t, cells, g.NumVertices())
}

func TestBuild_CustomEmptyMarkers(t *testing.T) {
	g, err := Build([]string{"A#A", "#B#"}, antenna.WithEmptyMarkers('#'))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
}

func TestBuild_EdgesMatchFrequencies(t *testing.T) {
	g, err := Build([]string{"AAB", "BA.", "..B"})
	require.NoError(t, err)

	vs := g.Vertices()
	for _, u := range vs {
		for _, v := range vs {
			want := u != v && u.Frequency() == v.Frequency()
			assert.Equalf(t, want, g.HasEdge(u, v), "edge %s -> %s", u, v)
			assert.Equalf(t, g.HasEdge(u, v), g.HasEdge(v, u), "symmetry %s <-> %s", u, v)
		}
	}
	// A cluster of 3 and B cluster of 3: 3 pairs each, two directions.
	assert.Equal(t, 12, g.NumEdges())
}

func TestReadFile_Missing(t *testing.T) {
	g, err := ReadFile(t.TempDir() + "/missing.txt")
	assert.Error(t, err)
	assert.Nil(t, g)
}

func TestFromAntennas_NegativeCoordinate(t *testing.T) {
	g, err := FromAntennas([]antenna.Antenna{antenna.New('A', 0, 0), antenna.New('A', -1, 2)})
	assert.ErrorIs(t, err, ErrNegativeCoordinate)
	assert.Nil(t, g, "no partial graph")
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := New()
	v1, err := g.AddVertex(antenna.New('A', 3, 4))
	require.NoError(t, err)
	v2, err := g.AddVertex(antenna.New('Z', 3, 4))
	require.NoError(t, err)

	assert.Same(t, v1, v2)
	assert.Equal(t, antenna.Frequency('A'), v2.Frequency())
	assert.Equal(t, 1, g.NumVertices())
}

func TestAddVertex_NilGraph(t *testing.T) {
	var g *Graph
	_, err := g.AddVertex(antenna.New('A', 0, 0))
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestNilGraphAccessors(t *testing.T) {
	var g *Graph
	assert.Zero(t, g.NumVertices())
	assert.Zero(t, g.NumEdges())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	_, ok := g.Vertex(0)
	assert.False(t, ok)
}

func TestAddEdge(t *testing.T) {
	g := New()
	a, _ := g.AddVertex(antenna.New('A', 0, 0))
	b, _ := g.AddVertex(antenna.New('A', 1, 0))

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b), "duplicate edge is a no-op")
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, []Edge{{From: a.ID, To: b.ID}}, g.Edges())

	assert.ErrorIs(t, g.AddEdge(a, a), ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(a, nil), ErrNilVertex)

	other := New()
	foreign, _ := other.AddVertex(antenna.New('A', 5, 5))
	assert.ErrorIs(t, g.AddEdge(a, foreign), ErrVertexNotFound)
}

func TestNeighbors(t *testing.T) {
	g, err := Build([]string{"AAA"})
	require.NoError(t, err)
	v := mustVertex(t, g, 1, 0)

	ns, err := g.Neighbors(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"A@(0,0)", "A@(2,0)"}, vertexStrings(ns))

	_, err = g.Neighbors(nil)
	assert.ErrorIs(t, err, ErrNilVertex)
}

func TestVertex(t *testing.T) {
	g := buildSample(t)
	v, ok := g.Vertex(1)
	require.True(t, ok)
	assert.Equal(t, "B@(2,0)", v.String())

	_, ok = g.Vertex(-1)
	assert.False(t, ok)
	_, ok = g.Vertex(4)
	assert.False(t, ok)
}

func vertexStrings(vs []*Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func ExampleBuild() {
	g, err := Build([]string{"A.B", ".A.", "C.."})
	if err != nil {
		panic(err)
	}
	fmt.Println(g.NumVertices(), g.NumEdges())
	for _, v := range g.Vertices() {
		fmt.Println(v, v.Degree())
	}
	// Output:
	// 4 2
	// A@(0,0) 1
	// B@(2,0) 0
	// A@(1,1) 1
	// C@(0,2) 0
}
