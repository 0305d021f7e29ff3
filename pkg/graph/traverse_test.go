package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traverseFunc func(*Graph, *Vertex) (*Traversal, error)

var traversals = map[string]traverseFunc{"dfs": DFS, "bfs": BFS}

func TestTraverse_SampleReachesOnlyComponent(t *testing.T) {
	for name, fn := range traversals {
		t.Run(name, func(t *testing.T) {
			g := buildSample(t)
			start := mustVertex(t, g, 0, 0)

			res, err := fn(g, start)
			require.NoError(t, err)
			assert.Equal(t, []string{"A@(0,0)", "A@(1,1)"}, vertexStrings(res.Order))
			assert.Equal(t, 2, res.Len())
			assert.Same(t, start, res.Start)
			assert.False(t, res.Contains(mustVertex(t, g, 2, 0)))
			assert.False(t, res.Contains(nil))
		})
	}
}

func TestTraverse_Errors(t *testing.T) {
	for name, fn := range traversals {
		t.Run(name, func(t *testing.T) {
			g := buildSample(t)

			_, err := fn(nil, nil)
			assert.ErrorIs(t, err, ErrNilGraph)

			_, err = fn(g, nil)
			assert.ErrorIs(t, err, ErrNilVertex)

			other := buildSample(t)
			res, err := fn(g, mustVertex(t, other, 0, 0))
			assert.ErrorIs(t, err, ErrVertexNotFound)
			assert.Nil(t, res)
		})
	}
}

func TestTraverse_VisitsEachOnce(t *testing.T) {
	g, err := Build([]string{"aaaa", "aaaa", "b.aa"})
	require.NoError(t, err)

	for name, fn := range traversals {
		t.Run(name, func(t *testing.T) {
			res, err := fn(g, mustVertex(t, g, 3, 2))
			require.NoError(t, err)

			seen := map[VertexID]bool{}
			for _, v := range res.Order {
				assert.Falsef(t, seen[v.ID], "%s visited twice", v)
				seen[v.ID] = true
			}
			assert.LessOrEqual(t, res.Len(), g.NumVertices())
			assert.Equal(t, 10, res.Len())
			assert.Len(t, res.Depth, res.Len())
		})
	}
}

func TestDFS_Preorder(t *testing.T) {
	// Hand-built path graph 0-1-2 plus 0-3 to pin the exploration order.
	g := New()
	vs := make([]*Vertex, 4)
	for i := range vs {
		vs[i], _ = g.AddVertex(antennaAt('A', i, 0))
	}
	require.NoError(t, g.connect(vs[0], vs[1]))
	require.NoError(t, g.connect(vs[1], vs[2]))
	require.NoError(t, g.connect(vs[0], vs[3]))

	res, err := DFS(g, vs[0])
	require.NoError(t, err)
	assert.Equal(t, []VertexID{0, 1, 2, 3}, ids(res.Order))
	assert.Equal(t, map[VertexID]int{0: 0, 1: 1, 2: 2, 3: 1}, res.Depth)

	res, err = BFS(g, vs[0])
	require.NoError(t, err)
	assert.Equal(t, []VertexID{0, 1, 3, 2}, ids(res.Order))
	assert.Equal(t, map[VertexID]int{0: 0, 1: 1, 2: 2, 3: 1}, res.Depth)
	assert.Len(t, res.Positions(), 4)
}

func TestComponents(t *testing.T) {
	g := buildSample(t)
	comps := Components(g)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A@(0,0)", "A@(1,1)"}, vertexStrings(comps[0]))
	assert.Equal(t, []string{"B@(2,0)"}, vertexStrings(comps[1]))
	assert.Equal(t, []string{"C@(0,2)"}, vertexStrings(comps[2]))

	s := Summarize(g)
	assert.Equal(t, 4, s.Vertices)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 3, s.Components)
	assert.Equal(t, 2, s.Largest)
	assert.Len(t, s.Frequencies, 3)

	assert.Nil(t, Components(nil))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func ids(vs []*Vertex) []VertexID {
	out := make([]VertexID, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}
