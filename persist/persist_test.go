package persist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/persist"
)

func sampleGraph(t *testing.T) *csrgraph.Graph {
	t.Helper()

	nodes := []csrgraph.Node{
		{ID: 0, Lon: 1, Lat: 2},
		{ID: 1, Lon: 3, Lat: 4},
		{ID: 2, Lon: 5, Lat: 6},
	}
	edges := []csrgraph.Edge{
		{Src: 0, Tgt: 1, Dist: 100},
		{Src: 1, Tgt: 0, Dist: 100},
		{Src: 1, Tgt: 2, Dist: 50},
	}

	g, err := csrgraph.New(nodes, edges)
	require.NoError(t, err)

	return g
}

func TestBinaryRoundTrip(t *testing.T) {
	g := sampleGraph(t)
	path := filepath.Join(t.TempDir(), "graph.bin")

	require.NoError(t, persist.SaveBinary(g, path))

	loaded, err := persist.LoadBinary(path)
	require.NoError(t, err)
	require.Equal(t, g.Nodes, loaded.Nodes)
	require.Equal(t, g.Edges, loaded.Edges)
	require.Equal(t, g.Offsets, loaded.Offsets)
}

func TestTextRoundTrip(t *testing.T) {
	g := sampleGraph(t)
	path := filepath.Join(t.TempDir(), "graph.fmi")

	require.NoError(t, persist.SaveText(g, path))

	loaded, err := persist.LoadText(path)
	require.NoError(t, err)
	require.Equal(t, g.Nodes, loaded.Nodes)
	require.Equal(t, g.Edges, loaded.Edges)
}

func TestLoadTextSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fmi")
	content := "3\n1\n0 1.0 2.0\nnotanumber garbage extra\n1 3.0 4.0\n0 1 100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := persist.LoadText(path)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
}
