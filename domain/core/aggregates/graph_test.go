package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindflow-backend/domain/core/entities"
)

func doc(id, title string, tags ...string) *entities.Document {
	return &entities.Document{ID: id, Title: title, Tags: tags}
}

func TestBuildGraph_SharedTag(t *testing.T) {
	documents := []*entities.Document{
		doc("doc-1", "First", "x"),
		doc("doc-2", "Second", "x"),
	}

	graph := BuildGraph(documents)

	assert.Equal(t, 3, graph.NodeCount())
	assert.Equal(t, 2, graph.EdgeCount())

	tagNode, ok := graph.NodeByID("tag-x")
	require.True(t, ok)
	assert.Equal(t, NodeKindTag, tagNode.Kind)
	assert.Equal(t, "x", tagNode.Label)

	assert.Equal(t, []string{"doc-1", "doc-2"}, graph.DocumentIDsForTag("tag-x"))
}

func TestBuildGraph_UntitledDocumentLabel(t *testing.T) {
	graph := BuildGraph([]*entities.Document{doc("doc-1", "")})

	node, ok := graph.NodeByID("doc-1")
	require.True(t, ok)
	assert.Equal(t, "Untitled", node.Label)
	assert.Equal(t, NodeKindDocument, node.Kind)
}

func TestBuildGraph_TagNormalization(t *testing.T) {
	documents := []*entities.Document{
		doc("doc-1", "First", "Video Editing"),
		doc("doc-2", "Second", "video  editing"),
	}

	graph := BuildGraph(documents)

	// Both spellings normalize to one tag node; the first-seen casing wins.
	tagNode, ok := graph.NodeByID("tag-video-editing")
	require.True(t, ok)
	assert.Equal(t, "Video Editing", tagNode.Label)
	assert.Equal(t, 3, graph.NodeCount())
	assert.Equal(t, 2, graph.EdgeCount())
}

func TestBuildGraph_EdgeEndpointsExist(t *testing.T) {
	documents := []*entities.Document{
		doc("doc-1", "A", "sleep", "health"),
		doc("doc-2", "B", "health", "fatigue"),
		doc("doc-3", "C"),
	}

	graph := BuildGraph(documents)

	for _, edge := range graph.Edges {
		_, ok := graph.NodeByID(edge.DocumentID)
		assert.True(t, ok, "edge references missing document node %s", edge.DocumentID)
		_, ok = graph.NodeByID(edge.TagID)
		assert.True(t, ok, "edge references missing tag node %s", edge.TagID)
	}
}

func TestBuildGraph_NoDuplicateEdges(t *testing.T) {
	graph := BuildGraph([]*entities.Document{doc("doc-1", "A", "sleep", "sleep")})

	assert.Equal(t, 2, graph.NodeCount())
	assert.Equal(t, 1, graph.EdgeCount())
}

func TestBuildGraph_Empty(t *testing.T) {
	graph := BuildGraph(nil)

	assert.Equal(t, 0, graph.NodeCount())
	assert.Equal(t, 0, graph.EdgeCount())
	assert.NotNil(t, graph.Nodes)
	assert.NotNil(t, graph.Edges)
}
