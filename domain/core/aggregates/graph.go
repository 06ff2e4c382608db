package aggregates

import (
	"mindflow-backend/domain/core/entities"
	"mindflow-backend/domain/core/valueobjects"
)

// NodeKind discriminates the two node families in the knowledge graph.
type NodeKind string

const (
	NodeKindDocument NodeKind = "document"
	NodeKindTag      NodeKind = "tag"
)

// GraphNode is a renderable node: either a document or a tag.
type GraphNode struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Kind  NodeKind `json:"kind"`
}

// GraphEdge connects a document node to a tag node. There are no
// document-to-document or tag-to-tag edges.
type GraphEdge struct {
	DocumentID string `json:"documentId"`
	TagID      string `json:"tagId"`
}

// Graph is the tag-co-occurrence knowledge graph derived from the document
// collection. It is recomputed from scratch on demand rather than updated
// incrementally.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// BuildGraph derives the knowledge graph from the documents. Every document
// becomes a node labeled by its title. Every distinct normalized tag becomes
// a node whose label keeps the casing of the first document that used it.
// Each (document, tag) membership becomes one edge, so the invariant holds
// that both edge endpoints exist as nodes.
func BuildGraph(documents []*entities.Document) *Graph {
	graph := &Graph{
		Nodes: make([]GraphNode, 0, len(documents)),
		Edges: make([]GraphEdge, 0),
	}

	seenTags := make(map[string]bool)
	seenEdges := make(map[GraphEdge]bool)

	for _, doc := range documents {
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID:    doc.ID,
			Label: doc.Label(),
			Kind:  NodeKindDocument,
		})
	}

	for _, doc := range documents {
		for _, tag := range doc.Tags {
			tagID := valueobjects.TagNodeID(tag)

			if !seenTags[tagID] {
				seenTags[tagID] = true
				graph.Nodes = append(graph.Nodes, GraphNode{
					ID:    tagID,
					Label: tag,
					Kind:  NodeKindTag,
				})
			}

			edge := GraphEdge{DocumentID: doc.ID, TagID: tagID}
			if !seenEdges[edge] {
				seenEdges[edge] = true
				graph.Edges = append(graph.Edges, edge)
			}
		}
	}

	return graph
}

// NodeByID looks up a node by its id.
func (g *Graph) NodeByID(id string) (GraphNode, bool) {
	for _, node := range g.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return GraphNode{}, false
}

// DocumentIDsForTag returns the ids of all documents connected to the tag
// node. Consumers use this to resolve a tag-node click back to documents.
func (g *Graph) DocumentIDsForTag(tagID string) []string {
	ids := make([]string, 0)
	for _, edge := range g.Edges {
		if edge.TagID == tagID {
			ids = append(ids, edge.DocumentID)
		}
	}
	return ids
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}
