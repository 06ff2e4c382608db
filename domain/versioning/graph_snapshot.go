package versioning

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"mindflow-backend/domain/core/aggregates"
)

// GraphSnapshot identifies a computed state of the knowledge graph. Because
// the graph is derived entirely from the document collection, the checksum
// doubles as a cache validator for consumers that already hold a rendering.
type GraphSnapshot struct {
	Checksum   string    `json:"checksum"`
	NodeCount  int       `json:"node_count"`
	EdgeCount  int       `json:"edge_count"`
	ComputedAt time.Time `json:"computed_at"`
}

// Snapshot computes the snapshot of a graph.
func Snapshot(graph *aggregates.Graph) (*GraphSnapshot, error) {
	if graph == nil {
		return nil, fmt.Errorf("graph cannot be nil")
	}

	checksum, err := calculateChecksum(graph)
	if err != nil {
		return nil, err
	}

	return &GraphSnapshot{
		Checksum:   checksum,
		NodeCount:  graph.NodeCount(),
		EdgeCount:  graph.EdgeCount(),
		ComputedAt: time.Now(),
	}, nil
}

// Matches reports whether a consumer-held checksum still describes the
// current graph state.
func (s *GraphSnapshot) Matches(checksum string) bool {
	return checksum != "" && s.Checksum == checksum
}

func calculateChecksum(graph *aggregates.Graph) (string, error) {
	// Nodes and edges are already in deterministic build order, so hashing
	// the JSON form is stable across recomputations of the same documents.
	payload, err := json.Marshal(graph)
	if err != nil {
		return "", fmt.Errorf("marshaling graph for checksum: %w", err)
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
