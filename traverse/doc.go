// Package traverse implements the graph engine's traversal operations over
// an immutable csr.Graph: breadth-first search with predecessor capture,
// Dijkstra's shortest paths, and bounded-radius subgraph extraction.
//
// BFS and Dijkstra reuse a caller-provided parent slice when it is already
// sized to the graph's vertex count, matching the engine's "reuse storage"
// contract (spec.md §4.5); their visited/distance/queue scratch state is
// allocated afresh on every call.
package traverse
