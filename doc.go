// Package kbgraph is an in-memory graph engine for word-sense knowledge
// bases: ingest a relations text stream or a binary snapshot into a
// compressed-sparse-row graph, then query it by name, traverse it (BFS,
// Dijkstra, bounded-radius subgraph extraction), and rank it with
// personalized PageRank.
//
// Everything is organized under focused subpackages:
//
//	csr/        — the compressed-sparse-row graph and its relation-type registry
//	precsr/     — the append-only preconstruction buffer that interns and dedupes
//	textfmt/    — the "u:.. v:.." relations text parser
//	snapshot/   — the binary snapshot codec
//	traverse/   — BFS, Dijkstra, bounded-radius subgraph extraction
//	pagerank/   — personalized PageRank power iteration
//	kbsettings/ — the abstract settings collaborator
//	kbrand/     — the abstract random-vertex-pick collaborator
//
// Engine ties these together as a single façade over one loaded graph, and
// a thin process-wide slot (see CreateFromTextReader, CreateFromBinaryReader,
// Instance)
// offers first-wins singleton semantics for callers that want one.
package kbgraph
