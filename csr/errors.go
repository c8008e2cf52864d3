package csr

import "errors"

// Sentinel errors for csr package operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("csr: vertex index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("csr: edge index out of range")

	// ErrSizeMismatch indicates the preconstruction arrays disagree on vertex
	// or edge counts; Build refuses to produce an inconsistent Graph.
	ErrSizeMismatch = errors.New("csr: vertex/edge array size mismatch")

	// ErrTooManyRelationTypes indicates a 33rd distinct relation-type name
	// would be registered, exceeding RelTypeCap.
	ErrTooManyRelationTypes = errors.New("csr: too many relation types")
)
