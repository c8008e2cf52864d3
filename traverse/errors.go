package traverse

import "errors"

// ErrVertexOutOfRange indicates a source vertex index outside the graph's
// vertex range.
var ErrVertexOutOfRange = errors.New("traverse: vertex index out of range")
