package pagerank

import "errors"

// ErrSizeMismatch indicates a personalization or output vector whose length
// does not match the graph's vertex count.
var ErrSizeMismatch = errors.New("pagerank: vector/vertex count mismatch")
