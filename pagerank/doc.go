// Package pagerank implements personalized PageRank power iteration over an
// immutable csr.Graph: weighted or unweighted out-coefficients, dangling-
// vertex mass redistribution, out-coefficient caching, and a memoized
// uniform-teleport ("static") PageRank.
//
// A Driver is bound to one graph for its lifetime; reloading a graph means
// constructing a new Driver, not mutating an existing one.
package pagerank
