// Package kbrand defines the abstract "pick uniformly in [0,n)" random
// number collaborator the engine consumes for GetRandomVertex, plus a
// math/rand-backed default so callers who don't care can still get
// something reasonable without wiring a generator themselves.
package kbrand
