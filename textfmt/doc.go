// Package textfmt implements the line-oriented text ingester for the
// knowledge-base graph.
//
// Lines beginning with '#' or containing only whitespace are skipped.
// Every other line is whitespace-tokenized into "k:value" fields:
//
//	u  source vertex name (required)
//	v  target vertex name (required)
//	t  relation type of u->v (optional)
//	i  relation type of v->u, parsed but not applied (the reverse edge reuses t)
//	s  relation source / provenance tag (optional)
//	d  1 if directed, else undirected (optional, default undirected)
//	w  weight (optional, default 1.0; 0 is coerced to 1.0)
//
// A malformed field, an unknown key, or a missing mandatory endpoint
// aborts ingest with an error annotated with the offending line number.
package textfmt
