package csr

// EdgeEndpoints is one unsorted (source, target) arc as produced by the
// preconstruction buffer, paired with its property.
type EdgeEndpoints struct {
	Source int
	Target int
}

// Build constructs an immutable Graph from an unsorted edge list plus
// per-vertex names. It produces the forward half by counting-sort on
// source index and the backward half by counting-sort on target index; the
// backward per-edge payload records, for each backward slot, the index of
// the forward edge it mirrors.
//
// names must have exactly len(endpoints)-implied vertex count entries
// (i.e. every index referenced by endpoints must be < len(names)).
func Build(names []string, endpoints []EdgeEndpoints, props []EdgeProperty, relTypes []string, relSources map[string]struct{}) (*Graph, error) {
	if len(endpoints) != len(props) {
		return nil, ErrSizeMismatch
	}

	v := len(names)
	e := len(endpoints)

	nameIndex := make(map[string]int, v)
	for i, name := range names {
		nameIndex[name] = i
	}

	rowStartF := countingSortRowStarts(endpoints, v, func(ep EdgeEndpoints) int { return ep.Source })
	columnF := make([]int32, e)
	edgePropF := make([]EdgeProperty, e)
	cursor := append([]int32(nil), rowStartF[:v]...)
	for i, ep := range endpoints {
		slot := cursor[ep.Source]
		columnF[slot] = int32(ep.Target)
		edgePropF[slot] = props[i]
		cursor[ep.Source]++
	}

	rowStartB := countingSortRowStarts(endpoints, v, func(ep EdgeEndpoints) int { return ep.Target })
	columnB := make([]int32, e)
	backToFwd := make([]int32, e)
	cursorB := append([]int32(nil), rowStartB[:v]...)
	// walk the forward arrays (already grouped by source) so that for each
	// forward slot we know both its endpoints and its own forward index.
	for src := 0; src < v; src++ {
		for slot := rowStartF[src]; slot < rowStartF[src+1]; slot++ {
			tgt := int(columnF[slot])
			bslot := cursorB[tgt]
			columnB[bslot] = int32(src)
			backToFwd[bslot] = slot
			cursorB[tgt]++
		}
	}

	rt := append([]string(nil), relTypes...)
	rs := make(map[string]struct{}, len(relSources))
	for s := range relSources {
		rs[s] = struct{}{}
	}

	return &Graph{
		vertexNames: append([]string(nil), names...),
		nameIndex:   nameIndex,
		rowStartF:   rowStartF,
		columnF:     columnF,
		edgePropF:   edgePropF,
		rowStartB:   rowStartB,
		columnB:     columnB,
		backToFwd:   backToFwd,
		relTypes:    rt,
		relSources:  rs,
		notes:       nil,
	}, nil
}

// countingSortRowStarts computes a CSR rowstart array of length v+1 by
// counting-sort, bucketing endpoints on key(ep).
func countingSortRowStarts(endpoints []EdgeEndpoints, v int, key func(EdgeEndpoints) int) []int32 {
	rowStart := make([]int32, v+1)
	for _, ep := range endpoints {
		rowStart[key(ep)+1]++
	}
	for i := 0; i < v; i++ {
		rowStart[i+1] += rowStart[i]
	}
	return rowStart
}
