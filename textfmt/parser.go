package textfmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arzeth/kbgraph/csr"
	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/precsr"
)

// record is one parsed "u:.. v:.. ..." line, mirroring the original
// rel_parse struct. irtype is parsed but intentionally never applied to
// the reverse edge — see the package doc and spec.md §9/§4.3 item 6: the
// reverse edge reuses rtype, not irtype.
type record struct {
	u, v     string
	rtype    string
	irtype   string
	src      string
	w        float64
	directed bool
}

// Parse reads a relations text stream and returns a populated
// preconstruction buffer ready for csr.Build. settings controls source
// filtering, directed-edge retention, and relation-type retention per
// spec.md §6.
//
// On any malformed field, missing endpoint, or unknown key, Parse aborts
// and returns a *LineError wrapping the offending sentinel, annotated with
// the 1-based line number it occurred on.
func Parse(r io.Reader, settings kbsettings.Settings) (*precsr.Buffer, error) {
	buf := precsr.NewBuffer()

	allowedSrc, filterEnabled := settings.FilterSrc()
	keepDirected := settings.KeepDirected()
	keepRelTypes := settings.KeepRelTypes()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rec, err := parseLine(trimmed)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}

		if filterEnabled {
			if _, ok := allowedSrc[rec.src]; !ok {
				continue
			}
		}
		if rec.u == rec.v {
			continue // no self-loops
		}
		if rec.src != "" {
			buf.AddRelSource(rec.src)
		}

		rtypeIdx := -1
		if keepRelTypes && rec.rtype != "" {
			idx, err := buf.RelTypeIndex(rec.rtype)
			if err != nil {
				return nil, &LineError{Line: lineNo, Err: err}
			}
			rtypeIdx = idx
		}

		w := rec.w
		if w == 0 {
			w = 1.0
		}

		buf.InsertEdge(rec.u, rec.v, w, rtypeIdx)

		if !rec.directed || !keepDirected {
			buf.InsertEdge(rec.v, rec.u, w, rtypeIdx)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// BuildGraph is a convenience wrapper running Parse followed by csr.Build.
func BuildGraph(r io.Reader, settings kbsettings.Settings) (*csr.Graph, error) {
	buf, err := Parse(r, settings)
	if err != nil {
		return nil, err
	}
	return csr.Build(buf.VertexNames(), buf.Endpoints(), buf.EdgeProperties(), buf.RelTypes(), buf.RelSources())
}

// parseLine tokenizes one non-blank, non-comment line into a record.
func parseLine(line string) (record, error) {
	var rec record
	fields := strings.Fields(line)
	for _, field := range fields {
		if len(field) < 3 || field[1] != ':' {
			return record{}, ErrMalformedLine
		}
		key := field[0]
		val := field[2:]

		switch key {
		case 'u':
			rec.u = val
		case 'v':
			rec.v = val
		case 't':
			rec.rtype = val
		case 'i':
			rec.irtype = val
		case 's':
			rec.src = val
		case 'w':
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return record{}, ErrBadWeight
			}
			rec.w = f
		case 'd':
			rec.directed = val == "1"
		default:
			return record{}, ErrUnknownField
		}
	}
	if rec.u == "" || rec.v == "" {
		return record{}, ErrMissingEndpoint
	}
	return rec, nil
}
