package kbgraph

import "errors"

// ErrNotInitialized indicates Instance was called before any CreateFrom*
// entry point populated the singleton slot.
var ErrNotInitialized = errors.New("kbgraph: not initialized")

// ErrLegacyTextRejected indicates text ingest was refused outright because
// the settings collaborator's RejectLegacyText (v1_kb) flag is set.
var ErrLegacyTextRejected = errors.New("kbgraph: legacy text ingest rejected, convert first")
