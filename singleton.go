package kbgraph

import (
	"io"
	"sync"

	"github.com/arzeth/kbgraph/kbrand"
	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/snapshot"
	"github.com/arzeth/kbgraph/textfmt"
)

var (
	instanceMu sync.Mutex
	instance   *Engine
)

// CreateFromTextReader ingests a relations text stream and, first-wins,
// populates the process-wide singleton slot. Subsequent calls are no-ops
// that return the already-loaded Engine (spec.md §4.8): there is no
// unload operation in the core.
func CreateFromTextReader(r io.Reader, settings kbsettings.Settings) (*Engine, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance != nil {
		return instance, nil
	}
	if settings.RejectLegacyText() {
		return nil, ErrLegacyTextRejected
	}
	g, err := textfmt.BuildGraph(r, settings)
	if err != nil {
		return nil, err
	}
	instance = NewEngine(g, settings, kbrand.Default{})
	return instance, nil
}

// CreateFromBinaryReader reads a binary snapshot and, first-wins,
// populates the process-wide singleton slot.
func CreateFromBinaryReader(r io.Reader, settings kbsettings.Settings) (*Engine, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance != nil {
		return instance, nil
	}
	g, err := snapshot.Read(r)
	if err != nil {
		return nil, err
	}
	instance = NewEngine(g, settings, kbrand.Default{})
	return instance, nil
}

// Instance returns the loaded singleton Engine, or ErrNotInitialized if no
// CreateFrom* entry point has populated the slot yet.
func Instance() (*Engine, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}

// resetInstanceForTest clears the singleton slot; it exists only so tests
// in this package can exercise CreateFrom* more than once per process.
func resetInstanceForTest() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}
