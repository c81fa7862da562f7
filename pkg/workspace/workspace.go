// Package workspace implements the sole supported write front-end onto a
// graph (§4.5): it owns a Store and an incremental Lookup for one logical
// writer, accumulates editor calls into a PatchLog, validates the merged
// patch, and either commits a new Graph snapshot or rolls every editor call
// back in reverse.
//
// Grounded on the teacher's pkg/storage/transaction.go Transaction type,
// which buffers Operations and commits or rolls them back as a unit;
// generalized here to the typed Patch/UndoPatch model and fact-level
// validation of §4.1/§4.4 rather than the teacher's property-graph mutation
// log.
package workspace

import (
	"errors"
	"strings"

	"github.com/flowgraph/graphengine/pkg/graph"
	"github.com/flowgraph/graphengine/pkg/lookup"
	"github.com/flowgraph/graphengine/pkg/patch"
	"github.com/flowgraph/graphengine/pkg/store"
	"github.com/flowgraph/graphengine/pkg/validate"
)

// ErrReentrantUpdate is returned by Update when called while a transaction
// is already in flight on the same Workspace (§5: "Workspace.update is not
// re-entrant... implementations should reject them").
var ErrReentrantUpdate = errors.New("workspace: update called while a transaction is already in progress")

// ValidationError is returned when a committed patch's diagnostics include
// an error-level entry (§7: "a single exception carrying... a
// concatenation of the error diagnostics' messages").
type ValidationError struct {
	Diagnostics []validate.Diagnostic
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		if d.Level != validate.LevelError {
			continue
		}
		msgs = append(msgs, d.Code+": "+d.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Result is what a successful Update or ApplyPatch call returns (§4.5).
type Result struct {
	Graph       graph.Graph
	Patch       patch.Patch
	Diagnostics []validate.Diagnostic
}

// Workspace is the transactional write front-end (§4.5). It holds a
// current Store, a current incremental Lookup, and the last-committed
// Graph snapshot. The zero value is not usable; build one with New.
type Workspace struct {
	store     *store.Store
	lookup    *lookup.Lookup
	snapshot  graph.Graph
	validator *validate.Validator

	inTransaction bool
}

// New builds a Workspace seeded with g, using the standard rule set.
func New(g graph.Graph) *Workspace {
	return NewWithValidator(g, validate.New())
}

// NewWithValidator builds a Workspace seeded with g, validating commits
// with v instead of the standard rule set (e.g. one built via
// validate.NewWith to include the isolated-node warning rule).
func NewWithValidator(g graph.Graph, v *validate.Validator) *Workspace {
	return &Workspace{
		store:     store.FromGraph(g),
		lookup:    lookup.FromGraph(g),
		snapshot:  g,
		validator: v,
	}
}

// Graph returns the Workspace's last-committed snapshot (§3: "A Graph
// reachable via Workspace.graph has been validated").
func (w *Workspace) Graph() graph.Graph {
	return w.snapshot
}

// Store exposes the Workspace's current Store for callers that need direct
// read access (e.g. the impact analyzer, which needs a pre-change Reader —
// see SPEC_FULL.md's fixed convention for edge-removal seed resolution).
func (w *Workspace) Store() *store.Store {
	return w.store
}

// Update implements the §4.5 transaction: build an Editor, run editorFn
// against it, validate the merged patch incrementally, and either commit a
// new snapshot or roll back every editor call in reverse order.
func (w *Workspace) Update(editorFn func(*Editor) error, opts validate.Options) (Result, error) {
	if w.inTransaction {
		return Result{}, ErrReentrantUpdate
	}
	w.inTransaction = true
	defer func() { w.inTransaction = false }()

	log := patch.NewLog()
	ed := &Editor{store: w.store, lookup: w.lookup, log: log}

	if err := editorFn(ed); err != nil {
		ed.rollback()
		w.snapshot = w.store.ToGraph()
		return Result{}, err
	}

	merged := log.Patch()
	diags := w.validator.Check(w.store, merged, opts)
	if validate.HasErrors(diags) {
		ed.rollback()
		w.snapshot = w.store.ToGraph()
		return Result{}, &ValidationError{Diagnostics: diags}
	}

	w.snapshot = w.store.ToGraph()
	return Result{Graph: w.snapshot, Patch: merged, Diagnostics: diags}, nil
}

// ApplyPatch is a thin wrapper around Update (§4.5: "applyPatch(patch,
// validateOpts) is a thin wrapper: update(e => e.apply(patch), opts)").
func (w *Workspace) ApplyPatch(p patch.Patch, opts validate.Options) (Result, error) {
	return w.Update(func(e *Editor) error {
		return e.Apply(p)
	}, opts)
}
