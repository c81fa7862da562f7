// Package validate implements the rules-based validator described in §4.4:
// an ordered list of pure, side-effect-free rules run against a read-only
// store.Reader, in either a full scan or a patch-scoped incremental scan,
// producing structured Diagnostics.
//
// Grounded on the teacher's constraint-checking pass in
// pkg/storage/constraint.go, which likewise runs an ordered list of checks
// against a MemoryEngine snapshot and collects violations rather than
// failing fast on the first one.
package validate

// Level is a diagnostic's severity.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// TargetType names what kind of entity a Diagnostic's Target refers to.
type TargetType string

const (
	TargetGraph    TargetType = "graph"
	TargetNode     TargetType = "node"
	TargetEdge     TargetType = "edge"
	TargetEndpoint TargetType = "endpoint"
)

// Target identifies the entity a Diagnostic is about. ID is empty when Type
// is TargetGraph.
type Target struct {
	Type TargetType
	ID   string
}

func graphTarget() Target             { return Target{Type: TargetGraph} }
func nodeTarget(id string) Target     { return Target{Type: TargetNode, ID: id} }
func edgeTarget(id string) Target     { return Target{Type: TargetEdge, ID: id} }
func endpointTarget(id string) Target { return Target{Type: TargetEndpoint, ID: id} }

// Diagnostic is a single validation finding (§4.4, §6).
type Diagnostic struct {
	Level   Level
	Code    string
	Message string
	Target  Target
}

// Standard rule codes, part of the public contract (§6): callers may filter
// on these strings and the set must not change shape across versions.
const (
	CodeIdentity    = "identity"
	CodeReference   = "reference"
	CodeDirection   = "direction"
	CodeOwnership   = "ownership"
	CodeCardinality = "cardinality"
	CodeFlow        = "flow"

	// CodeIsolatedNode is the supplemental user-level warning rule named as
	// an example in §4.4/§7.
	CodeIsolatedNode = "isolated-node"
)
