package store

import "fmt"

// Category names the kind of entity a structural error concerns, matching
// the target discriminator used by validate.Diagnostic (§6).
type Category string

const (
	CategoryNode     Category = "node"
	CategoryEdge     Category = "edge"
	CategoryEndpoint Category = "endpoint"
)

// DuplicateIDError is raised when a patch's add operation names an id that
// already exists (§7: DuplicateId).
type DuplicateIDError struct {
	Category Category
	ID       string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Category, e.ID)
}

// MissingIDError is raised when a patch's replace or remove operation
// names an id that does not exist (§7: MissingId).
type MissingIDError struct {
	Category Category
	ID       string
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("missing %s id %q", e.Category, e.ID)
}

// ConflictingPatchIDError is raised when the same id appears twice within
// one patch's add/remove/replace sets for the same category (§4.1 step 1,
// §7: ConflictingPatchId).
type ConflictingPatchIDError struct {
	Category Category
	ID       string
}

func (e *ConflictingPatchIDError) Error() string {
	return fmt.Sprintf("conflicting patch id: %s id %q appears more than once", e.Category, e.ID)
}

// DanglingEndpointError is raised when a node replacement drops an
// endpoint that is still referenced by an edge, or a node removal is
// attempted while edges still reference the node (§4.1 step 4/5, §7:
// DanglingEndpoint).
type DanglingEndpointError struct {
	NodeID     string
	EndpointID string
	Role       string // "input" or "output", empty when the error is about the node itself
	EdgeID     string
}

func (e *DanglingEndpointError) Error() string {
	if e.EndpointID == "" {
		return fmt.Sprintf("node %q has incident edges (edge %q)", e.NodeID, e.EdgeID)
	}
	return fmt.Sprintf("%s %q has edges (edge %q)", e.Role, e.EndpointID, e.EdgeID)
}
