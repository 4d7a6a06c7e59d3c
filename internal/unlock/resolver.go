// Package unlock decides which catalog units and groups a learner may
// currently attempt, based on the prerequisite graph and the set of
// completed unit ids.
package unlock

import (
	"github.com/verdantapp/verdant/internal/catalog"
)

// CompletionSet answers membership queries over the union of all per-kind
// completed sets. Prerequisite ids are always resolved against the union,
// since prerequisite lists mix kinds.
type CompletionSet interface {
	Completed(id string) bool
}

// Resolver evaluates unlock rules against a catalog graph. It is read-only
// and safe to call at arbitrary rendering frequency.
type Resolver struct {
	graph  *catalog.Graph
	bypass bool
}

// New creates a resolver with normal prerequisite evaluation.
func New(g *catalog.Graph) *Resolver {
	return &Resolver{graph: g}
}

// NewPreview creates a resolver that reports every known id as accessible.
// This is the developer/preview escape hatch; it still rejects unknown ids.
func NewPreview(g *catalog.Graph) *Resolver {
	return &Resolver{graph: g, bypass: true}
}

// Bypass reports whether preview mode is active.
func (r *Resolver) Bypass() bool {
	return r.bypass
}

// CanAccess reports whether the unit or group named by id is currently
// accessible. A group being accessible does not imply any of its children
// are; each child is evaluated against its own prerequisites.
func (r *Resolver) CanAccess(id string, done CompletionSet) (bool, error) {
	prereqs, err := r.graph.Prerequisites(id)
	if err != nil {
		return false, err
	}
	if r.bypass {
		return true, nil
	}
	for _, p := range prereqs {
		if r.graph.IsGroup(p) {
			// A group prerequisite is met when the group itself is complete:
			// all of its leaf units are done.
			ok, err := r.groupComplete(p, done)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			continue
		}
		if !done.Completed(p) {
			return false, nil
		}
	}
	return true, nil
}

func (r *Resolver) groupComplete(groupID string, done CompletionSet) (bool, error) {
	leaves, err := r.graph.LeafUnits(groupID)
	if err != nil {
		return false, err
	}
	for _, id := range leaves {
		if !done.Completed(id) {
			return false, nil
		}
	}
	return true, nil
}

// AccessibleChildren returns the ids of a group's direct children that are
// currently accessible, in catalog order.
func (r *Resolver) AccessibleChildren(groupID string, done CompletionSet) ([]string, error) {
	grp, err := r.graph.Group(groupID)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, child := range grp.Children {
		ok, err := r.CanAccess(child, done)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, child)
		}
	}
	return out, nil
}
