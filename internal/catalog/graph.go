package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrNotFound indicates an unknown unit or group id.
var ErrNotFound = errors.New("not found")

// Graph holds a validated catalog with precomputed indices.
type Graph struct {
	catalog    Catalog
	unitByID   map[string]*Unit
	groupByID  map[string]*Group
	roots      []Group // groups not contained in any other group, by Order
	dependents map[string][]string
	topoOrder  []string // unit ids in deterministic topological order
	topoIndex  map[string]int
	leafUnits  map[string][]string // group id -> transitive leaf unit ids, in child order
}

// NewGraph validates the catalog and builds all indices, including the
// topological order of units (Kahn's algorithm) and the transitive leaf-unit
// cache used for group rollups.
func NewGraph(c Catalog) (*Graph, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	g := &Graph{
		catalog:    c,
		unitByID:   make(map[string]*Unit, len(c.Units)),
		groupByID:  make(map[string]*Group, len(c.Groups)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(c.Units)),
		leafUnits:  make(map[string][]string, len(c.Groups)),
	}

	for i := range g.catalog.Units {
		g.unitByID[g.catalog.Units[i].ID] = &g.catalog.Units[i]
	}
	for i := range g.catalog.Groups {
		g.groupByID[g.catalog.Groups[i].ID] = &g.catalog.Groups[i]
	}

	// Reverse edges over the prerequisite relation (units and groups).
	for _, u := range c.Units {
		for _, p := range u.Prerequisites {
			g.dependents[p] = append(g.dependents[p], u.ID)
		}
	}
	for _, grp := range c.Groups {
		for _, p := range grp.Prerequisites {
			g.dependents[p] = append(g.dependents[p], grp.ID)
		}
	}

	g.buildTopoOrder()
	g.buildRoots()
	for _, grp := range c.Groups {
		g.leafUnits[grp.ID] = g.collectLeaves(grp.ID)
	}

	return g, nil
}

// buildTopoOrder orders unit ids by prerequisite depth using Kahn's
// algorithm, breaking ties lexicographically for determinism.
func (g *Graph) buildTopoOrder() {
	inDegree := make(map[string]int, len(g.unitByID))
	adjList := make(map[string][]string)
	for id, u := range g.unitByID {
		for _, p := range u.Prerequisites {
			if _, ok := g.unitByID[p]; !ok {
				continue // group prerequisite, not part of the unit order
			}
			inDegree[id]++
			adjList[p] = append(adjList[p], id)
		}
	}

	var queue []string
	for id := range g.unitByID {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoOrder = append(g.topoOrder, id)

		deps := slices.Clone(adjList[id])
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	for i, id := range g.topoOrder {
		g.topoIndex[id] = i
	}
}

func (g *Graph) buildRoots() {
	contained := make(map[string]bool)
	for _, grp := range g.catalog.Groups {
		for _, child := range grp.Children {
			contained[child] = true
		}
	}
	for _, grp := range g.catalog.Groups {
		if !contained[grp.ID] {
			g.roots = append(g.roots, grp)
		}
	}
	sort.Slice(g.roots, func(i, j int) bool { return g.roots[i].Order < g.roots[j].Order })
}

// collectLeaves walks a group's children in order, descending into nested
// groups, and returns the leaf unit ids.
func (g *Graph) collectLeaves(groupID string) []string {
	grp := g.groupByID[groupID]
	var leaves []string
	for _, child := range grp.Children {
		if _, ok := g.unitByID[child]; ok {
			leaves = append(leaves, child)
			continue
		}
		leaves = append(leaves, g.collectLeaves(child)...)
	}
	return leaves
}

// Unit returns a unit by ID.
func (g *Graph) Unit(id string) (Unit, error) {
	u, ok := g.unitByID[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit %q: %w", id, ErrNotFound)
	}
	return *u, nil
}

// Group returns a group by ID.
func (g *Graph) Group(id string) (Group, error) {
	grp, ok := g.groupByID[id]
	if !ok {
		return Group{}, fmt.Errorf("group %q: %w", id, ErrNotFound)
	}
	return *grp, nil
}

// IsUnit reports whether id names a unit.
func (g *Graph) IsUnit(id string) bool {
	_, ok := g.unitByID[id]
	return ok
}

// IsGroup reports whether id names a group.
func (g *Graph) IsGroup(id string) bool {
	_, ok := g.groupByID[id]
	return ok
}

// Units returns all units in deterministic topological order.
func (g *Graph) Units() []Unit {
	units := make([]Unit, 0, len(g.topoOrder))
	for _, id := range g.topoOrder {
		units = append(units, *g.unitByID[id])
	}
	return units
}

// Groups returns all groups in catalog order.
func (g *Graph) Groups() []Group {
	return slices.Clone(g.catalog.Groups)
}

// RootGroups returns the top-level groups ordered by their Order field.
func (g *Graph) RootGroups() []Group {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite ids of a unit or group.
func (g *Graph) Prerequisites(id string) ([]string, error) {
	if u, ok := g.unitByID[id]; ok {
		return slices.Clone(u.Prerequisites), nil
	}
	if grp, ok := g.groupByID[id]; ok {
		return slices.Clone(grp.Prerequisites), nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Dependents returns the ids that directly list id as a prerequisite.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// LeafUnits returns the transitive leaf unit ids under a group, in child
// order. The result is precomputed at graph build time.
func (g *Graph) LeafUnits(groupID string) ([]string, error) {
	leaves, ok := g.leafUnits[groupID]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", groupID, ErrNotFound)
	}
	return slices.Clone(leaves), nil
}

// LeafCount returns the number of leaf units transitively under a group.
func (g *Graph) LeafCount(groupID string) (int, error) {
	leaves, ok := g.leafUnits[groupID]
	if !ok {
		return 0, fmt.Errorf("group %q: %w", groupID, ErrNotFound)
	}
	return len(leaves), nil
}

// Version returns the catalog's declared version.
func (g *Graph) Version() string {
	return g.catalog.Version
}
