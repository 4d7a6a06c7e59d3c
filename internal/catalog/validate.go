package catalog

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(c Catalog) error {
	var errs []string

	unitIDs := make(map[string]bool, len(c.Units))
	groupIDs := make(map[string]bool, len(c.Groups))

	// Duplicate and colliding ids.
	for _, u := range c.Units {
		if unitIDs[u.ID] {
			errs = append(errs, fmt.Sprintf("duplicate unit ID: %q", u.ID))
		}
		unitIDs[u.ID] = true
	}
	for _, g := range c.Groups {
		if groupIDs[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate group ID: %q", g.ID))
		}
		if unitIDs[g.ID] {
			errs = append(errs, fmt.Sprintf("group ID collides with unit ID: %q", g.ID))
		}
		groupIDs[g.ID] = true
	}
	known := func(id string) bool { return unitIDs[id] || groupIDs[id] }

	// Per-unit field checks.
	for _, u := range c.Units {
		if !u.Kind.IsValid() {
			errs = append(errs, fmt.Sprintf("unit %q has unknown kind %q", u.ID, u.Kind))
		}
		if u.Points < 0 {
			errs = append(errs, fmt.Sprintf("unit %q has negative points %d", u.ID, u.Points))
		}
		if u.Kind.Scored() && u.MaxScore <= 0 {
			errs = append(errs, fmt.Sprintf("quiz %q must declare a positive maxScore, got %d", u.ID, u.MaxScore))
		}
		for t, n := range u.Reward {
			if !t.IsValid() {
				errs = append(errs, fmt.Sprintf("unit %q rewards unknown item %q", u.ID, t))
			}
			if n < 0 {
				errs = append(errs, fmt.Sprintf("unit %q rewards negative quantity of %q", u.ID, t))
			}
		}
		for _, p := range u.Prerequisites {
			if !known(p) {
				errs = append(errs, fmt.Sprintf("unit %q references nonexistent prerequisite %q", u.ID, p))
			}
		}
	}

	// Per-group field checks.
	childOf := make(map[string]string) // child id -> parent group id
	for _, g := range c.Groups {
		if !g.Kind.IsValid() {
			errs = append(errs, fmt.Sprintf("group %q has unknown kind %q", g.ID, g.Kind))
		}
		seen := make(map[string]bool, len(g.Children))
		for _, child := range g.Children {
			if !known(child) {
				errs = append(errs, fmt.Sprintf("group %q references nonexistent child %q", g.ID, child))
				continue
			}
			if child == g.ID {
				errs = append(errs, fmt.Sprintf("group %q contains itself", g.ID))
			}
			if seen[child] {
				errs = append(errs, fmt.Sprintf("group %q lists child %q twice", g.ID, child))
			}
			seen[child] = true
			if parent, ok := childOf[child]; ok && parent != g.ID {
				errs = append(errs, fmt.Sprintf("%q is a child of both %q and %q", child, parent, g.ID))
			}
			childOf[child] = g.ID
		}
		for _, p := range g.Prerequisites {
			if !known(p) {
				errs = append(errs, fmt.Sprintf("group %q references nonexistent prerequisite %q", g.ID, p))
			}
		}
		if g.BossID != "" {
			if !seen[g.BossID] {
				errs = append(errs, fmt.Sprintf("group %q declares boss %q outside its children", g.ID, g.BossID))
			} else if !unitIDs[g.BossID] {
				errs = append(errs, fmt.Sprintf("group %q declares non-unit boss %q", g.ID, g.BossID))
			}
		}
	}

	// Duplicate sibling order.
	orderSeen := make(map[string]map[int]string) // parent -> order -> group id
	for _, g := range c.Groups {
		parent := childOf[g.ID] // "" for roots
		if orderSeen[parent] == nil {
			orderSeen[parent] = make(map[int]string)
		}
		if other, ok := orderSeen[parent][g.Order]; ok {
			errs = append(errs, fmt.Sprintf("groups %q and %q share order %d under the same parent", other, g.ID, g.Order))
		}
		orderSeen[parent][g.Order] = g.ID
	}

	// Prerequisite cycles over units and groups, using Kahn's algorithm.
	if cycle := findCycle(c); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle detected involving: %s", strings.Join(cycle, ", ")))
	}

	// Group containment cycles.
	if cycle := findContainmentCycle(c); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("group containment cycle detected involving: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// findCycle runs Kahn's algorithm over the prerequisite relation and returns
// the ids left with unresolved in-degree, empty when the relation is acyclic.
func findCycle(c Catalog) []string {
	prereqs := make(map[string][]string, len(c.Units)+len(c.Groups))
	for _, u := range c.Units {
		prereqs[u.ID] = u.Prerequisites
	}
	for _, g := range c.Groups {
		prereqs[g.ID] = g.Prerequisites
	}

	inDegree := make(map[string]int, len(prereqs))
	adjList := make(map[string][]string)
	for id, ps := range prereqs {
		for _, p := range ps {
			if _, ok := prereqs[p]; !ok {
				continue // dangling, reported separately
			}
			inDegree[id]++
			adjList[p] = append(adjList[p], id)
		}
	}

	var queue []string
	for id := range prereqs {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adjList[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited == len(prereqs) {
		return nil
	}
	var cycle []string
	for id, deg := range inDegree {
		if deg > 0 {
			cycle = append(cycle, id)
		}
	}
	return cycle
}

// findContainmentCycle detects groups that transitively contain themselves.
func findContainmentCycle(c Catalog) []string {
	children := make(map[string][]string, len(c.Groups))
	for _, g := range c.Groups {
		for _, child := range g.Children {
			children[g.ID] = append(children[g.ID], child)
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(children))
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, child := range children[id] {
			switch color[child] {
			case gray:
				cycle = append(cycle, child)
				return true
			case white:
				if visit(child) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, g := range c.Groups {
		if color[g.ID] == white && visit(g.ID) {
			return cycle
		}
	}
	return nil
}
