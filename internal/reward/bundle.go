package reward

import "maps"

// Bundle maps item types to non-negative quantities.
// The zero value (nil) is a valid empty bundle for reads.
type Bundle map[ItemType]int

// NewBundle returns an empty, writable bundle.
func NewBundle() Bundle {
	return make(Bundle)
}

// Get returns the quantity of item t, zero if absent.
func (b Bundle) Get(t ItemType) int {
	return b[t]
}

// AddItem adds n of item t. Zero and negative additions are ignored.
func (b Bundle) AddItem(t ItemType, n int) {
	if n <= 0 {
		return
	}
	b[t] += n
}

// Add merges other into b by pointwise addition.
func (b Bundle) Add(other Bundle) {
	for t, n := range other {
		b.AddItem(t, n)
	}
}

// Clone returns a writable copy of b.
func (b Bundle) Clone() Bundle {
	c := make(Bundle, len(b))
	maps.Copy(c, b)
	return c
}

// Covers reports whether b has at least the quantity of every item in req.
func (b Bundle) Covers(req Bundle) bool {
	for t, n := range req {
		if b[t] < n {
			return false
		}
	}
	return true
}

// Total returns the sum of all item quantities.
func (b Bundle) Total() int {
	sum := 0
	for _, n := range b {
		sum += n
	}
	return sum
}

// IsEmpty reports whether b holds no items.
func (b Bundle) IsEmpty() bool {
	return b.Total() == 0
}
