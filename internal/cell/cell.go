// Package cell implements the value slot shared by the memo types.
package cell

// Cell holds an optional value.
// A Cell is either fresh (holding a value)
// or stale (empty). The zero value is stale.
type Cell[Value any] struct {
	value Value
	fresh bool
}

// Clear makes the cell stale.
// The held value is zeroed so it may be collected.
func (c *Cell[Value]) Clear() {
	var zero Value
	c.value = zero
	c.fresh = false
}

// Fresh reports whether the cell holds a value.
func (c *Cell[Value]) Fresh() bool { return c.fresh }

// Store overwrites the held value and makes the cell fresh.
func (c *Cell[Value]) Store(value Value) {
	c.value = value
	c.fresh = true
}

// Load returns the held value if the cell is fresh;
// otherwise it returns the zero value and false.
func (c *Cell[Value]) Load() (Value, bool) {
	return c.value, c.fresh
}
