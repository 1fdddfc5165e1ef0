package memo

import "github.com/djdv/go-memo/internal/cell"

// Ext memoizes a Value whose parameter is provided
// externally with every call that may compute.
//
// Ext does not know which parameter its cached value was
// computed from. If the parameter changes, the caller must
// call [Ext.Clear]; otherwise [Ext.Get] silently returns the
// value computed from the previous parameter.
// Prefer [Memo] or [Once] unless this flexibility is needed.
//
// The zero value is an empty Ext ready for use.
// Concurrent access must be guarded by the caller.
type Ext[Value Memoizer[Param, Value], Param any] struct {
	cell cell.Cell[Value]
}

// NewExt returns an empty [Ext].
func NewExt[Value Memoizer[Param, Value], Param any]() Ext[Value, Param] {
	return Ext[Value, Param]{}
}

// Clear discards any cached value.
// It must be called whenever the cached value is no longer valid
// for the parameter that will be passed next.
func (m *Ext[_, _]) Clear() { m.cell.Clear() }

// IsReady reports whether a value is cached.
// If true, the next call to [Ext.Get] will not compute.
func (m *Ext[_, _]) IsReady() bool { return m.cell.Fresh() }

// Ready computes and caches the value from param,
// if no value is cached.
func (m *Ext[Value, Param]) Ready(param Param) {
	if !m.cell.Fresh() {
		fill(&m.cell, param)
	}
}

// Update computes the value from param and caches it,
// replacing any cached value.
// Calling [Ext.Clear] is usually preferable,
// since it defers the computation until it is needed.
func (m *Ext[Value, Param]) Update(param Param) {
	fill(&m.cell, param)
}

// Get returns the cached value, computing it from
// param first if no value is cached.
//
// If a value is cached, param is ignored,
// even if it is not the parameter the value was computed from.
func (m *Ext[Value, Param]) Get(param Param) Value {
	m.Ready(param)
	return load(&m.cell)
}

// TryGet returns the cached value if there is one;
// otherwise it returns the zero value and false.
// It never computes.
func (m *Ext[Value, _]) TryGet() (Value, bool) {
	return m.cell.Load()
}
