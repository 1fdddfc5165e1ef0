package memo

import "github.com/djdv/go-memo/internal/cell"

// Once memoizes a Value computed from a Param that it
// references but does not own. It is intended for short-lived,
// one-off computations over data owned elsewhere.
//
// The referenced parameter must not be modified while the
// Once is in use; Once has no way to observe such changes.
// Builds with the `memo_debug` tag panic on access
// if the parameter was modified after construction.
//
// Concurrent access must be guarded by the caller.
// Constructed by [NewOnce].
type Once[Value Memoizer[Param, Value], Param any] struct {
	guard guard[Param]
	cell  cell.Cell[Value]
	param *Param
}

// NewOnce returns an empty [Once] that references param.
// param must not be nil.
func NewOnce[Value Memoizer[Param, Value], Param any](param *Param) (Once[Value, Param], error) {
	if param == nil {
		return Once[Value, Param]{}, nilParamError[Param]()
	}
	memo := Once[Value, Param]{param: param}
	memo.guard.seal(param)
	return memo, nil
}

// Clear discards any cached value.
func (m *Once[_, _]) Clear() { m.cell.Clear() }

// IsReady reports whether a value is cached.
// If true, the next call to [Once.Get] will not compute.
func (m *Once[_, _]) IsReady() bool { return m.cell.Fresh() }

// Ready computes and caches the value if none is cached.
func (m *Once[Value, Param]) Ready() {
	m.guard.check(m.param)
	if !m.cell.Fresh() {
		fill(&m.cell, *m.param)
	}
}

// Update computes the value and caches it,
// replacing any cached value.
// Calling [Once.Clear] is usually preferable,
// since it defers the computation until it is needed.
func (m *Once[Value, Param]) Update() {
	m.guard.check(m.param)
	fill(&m.cell, *m.param)
}

// Get returns the cached value,
// computing it first if no value is cached.
func (m *Once[Value, _]) Get() Value {
	m.Ready()
	return load(&m.cell)
}

// TryGet returns the cached value if there is one;
// otherwise it returns the zero value and false.
// It never computes.
func (m *Once[Value, _]) TryGet() (Value, bool) {
	m.guard.check(m.param)
	return m.cell.Load()
}

// Param returns the referenced parameter.
func (m *Once[_, Param]) Param() Param {
	m.guard.check(m.param)
	return *m.param
}
