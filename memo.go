package memo

import "github.com/djdv/go-memo/internal/cell"

// Memo memoizes a Value computed from a Param that it owns.
//
// The parameter may only be changed through [Memo.ParamMut]
// or [Memo.UpdateParam], both of which discard the cached value,
// whether or not the parameter is actually modified.
//
// The zero value is an empty Memo holding the zero Param.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Memo[Value Memoizer[Param, Value], Param any] struct {
	cell  cell.Cell[Value]
	param Param
}

// New returns an empty [Memo] that owns param.
func New[Value Memoizer[Param, Value], Param any](param Param) Memo[Value, Param] {
	return Memo[Value, Param]{param: param}
}

// Clear discards any cached value.
func (m *Memo[_, _]) Clear() { m.cell.Clear() }

// IsReady reports whether a value is cached.
// If true, the next call to [Memo.Get] will not compute.
func (m *Memo[_, _]) IsReady() bool { return m.cell.Fresh() }

// Ready computes and caches the value if none is cached.
func (m *Memo[Value, Param]) Ready() {
	if !m.cell.Fresh() {
		fill(&m.cell, m.param)
	}
}

// Update computes the value and caches it,
// replacing any cached value.
// Calling [Memo.Clear] is usually preferable,
// since it defers the computation until it is needed.
func (m *Memo[Value, Param]) Update() {
	fill(&m.cell, m.param)
}

// Get returns the cached value,
// computing it first if no value is cached.
func (m *Memo[Value, _]) Get() Value {
	m.Ready()
	return load(&m.cell)
}

// TryGet returns the cached value if there is one;
// otherwise it returns the zero value and false.
// It never computes.
func (m *Memo[Value, _]) TryGet() (Value, bool) {
	return m.cell.Load()
}

// Param returns the parameter.
// The cached value is not affected.
//
// Param values which share memory (slices, maps, pointers)
// must not be modified through the returned copy;
// use [Memo.ParamMut] or [Memo.UpdateParam] instead.
func (m *Memo[_, Param]) Param() Param { return m.param }

// ParamMut discards any cached value and returns
// a pointer to the parameter.
//
// The pointer should not be retained; modifications made
// after a subsequent computation are not observed by the cache.
func (m *Memo[_, Param]) ParamMut() *Param {
	m.cell.Clear()
	return &m.param
}

// UpdateParam discards any cached value and
// calls op with a pointer to the parameter.
func (m *Memo[_, Param]) UpdateParam(op func(*Param)) {
	m.cell.Clear()
	op(&m.param)
}
