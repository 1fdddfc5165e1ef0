package memo

import "github.com/djdv/go-memo/internal/cell"

// Memoizer describes how to compute a Value from a Param.
//
// The memo types expect the output type to implement
// Memoizer on itself; i.e. a cache over `V` requires
// `V Memoizer[P, V]`. Memoize is called on the zero value
// of `V`, so it must not depend on its receiver.
//
// Memoize must be a pure function of its parameter.
// Results are reused for as long as the cache considers
// the parameter unchanged, so hidden inputs (clocks, globals, I/O)
// will produce stale values.
//
// There is no error channel. A computation which can fail
// should carry the failure in its output type.
//
// Multiple inputs may be combined in a struct Param.
// Param may also be a slice or string to compute over a view.
type Memoizer[Param, Value any] interface {
	Memoize(Param) Value
}

func compute[Value Memoizer[Param, Value], Param any](param Param) Value {
	var computation Value
	return computation.Memoize(param)
}

// fill computes and stores a new value in c.
func fill[Value Memoizer[Param, Value], Param any](c *cell.Cell[Value], param Param) {
	c.Store(compute[Value](param))
	if debugging {
		assert(c.Fresh(), "cell is stale after store")
	}
}

// load returns the value held in c, which must be fresh.
func load[Value any](c *cell.Cell[Value]) Value {
	value, ok := c.Load()
	if debugging {
		assert(ok, "load from a stale cell")
	}
	return value
}
