//go:build memo_debug

package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}

// guard records a fingerprint of a borrowed parameter
// so later accesses can detect outside mutation.
type guard[Param any] struct {
	sum uint64
}

func fingerprint[Param any](param *Param) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%#v", *param))
}

func (g *guard[Param]) seal(param *Param) {
	g.sum = fingerprint(param)
}

func (g *guard[Param]) check(param *Param) {
	assert(g.sum == fingerprint(param),
		"borrowed parameter was mutated while referenced by Once")
}
