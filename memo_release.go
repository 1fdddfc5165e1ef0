//go:build !memo_debug

package memo

const debugging = false

func assert(bool, string) {}

type guard[Param any] struct{}

func (*guard[Param]) seal(*Param)  {}
func (*guard[Param]) check(*Param) {}
