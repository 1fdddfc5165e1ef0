package memo_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/djdv/go-memo"
)

type (
	sum      int
	length   int
	repeater string
	// repeat combines multiple inputs into one parameter.
	repeat struct {
		text  string
		count int
	}
	// parsed carries the failure of its computation.
	parsed struct {
		value int
		err   error
	}
)

func (sum) Memoize(values []int) sum {
	fmt.Println("summing", values)
	var total sum
	for _, value := range values {
		total += sum(value)
	}
	return total
}

func (length) Memoize(text string) length {
	return length(len(text))
}

func (repeater) Memoize(p repeat) repeater {
	return repeater(strings.Repeat(p.text, p.count))
}

func (parsed) Memoize(text string) parsed {
	value, err := strconv.Atoi(text)
	return parsed{value: value, err: err}
}

func ExampleMemo() {
	sums := memo.New[sum]([]int{1, 2})
	fmt.Println(sums.Get())
	fmt.Println(sums.Get()) // Cached.

	values := sums.ParamMut()
	*values = append(*values, 3)
	sums.UpdateParam(func(values *[]int) {
		*values = append(*values, 4)
	})
	fmt.Println(sums.Get())
	// Output:
	// summing [1 2]
	// 3
	// 3
	// summing [1 2 3 4]
	// 10
}

func ExampleExt() {
	var lengths memo.Ext[length, string]
	fmt.Println(lengths.Get("four"))
	// The cached value is returned,
	// since Clear was not called.
	fmt.Println(lengths.Get("eleven"))
	lengths.Clear()
	fmt.Println(lengths.Get("eleven"))
	// Output:
	// 4
	// 4
	// 6
}

func ExampleOnce() {
	text := "My length is important!"
	{
		textLength, err := memo.NewOnce[length](&text)
		if err != nil {
			panic(err) // TODO(Anyone): Handle error.
		}
		fmt.Println(textLength.Get())
		fmt.Println(textLength.IsReady())
	}
	// textLength is out of scope; text may be modified again.
	text += " Not anymore!"
	fmt.Println(len(text))
	// Output:
	// 23
	// true
	// 36
}

func ExampleMemoizer() {
	repeated := memo.New[repeater](repeat{text: "abc", count: 3})
	fmt.Println(repeated.Get())
	// Output:
	// abcabcabc
}

func ExampleMemoizer_failure() {
	number := memo.New[parsed]("forty-two")
	if result := number.Get(); result.err != nil {
		fmt.Println("invalid:", number.Param())
	}
	*number.ParamMut() = "42"
	if result := number.Get(); result.err == nil {
		fmt.Println("parsed:", result.value)
	}
	// Output:
	// invalid: forty-two
	// parsed: 42
}
