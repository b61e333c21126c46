package calcy_test

import (
	"fmt"

	"github.com/zephyrtronium/calcy"
	"github.com/zephyrtronium/calcy/decimal"
)

func ExampleSolve() {
	vars := map[string]float64{"a": 2, "b": 3}
	r, err := calcy.Solve[float64](calcy.Float[float64]{}, "ab + (a+b)2", vars)
	fmt.Println(r, err)

	_, err = calcy.Solve[float64](calcy.Float[float64]{}, "6/", nil)
	fmt.Println(err)

	// Output:
	// 16 <nil>
	// 2: missing operand for "/"
}

func ExampleDecimal() {
	d := calcy.Decimal{}
	r, err := calcy.Solve[decimal.Decimal](d, "0.1 + 0.2", nil)
	fmt.Println(d.Format(r), err)

	_, err = calcy.Solve[decimal.Decimal](d, "0.1 * 0.2", nil)
	fmt.Println(err)

	// Output:
	// 0.3 <nil>
	// operator * is not implemented for decimal
}

func ExampleBuildTree() {
	d := calcy.Float[float64]{}
	toks, _ := calcy.Tokenize[float64](d, "10-3-2")
	e, _ := calcy.BuildTree(toks)
	r, _ := e.Eval(d, nil)
	fmt.Println(e, r)

	// Output:
	// ([(10) - (3)] - [2]) 5
}
