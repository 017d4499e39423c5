package decimal_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/puredec/decimal"
)

func ExampleParse() {
	d, err := decimal.Parse("1.234")
	fmt.Println(d, err)
	// Output: 1.234 <nil>
}

func ExampleParse_nonFinite() {
	_, err := decimal.Parse("Infinity")
	fmt.Println(errors.Is(err, decimal.ErrInvalidValue))
	// Output: true
}

func ExampleMustParse() {
	d := decimal.MustParse("-1.5")
	fmt.Println(d.Abs())
	// Output: 1.5
}

func ExampleDecimal_Add() {
	a := decimal.MustParse("1.234")
	b := decimal.MustParse("1.111")
	sum, err := a.Add(b)
	fmt.Println(sum, err)
	// Output: 2.345 <nil>
}

func ExampleDecimal_Quo() {
	_, err := decimal.One().Quo(decimal.Zero())
	fmt.Println(errors.Is(err, decimal.ErrInvalidValue))
	// Output: true
}

func ExampleSum() {
	total, _ := decimal.Sum(
		decimal.MustParse("1"),
		decimal.MustParse("2"),
		decimal.MustParse("3"),
		decimal.MustParse("4"),
	)
	fmt.Println(total)
	// Output: 10
}

// All live values are finite, so Cmp is a total order and decimals can be
// sorted directly.
func ExampleDecimal_Cmp() {
	ds := []decimal.Decimal{
		decimal.MustParse("2.5"),
		decimal.MustParse("-1"),
		decimal.MustParse("0.1"),
	}
	slices.SortFunc(ds, decimal.Decimal.Cmp)
	fmt.Println(ds)
	// Output: [-1 0.1 2.5]
}

// Equal values share one key regardless of scale, so a map keyed by Key
// behaves like a map keyed by numeric value.
func ExampleDecimal_Key() {
	balances := map[string]string{}
	balances[decimal.MustParse("1.0").Key()] = "first"
	balances[decimal.MustParse("1").Key()] = "second"

	fmt.Println(len(balances))
	fmt.Println(balances[decimal.MustParse("1.00").Key()])
	// Output:
	// 1
	// second
}
