package additive

import "golang.org/x/exp/constraints"

// Number adapts a built-in integer or floating-point value to Arithmetic.
type Number[N constraints.Integer | constraints.Float] struct {
	Value N
}

// Num wraps n.
func Num[N constraints.Integer | constraints.Float](n N) Number[N] {
	return Number[N]{Value: n}
}

func (n Number[N]) Zero() Number[N] { return Number[N]{} }

func (n Number[N]) Add(o Number[N]) Number[N] { return Number[N]{Value: n.Value + o.Value} }

func (n Number[N]) Sub(o Number[N]) Number[N] { return Number[N]{Value: n.Value - o.Value} }

// Numbers wraps each element of values.
func Numbers[N constraints.Integer | constraints.Float](values ...N) []Number[N] {
	out := make([]Number[N], len(values))
	for i, v := range values {
		out[i] = Number[N]{Value: v}
	}
	return out
}
