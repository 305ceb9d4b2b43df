package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/viant/vec3/additive"
)

var samples = []Vector3D{
	New(1, 2, 3),
	New(-4.5, 0.25, 8),
	New(0, -1, 1e6),
	New(0.5, 0.125, -0.75),
	Zero,
}

func TestAdd_CommutativeAssociative(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got, want := a.Add(b), b.Add(a); got != want {
				t.Fatalf("%v+%v = %v, want %v", a, b, got, want)
			}
			for _, c := range samples {
				if got, want := a.Add(b).Add(c), a.Add(b.Add(c)); got != want {
					t.Fatalf("(%v+%v)+%v = %v, want %v", a, b, c, got, want)
				}
			}
		}
	}
}

func TestIdentityAndInverse(t *testing.T) {
	for _, v := range samples {
		if got := v.Add(Zero); got != v {
			t.Fatalf("%v+0 = %v", v, got)
		}
		if got := v.Add(v.Neg()); got != Zero {
			t.Fatalf("%v+(-v) = %v, want zero", v, got)
		}
		if got := additive.Negate(v); got != v.Neg() {
			t.Fatalf("additive.Negate(%v) = %v, want %v", v, got, v.Neg())
		}
	}
}

func TestSub_IsAddNegated(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got, want := a.Sub(b), a.Add(b.Neg()); got != want {
				t.Fatalf("%v-%v = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestScale_BothCallShapes(t *testing.T) {
	for _, v := range samples {
		for _, k := range []Scalar{0, 1, -1, 3, 0.5, -2.75} {
			if got, want := Scale(k, v), v.Mul(k); got != want {
				t.Fatalf("Scale(%v,%v) = %v, v.Mul = %v", k, v, got, want)
			}
		}
	}
	if got, want := Scale(3, New(1, 2, 3)), New(3, 6, 9); got != want {
		t.Fatalf("3*(1,2,3) = %v, want %v", got, want)
	}
}

func TestNeg_OfZeroIsPositiveZero(t *testing.T) {
	n := Zero.Neg()
	for i, c := range n.Components() {
		if math.Signbit(float64(c)) {
			t.Fatalf("component %d of -Zero has sign bit set", i)
		}
	}
}

func TestEqual(t *testing.T) {
	if !New(1, 2, 3).Equal(New(1, 2, 3)) {
		t.Fatalf("expected (1,2,3) == (1,2,3)")
	}
	if New(1, 2, 3).Equal(New(1, 2, 3.0001)) {
		t.Fatalf("expected exact comparison")
	}
	nan := Scalar(math.NaN())
	v := New(nan, 0, 0)
	if v.Equal(v) {
		t.Fatalf("vector with NaN must not equal itself")
	}
	negZero := Scalar(math.Copysign(0, -1))
	if !New(negZero, 0, 0).Equal(Zero) {
		t.Fatalf("-0 component should equal 0")
	}
}

func TestString(t *testing.T) {
	inf := Scalar(math.Inf(1))
	tests := []struct {
		v    Vector3D
		want string
	}{
		{New(1, 2, 3), "(1,2,3)"},
		{Zero, "(0,0,0)"},
		{New(0.5, -1, 0.1), "(0.5,-1,0.1)"},
		{New(1e10, -2.5e-7, 100), "(1e+10,-2.5e-07,100)"},
		{New(Scalar(math.NaN()), inf, -inf), "(NaN,+Inf,-Inf)"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String(%#v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestSum_Scenario(t *testing.T) {
	values := []Vector3D{
		New(1, 2, 3),
		New(4, 3, 2).Sub(New(2, 2, 2)),
		Scale(3, New(1, 1, 1).Neg()),
	}
	if got, want := values[1], New(2, 1, 0); got != want {
		t.Fatalf("(4,3,2)-(2,2,2) = %v, want %v", got, want)
	}
	if got, want := values[2], New(-3, -3, -3); got != want {
		t.Fatalf("3*-(1,1,1) = %v, want %v", got, want)
	}
	sum := additive.Sum(values)
	if sum != Zero || !sum.IsZero() {
		t.Fatalf("sum = %v, want %v", sum, Zero)
	}
	if got := Sum(values...); got != sum {
		t.Fatalf("vector.Sum = %v, want %v", got, sum)
	}
}

func TestSum_Empty(t *testing.T) {
	if got := additive.Sum[Vector3D](nil); got != Zero {
		t.Fatalf("Sum(nil) = %v, want zero", got)
	}
	if got := Sum(); got != Zero {
		t.Fatalf("Sum() = %v, want zero", got)
	}
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice([]float32{1, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if v != New(1, 2, 3) {
		t.Fatalf("FromSlice = %v", v)
	}
	if _, err := FromSlice([]float32{1, 2}); !errors.Is(err, ErrDimension) {
		t.Fatalf("FromSlice(len 2) err = %v, want ErrDimension", err)
	}
}
