package additive

import "iter"

// Arithmetic is satisfied by value types that provide an additive identity
// and closed addition and subtraction. Addition is expected to be
// associative with Zero as its identity; this is not checked at runtime.
type Arithmetic[T any] interface {
	comparable
	// Zero returns the additive identity. It must not depend on the receiver.
	Zero() T
	// Add returns the receiver plus o.
	Add(o T) T
	// Sub returns the receiver minus o.
	Sub(o T) T
}

// Sum folds values left to right by addition, starting from the zero
// value. An empty or nil slice yields zero.
func Sum[T Arithmetic[T]](values []T) T {
	var seed T
	acc := seed.Zero()
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// SumSeq is Sum over an iterator.
func SumSeq[T Arithmetic[T]](seq iter.Seq[T]) T {
	var seed T
	acc := seed.Zero()
	if seq == nil {
		return acc
	}
	for v := range seq {
		acc = acc.Add(v)
	}
	return acc
}

// Negate returns the additive inverse of v, computed as zero minus v.
func Negate[T Arithmetic[T]](v T) T {
	return v.Zero().Sub(v)
}

// IsZero reports whether v equals the additive identity.
func IsZero[T Arithmetic[T]](v T) bool {
	return v == v.Zero()
}
