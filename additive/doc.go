// Package additive defines the additive-arithmetic capability (a zero
// identity plus addition and subtraction) and generic reductions written
// once against it. Any comparable type exposing Zero, Add and Sub can be
// summed; the vector package provides the 3D vector implementation and
// Number adapts the built-in numeric types.
package additive
