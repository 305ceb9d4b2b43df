// Package vector defines Vector3D, a three-component float32 value type with
// additive arithmetic, and the helpers used to pass vectors through SQLite.
// It includes:
//   - Vector3D algebra (Add, Sub, Neg, Scale/Mul, Equal) and its "(x,y,z)" text form
//   - Vector BLOB encoding (12 bytes, little-endian float32 x, y, z)
//   - Distance and similarity helpers
//
// Vector3D satisfies additive.Arithmetic, so additive.Sum works on slices
// and iterators of vectors.
package vector
