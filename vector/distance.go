package vector

import (
	"fmt"

	"github.com/viant/vec/search"
)

// Dot returns the dot product of v and o.
func (v Vector3D) Dot(o Vector3D) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Magnitude returns the Euclidean norm of v.
func (v Vector3D) Magnitude() Scalar {
	return search.Float32s(v.Slice()).Magnitude()
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3D) Distance(o Vector3D) Scalar {
	return search.Float32s(v.Slice()).EuclideanDistance(o.Slice())
}

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error if either vector has zero magnitude.
func CosineSimilarity(a, b Vector3D) (float64, error) {
	ma, mb := a.Magnitude(), b.Magnitude()
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector")
	}
	d := search.Float32s(a.Slice()).CosineDistance(b.Slice())
	return 1 - float64(d), nil
}
