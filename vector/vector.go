package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/vec3/additive"
)

// Scalar is the component type of Vector3D.
type Scalar = float32

// Vector3D is an immutable 3D vector. All operations return new values;
// compound assignment is written as rebinding, e.g. v = v.Add(w).
type Vector3D struct {
	X, Y, Z Scalar
}

// Zero is the additive identity (0,0,0).
var Zero = Vector3D{}

// ErrDimension is returned when a slice does not hold exactly three components.
var ErrDimension = errors.New("vector: expected 3 components")

// New creates a vector from its components.
func New(x, y, z Scalar) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// FromSlice builds a vector from a 3-element slice.
func FromSlice(components []float32) (Vector3D, error) {
	if len(components) != 3 {
		return Zero, fmt.Errorf("%w, got %d", ErrDimension, len(components))
	}
	return Vector3D{components[0], components[1], components[2]}, nil
}

// Zero returns the additive identity.
func (v Vector3D) Zero() Vector3D { return Zero }

// IsZero reports whether all components equal zero.
func (v Vector3D) IsZero() bool { return v == Zero }

// Add returns the component-wise sum.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns Zero minus v, so negating (0,0,0) yields positive zeros.
func (v Vector3D) Neg() Vector3D {
	return Zero.Sub(v)
}

// Mul scales v by k; v.Mul(k) == Scale(k, v).
func (v Vector3D) Mul(k Scalar) Vector3D {
	return Scale(k, v)
}

// Scale multiplies every component of v by k.
func Scale(k Scalar, v Vector3D) Vector3D {
	return Vector3D{k * v.X, k * v.Y, k * v.Z}
}

// Equal compares components exactly; vectors holding NaN are never equal.
func (v Vector3D) Equal(o Vector3D) bool {
	return v == o
}

// Components returns x, y and z as an array.
func (v Vector3D) Components() [3]Scalar {
	return [3]Scalar{v.X, v.Y, v.Z}
}

// Slice returns the components as a new slice.
func (v Vector3D) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// String renders the vector as "(x,y,z)" using the shortest float32
// representation of each component.
func (v Vector3D) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteByte('(')
	sb.WriteString(formatScalar(v.X))
	sb.WriteByte(',')
	sb.WriteString(formatScalar(v.Y))
	sb.WriteByte(',')
	sb.WriteString(formatScalar(v.Z))
	sb.WriteByte(')')
	return sb.String()
}

func formatScalar(s Scalar) string {
	return strconv.FormatFloat(float64(s), 'g', -1, 32)
}

// Sum adds vectors in order starting from Zero. It is additive.Sum
// instantiated for Vector3D.
func Sum(vectors ...Vector3D) Vector3D {
	return additive.Sum(vectors)
}
