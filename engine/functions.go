package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/vec3/vector"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers the vec3_* scalar functions and the
// vec3_sum aggregate with the driver so they are available on new
// connections opened after this call. Registration happens once per process;
// later calls return the outcome of the first.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() { registerErr = registerFunctions() })
	return registerErr
}

func registerFunctions() error {
	scalars := []struct {
		name  string
		nArgs int32
		fn    func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
	}{
		{"vec3", 3, vec3Impl},
		{"vec3_add", 2, vec3AddImpl},
		{"vec3_sub", 2, vec3SubImpl},
		{"vec3_neg", 1, vec3NegImpl},
		{"vec3_scale", 2, vec3ScaleImpl},
		{"vec3_equal", 2, vec3EqualImpl},
		{"vec3_text", 1, vec3TextImpl},
		{"vec3_x", 1, componentImpl("vec3_x", 0)},
		{"vec3_y", 1, componentImpl("vec3_y", 1)},
		{"vec3_z", 1, componentImpl("vec3_z", 2)},
		{"vec3_l2", 2, vec3L2Impl},
	}
	for _, f := range scalars {
		if err := sqlite.RegisterDeterministicScalarFunction(f.name, f.nArgs, f.fn); err != nil {
			return fmt.Errorf("vec3: register %s: %w", f.name, err)
		}
	}
	err := sqlite.RegisterFunction("vec3_sum", &sqlite.FunctionImpl{
		NArgs:         1,
		Deterministic: true,
		MakeAggregate: newSumAggregate,
	})
	if err != nil {
		return fmt.Errorf("vec3: register vec3_sum: %w", err)
	}
	return nil
}

// asVector decodes a BLOB argument. ok is false for NULL or empty BLOBs.
func asVector(name string, arg driver.Value) (vector.Vector3D, bool, error) {
	switch v := arg.(type) {
	case nil:
		return vector.Zero, false, nil
	case []byte:
		vec, ok, err := vector.Decode(v)
		if err != nil {
			return vector.Zero, false, fmt.Errorf("vec3: %s: %w", name, err)
		}
		return vec, ok, nil
	default:
		return vector.Zero, false, fmt.Errorf("vec3: %s: unsupported argument type %T for vector; want BLOB", name, arg)
	}
}

// asScalar converts an INTEGER or REAL argument. ok is false for NULL.
func asScalar(name string, arg driver.Value) (vector.Scalar, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return vector.Scalar(v), true, nil
	case float64:
		return vector.Scalar(v), true, nil
	default:
		return 0, false, fmt.Errorf("vec3: %s: unsupported argument type %T for scalar; want INTEGER or REAL", name, arg)
	}
}

func checkArgs(name string, args []driver.Value, n int) error {
	if len(args) != n {
		return fmt.Errorf("vec3: %s: expected %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func vec3Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := checkArgs("vec3", args, 3); err != nil {
		return nil, err
	}
	var c [3]vector.Scalar
	for i := range c {
		s, ok, err := asScalar("vec3", args[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		c[i] = s
	}
	return vector.Encode(vector.New(c[0], c[1], c[2])), nil
}

// binaryVectorOp adapts a vector operation taking two vectors.
func binaryVectorOp(name string, args []driver.Value, fn func(a, b vector.Vector3D) driver.Value) (driver.Value, error) {
	if err := checkArgs(name, args, 2); err != nil {
		return nil, err
	}
	a, okA, err := asVector(name, args[0])
	if err != nil {
		return nil, err
	}
	b, okB, err := asVector(name, args[1])
	if err != nil {
		return nil, err
	}
	if !okA || !okB {
		return nil, nil
	}
	return fn(a, b), nil
}

func vec3AddImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return binaryVectorOp("vec3_add", args, func(a, b vector.Vector3D) driver.Value {
		return vector.Encode(a.Add(b))
	})
}

func vec3SubImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return binaryVectorOp("vec3_sub", args, func(a, b vector.Vector3D) driver.Value {
		return vector.Encode(a.Sub(b))
	})
}

func vec3EqualImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return binaryVectorOp("vec3_equal", args, func(a, b vector.Vector3D) driver.Value {
		if a.Equal(b) {
			return int64(1)
		}
		return int64(0)
	})
}

func vec3L2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return binaryVectorOp("vec3_l2", args, func(a, b vector.Vector3D) driver.Value {
		return float64(a.Distance(b))
	})
}

func vec3NegImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := checkArgs("vec3_neg", args, 1); err != nil {
		return nil, err
	}
	v, ok, err := asVector("vec3_neg", args[0])
	if err != nil || !ok {
		return nil, err
	}
	return vector.Encode(v.Neg()), nil
}

// vec3ScaleImpl accepts both vec3_scale(k, v) and vec3_scale(v, k).
func vec3ScaleImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := checkArgs("vec3_scale", args, 2); err != nil {
		return nil, err
	}
	kArg, vArg := args[0], args[1]
	if _, isBlob := kArg.([]byte); isBlob {
		kArg, vArg = vArg, kArg
	}
	k, okK, err := asScalar("vec3_scale", kArg)
	if err != nil {
		return nil, err
	}
	v, okV, err := asVector("vec3_scale", vArg)
	if err != nil {
		return nil, err
	}
	if !okK || !okV {
		return nil, nil
	}
	return vector.Encode(vector.Scale(k, v)), nil
}

func vec3TextImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := checkArgs("vec3_text", args, 1); err != nil {
		return nil, err
	}
	v, ok, err := asVector("vec3_text", args[0])
	if err != nil || !ok {
		return nil, err
	}
	return v.String(), nil
}

func componentImpl(name string, idx int) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if err := checkArgs(name, args, 1); err != nil {
			return nil, err
		}
		v, ok, err := asVector(name, args[0])
		if err != nil || !ok {
			return nil, err
		}
		return float64(v.Components()[idx]), nil
	}
}
