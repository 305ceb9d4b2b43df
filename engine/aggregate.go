package engine

import (
	"database/sql/driver"

	"github.com/viant/vec3/additive"
	"github.com/viant/vec3/vector"
	sqlite "modernc.org/sqlite"
)

// sumAggregate implements vec3_sum: a left fold by vector addition starting
// from the zero vector. NULL rows are skipped. The frame is kept in arrival
// order so that, as a window function, rows leaving the frame are dropped
// and the remaining rows re-summed; subtracting them back out is not exact
// for IEEE values (Inf - Inf is NaN).
type sumAggregate struct {
	frame []vector.Vector3D
	// nulls holds one flag per stepped row so WindowInverse removes the
	// same row that Step added, NULL or not.
	nulls []bool
}

func newSumAggregate(_ sqlite.FunctionContext) (sqlite.AggregateFunction, error) {
	return &sumAggregate{}, nil
}

func (s *sumAggregate) Step(_ *sqlite.FunctionContext, rowArgs []driver.Value) error {
	if err := checkArgs("vec3_sum", rowArgs, 1); err != nil {
		return err
	}
	v, ok, err := asVector("vec3_sum", rowArgs[0])
	if err != nil {
		return err
	}
	s.frame = append(s.frame, v)
	s.nulls = append(s.nulls, !ok)
	return nil
}

func (s *sumAggregate) WindowInverse(_ *sqlite.FunctionContext, _ []driver.Value) error {
	if len(s.frame) == 0 {
		return nil
	}
	s.frame = s.frame[1:]
	s.nulls = s.nulls[1:]
	return nil
}

func (s *sumAggregate) WindowValue(_ *sqlite.FunctionContext) (driver.Value, error) {
	return vector.Encode(additive.SumSeq[vector.Vector3D](s.values)), nil
}

func (s *sumAggregate) Final(_ *sqlite.FunctionContext) {}

// values yields the non-NULL vectors of the frame in arrival order.
func (s *sumAggregate) values(yield func(vector.Vector3D) bool) {
	for i, v := range s.frame {
		if s.nulls[i] {
			continue
		}
		if !yield(v) {
			return
		}
	}
}
