package main

import (
	"context"
	"fmt"

	"github.com/viant/vec3/engine"
	"github.com/viant/vec3/vector"
)

// sumSQL evaluates the same terms inside SQLite and folds them with vec3_sum.
func sumSQL(ctx context.Context, dsn string) (vector.Vector3D, error) {
	db, err := engine.Open(dsn)
	if err != nil {
		return vector.Zero, err
	}
	defer db.Close()

	var blob []byte
	err = db.QueryRowContext(ctx, `SELECT vec3_sum(v) FROM (
		SELECT vec3(1, 2, 3) AS v
		UNION ALL SELECT vec3_sub(vec3(4, 3, 2), vec3(2, 2, 2))
		UNION ALL SELECT vec3_scale(3, vec3_neg(vec3(1, 1, 1)))
	)`).Scan(&blob)
	if err != nil {
		return vector.Zero, fmt.Errorf("vec3sum: query failed: %w", err)
	}
	v, ok, err := vector.Decode(blob)
	if err != nil {
		return vector.Zero, err
	}
	if !ok {
		return vector.Zero, fmt.Errorf("vec3sum: vec3_sum returned NULL")
	}
	return v, nil
}
