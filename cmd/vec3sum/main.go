package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/viant/vec3/additive"
	"github.com/viant/vec3/engine"
	"github.com/viant/vec3/vector"
)

var (
	useSQL  = flag.Bool("sql", false, "Also evaluate the sum with the vec3_sum SQLite aggregate")
	dsn     = flag.String("dsn", engine.MemoryDSN, "SQLite DSN used with -sql")
	verbose = flag.Bool("v", false, "Log progress to stderr")
)

// zeroMessage is printed when the computed sum is the zero vector.
const zeroMessage = "😄"

func main() {
	flag.Parse()
	setupLogging(*verbose, os.Stderr)

	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vec3sum: %v\n", err)
		os.Exit(1)
	}
}

// run computes the sum, optionally cross-checks it through SQLite, and
// reports to w.
func run(ctx context.Context, w io.Writer) error {
	sum := additive.Sum(terms())
	log.Printf("sum = %v", sum)

	if *useSQL {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		sqlSum, err := sumSQL(ctx, *dsn)
		if err != nil {
			return fmt.Errorf("sql sum failed: %w", err)
		}
		log.Printf("sql sum = %v", sqlSum)
		if sqlSum != sum {
			return fmt.Errorf("sql sum %v differs from %v", sqlSum, sum)
		}
	}

	report(w, sum)
	return nil
}

// setupLogging routes the standard logger to w when enabled and discards
// output otherwise.
func setupLogging(enabled bool, w io.Writer) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !enabled {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
}

// terms returns (1,2,3), (4,3,2)-(2,2,2) and 3*-(1,1,1).
func terms() []vector.Vector3D {
	return []vector.Vector3D{
		vector.New(1, 2, 3),
		vector.New(4, 3, 2).Sub(vector.New(2, 2, 2)),
		vector.Scale(3, vector.New(1, 1, 1).Neg()),
	}
}

func report(w io.Writer, sum vector.Vector3D) {
	if additive.IsZero(sum) {
		fmt.Fprintln(w, zeroMessage)
	}
}
