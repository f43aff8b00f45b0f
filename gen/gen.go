// Package gen generates random partial Cartesian products.
//
// Every function takes the random source as an argument, so a dataset can be
// reproduced from its seed.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/jonlawlor/cartesian"
)

// ErrInvalidConfig is returned when a Config cannot produce a table.
var ErrInvalidConfig = errors.New("gen: invalid config")

// Config describes the shape of a generated table.
type Config struct {
	// Columns is the degree of the generated tuples.
	Columns int

	// MaxValues bounds the number of values drawn for each column domain.
	MaxValues int

	// Lo and Hi bound the values themselves, inclusive.
	Lo int64
	Hi int64
}

// DefaultConfig returns a config whose tables are small enough to search
// exhaustively: 2 columns of up to 4 values in [1, 100].
func DefaultConfig() Config {
	return Config{
		Columns:   2,
		MaxValues: 4,
		Lo:        1,
		Hi:        100,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if c cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Columns < 1:
		return fmt.Errorf("%w: columns %d < 1", ErrInvalidConfig, c.Columns)
	case c.MaxValues < 1:
		return fmt.Errorf("%w: max values %d < 1", ErrInvalidConfig, c.MaxValues)
	case c.Lo > c.Hi:
		return fmt.Errorf("%w: range [%d, %d] is empty", ErrInvalidConfig, c.Lo, c.Hi)
	case uint64(c.Hi)-uint64(c.Lo) >= math.MaxInt64:
		// RandomSet draws from hi-lo+1 values, which must fit an int64
		return fmt.Errorf("%w: range [%d, %d] is too wide", ErrInvalidConfig, c.Lo, c.Hi)
	}
	return nil
}

// RandomSet draws between 1 and maxValues values uniformly from [lo, hi].
// Values drawn more than once are kept once, so the set can be smaller than
// the number of draws.  maxValues must be positive, lo <= hi, and hi-lo must
// be less than math.MaxInt64; Config.Validate checks all three.
func RandomSet(rng *rand.Rand, maxValues int, lo, hi int64) cartesian.Set {
	n := rng.Intn(maxValues) + 1
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = lo + rng.Int63n(hi-lo+1)
	}
	return cartesian.NewSet(vals...)
}

// Sets draws one domain per column.
func Sets(rng *rand.Rand, cfg Config) ([]cartesian.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sets := make([]cartesian.Set, cfg.Columns)
	for i := range sets {
		sets[i] = RandomSet(rng, cfg.MaxValues, cfg.Lo, cfg.Hi)
	}
	return sets, nil
}

// Table returns the full product of randomly drawn column domains, and a
// reduced copy of it with a random number of rows removed.  Fewer than half
// of the rows are removed, chosen uniformly without replacement, and the
// reduced table keeps the order of the full one.
func Table(rng *rand.Rand, cfg Config) (full, reduced cartesian.Rows, err error) {
	sets, err := Sets(rng, cfg)
	if err != nil {
		return nil, nil, err
	}
	full = cartesian.Product(sets...)
	return full, Reduce(rng, full), nil
}

// Reduce removes a uniformly random number in [0, len(rows)/2) of randomly
// chosen rows.  Nothing is removed from fewer than 4 rows.  The result is
// always a new collection.
func Reduce(rng *rand.Rand, rows cartesian.Rows) cartesian.Rows {
	half := len(rows) / 2
	if half == 0 {
		return rows.Without()
	}
	k := rng.Intn(half)
	return rows.Without(rng.Perm(len(rows))[:k]...)
}
