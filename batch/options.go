package batch

import (
	"github.com/jonlawlor/cartesian/casefile"
	"github.com/jonlawlor/cartesian/gen"
)

// Defaults used when the corresponding option is not given.
const (
	DefaultCases    = 10
	DefaultPrefix   = "test"
	DefaultErrorLog = "errors.txt"
	DefaultMaxRows  = 20
)

type options struct {
	cases    int
	cfg      gen.Config
	seed     int64
	store    *casefile.Store
	logger   *Logger
	maxRows  int
	prefix   string
	errorLog string
}

func defaultOptions() options {
	return options{
		cases:    DefaultCases,
		cfg:      gen.DefaultConfig(),
		seed:     1,
		logger:   NoopLogger(),
		maxRows:  DefaultMaxRows,
		prefix:   DefaultPrefix,
		errorLog: DefaultErrorLog,
	}
}

// Option configures a Runner.
type Option func(*options)

// WithCases sets the number of cases generated by a run.
func WithCases(n int) Option {
	return func(o *options) {
		o.cases = n
	}
}

// WithConfig sets the shape of the generated tables.
func WithConfig(cfg gen.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithSeed sets the seed of the random source.  Runs with the same seed and
// config generate the same cases.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithStore sets where case files and the error log are written.  Without a
// store nothing is written to disk.
func WithStore(s *casefile.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithLogger sets the logger.  If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxRows bounds the number of distinct rows a case may have.  Larger
// cases are recorded as failures without being searched, since the search
// visits up to 2^n subsets.  Values above cartesian.MaxRows have no effect.
func WithMaxRows(n int) Option {
	return func(o *options) {
		o.maxRows = n
	}
}

// WithPrefix sets the prefix of case ids.  Case i of a run has id prefix+i,
// counting from 1.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithErrorLog sets the name of the file in the store that lists failed case
// ids.
func WithErrorLog(name string) Option {
	return func(o *options) {
		o.errorLog = name
	}
}
