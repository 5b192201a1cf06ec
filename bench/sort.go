// Package bench times the sorting algorithms and the deque stores
package bench

import (
	"context"
	"slices"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/go-deque/algorithm"
	"github.com/Laisky/go-deque/common"
	"github.com/Laisky/go-deque/log"
)

// InputShape how the unsorted input is laid out
type InputShape string

func (s InputShape) String() string {
	return string(s)
}

const (
	// ShapeRandom values drawn from [0, length)
	ShapeRandom InputShape = "random"
	// ShapeAscending 0..length-1
	ShapeAscending InputShape = "ascending"
	// ShapeDescending length-1..0
	ShapeDescending InputShape = "descending"
)

// Shapes all input shapes, in report order
var Shapes = []InputShape{ShapeRandom, ShapeAscending, ShapeDescending}

// DefaultLengths input lengths used when none is given
var DefaultLengths = []int{5, 10, 50, 100, 500, 1000, 10000}

// SortMeasurement one timed sort
type SortMeasurement struct {
	Length  int           `json:"length" yaml:"length" msgpack:"length"`
	Shape   InputShape    `json:"shape" yaml:"shape" msgpack:"shape"`
	Sorter  string        `json:"sorter" yaml:"sorter" msgpack:"sorter"`
	Elapsed time.Duration `json:"-" yaml:"-" msgpack:"-"`
	// Micros elapsed microseconds
	Micros int64 `json:"elapsed_us" yaml:"elapsed_us" msgpack:"elapsed_us"`
}

// SortReport result of RunSort
type SortReport struct {
	Seed         int64             `json:"seed" yaml:"seed" msgpack:"seed"`
	Order        common.SortOrder  `json:"order" yaml:"order" msgpack:"order"`
	Measurements []SortMeasurement `json:"measurements" yaml:"measurements" msgpack:"measurements"`
}

type sortOpt struct {
	lengths []int
	seed    int64
	order   common.SortOrder
	sorters []string
}

func (o *sortOpt) applyFuncs(optfs ...SortOptFunc) (*sortOpt, error) {
	for _, f := range optfs {
		if err := f(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// SortOptFunc option of RunSort
type SortOptFunc func(*sortOpt) error

// WithLengths set input lengths, each must be positive
func WithLengths(lengths ...int) SortOptFunc {
	return func(o *sortOpt) error {
		if len(lengths) == 0 {
			return errors.Errorf("lengths must not be empty")
		}

		for _, l := range lengths {
			if l <= 0 {
				return errors.Errorf("length must be positive, got %d", l)
			}
		}

		o.lengths = slices.Clone(lengths)
		return nil
	}
}

// WithSeed set seed of random inputs
func WithSeed(seed int64) SortOptFunc {
	return func(o *sortOpt) error {
		o.seed = seed
		return nil
	}
}

// WithSortOrder set direction of every sort
func WithSortOrder(order common.SortOrder) SortOptFunc {
	return func(o *sortOpt) error {
		switch order {
		case common.SortOrderAsc, common.SortOrderDesc:
		default:
			return errors.Errorf("unknown sort order %q", order)
		}

		o.order = order
		return nil
	}
}

// WithSorters only run sorters with these names
func WithSorters(names ...string) SortOptFunc {
	return func(o *sortOpt) error {
		if len(names) == 0 {
			return errors.Errorf("sorters must not be empty")
		}

		for _, name := range names {
			if !slices.ContainsFunc(algorithm.Sorters[int](), func(s algorithm.NamedSorter[int]) bool {
				return s.Name == name
			}) {
				return errors.Errorf("unknown sorter %q", name)
			}
		}

		o.sorters = slices.Clone(names)
		return nil
	}
}

// RunSort time every sorter against every length and input shape.
//
// Inputs of one length are generated concurrently, timings run one by one.
func RunSort(ctx context.Context, optfs ...SortOptFunc) (*SortReport, error) {
	opt, err := (&sortOpt{
		lengths: DefaultLengths,
		seed:    time.Now().UnixNano(),
		order:   common.SortOrderAsc,
	}).applyFuncs(optfs...)
	if err != nil {
		return nil, err
	}

	sorters := algorithm.Sorters[int]()
	if len(opt.sorters) != 0 {
		sorters = slices.DeleteFunc(sorters, func(s algorithm.NamedSorter[int]) bool {
			return !slices.Contains(opt.sorters, s.Name)
		})
	}

	logger := log.Shared.Named("bench_sort")
	logger.Debug("run sort benchmark",
		zap.Ints("lengths", opt.lengths),
		zap.Int64("seed", opt.seed),
		zap.String("order", opt.order.String()))

	report := &SortReport{
		Seed:  opt.seed,
		Order: opt.order,
	}
	for _, length := range opt.lengths {
		inputs, err := generateInputs(ctx, length, opt.seed)
		if err != nil {
			return nil, errors.Wrapf(err, "generate inputs of length %d", length)
		}

		for i, shape := range Shapes {
			for _, sorter := range sorters {
				if err = ctx.Err(); err != nil {
					return nil, errors.Wrap(err, "sort benchmark cancelled")
				}

				s := slices.Clone(inputs[i])
				start := time.Now()
				sorter.Sort(s, opt.order)
				cost := time.Since(start)

				if !common.IsSorted(s, opt.order) {
					return nil, errors.Errorf("%s sort produced unsorted output for %s input of length %d",
						sorter.Name, shape, length)
				}

				report.Measurements = append(report.Measurements, SortMeasurement{
					Length:  length,
					Shape:   shape,
					Sorter:  sorter.Name,
					Elapsed: cost,
					Micros:  cost.Microseconds(),
				})
				logger.DebugSample(100, "sort measured",
					zap.Int("length", length),
					zap.String("shape", shape.String()),
					zap.String("sorter", sorter.Name),
					zap.Duration("cost", cost))
			}
		}

		logger.Debug("length done", zap.Int("length", length))
	}

	return report, nil
}

// generateInputs build one input per shape, in the order of Shapes
func generateInputs(ctx context.Context, length int, seed int64) ([][]int, error) {
	inputs := make([][]int, len(Shapes))
	var pool errgroup.Group
	for i, shape := range Shapes {
		pool.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s := make([]int, length)
			switch shape {
			case ShapeRandom:
				// one faker per length, so each input is reproducible by seed alone
				faker := gofakeit.New(seed + int64(length))
				for j := range s {
					s[j] = faker.Number(0, length-1)
				}
			case ShapeAscending:
				for j := range s {
					s[j] = j
				}
			case ShapeDescending:
				for j := range s {
					s[j] = length - 1 - j
				}
			default:
				return errors.Errorf("unknown input shape %q", shape)
			}

			inputs[i] = s
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}
