package bench

import (
	"context"
	"slices"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-deque/deque"
	"github.com/Laisky/go-deque/log"
)

// Workload name of a deque workload
type Workload string

func (w Workload) String() string {
	return string(w)
}

const (
	// WorkloadFIFO N PushRight then N PopLeft
	WorkloadFIFO Workload = "fifo"
	// WorkloadLIFO N PushLeft then N PopLeft
	WorkloadLIFO Workload = "lifo"
	// WorkloadChurn alternating PushLeft and PopRight on a half-filled store
	WorkloadChurn Workload = "churn"
	// WorkloadReverse fill N then Reversible.Reverse
	WorkloadReverse Workload = "reverse"
)

// Workloads all workloads, in report order
var Workloads = []Workload{WorkloadFIFO, WorkloadLIFO, WorkloadChurn, WorkloadReverse}

// DefaultOps operations per workload used when none is given
const DefaultOps = 100000

// DequeMeasurement one timed workload
type DequeMeasurement struct {
	Store    deque.Kind    `json:"store" yaml:"store" msgpack:"store"`
	Workload Workload      `json:"workload" yaml:"workload" msgpack:"workload"`
	Ops      int           `json:"ops" yaml:"ops" msgpack:"ops"`
	Elapsed  time.Duration `json:"-" yaml:"-" msgpack:"-"`
	// Micros elapsed microseconds
	Micros int64 `json:"elapsed_us" yaml:"elapsed_us" msgpack:"elapsed_us"`
}

// DequeReport result of RunDeque
type DequeReport struct {
	Ops          int                `json:"ops" yaml:"ops" msgpack:"ops"`
	Measurements []DequeMeasurement `json:"measurements" yaml:"measurements" msgpack:"measurements"`
}

type workloadOpt struct {
	ops    int
	stores []deque.Kind
}

func (o *workloadOpt) applyFuncs(optfs ...WorkloadOptFunc) (*workloadOpt, error) {
	for _, f := range optfs {
		if err := f(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// WorkloadOptFunc option of RunDeque
type WorkloadOptFunc func(*workloadOpt) error

// WithOps set operations per workload
func WithOps(ops int) WorkloadOptFunc {
	return func(o *workloadOpt) error {
		if ops <= 0 {
			return errors.Errorf("ops must be positive, got %d", ops)
		}

		o.ops = ops
		return nil
	}
}

// WithStores only run against these stores
func WithStores(kinds ...deque.Kind) WorkloadOptFunc {
	return func(o *workloadOpt) error {
		if len(kinds) == 0 {
			return errors.Errorf("stores must not be empty")
		}

		for _, k := range kinds {
			if !slices.Contains(deque.Kinds, k) {
				return errors.Errorf("unknown store %q", k)
			}
		}

		o.stores = slices.Clone(kinds)
		return nil
	}
}

// RunDeque time every workload against every store
func RunDeque(ctx context.Context, optfs ...WorkloadOptFunc) (*DequeReport, error) {
	opt, err := (&workloadOpt{
		ops:    DefaultOps,
		stores: deque.Kinds,
	}).applyFuncs(optfs...)
	if err != nil {
		return nil, err
	}

	logger := log.Shared.Named("bench_deque")
	logger.Debug("run deque benchmark", zap.Int("ops", opt.ops))

	report := &DequeReport{Ops: opt.ops}
	for _, kind := range opt.stores {
		for _, workload := range Workloads {
			if err = ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "deque benchmark cancelled")
			}

			// every store is bounded to ops, array deques must be
			d, err := deque.New[int](kind, opt.ops)
			if err != nil {
				return nil, errors.Wrapf(err, "new %s deque", kind)
			}

			start := time.Now()
			if err = runWorkload(d, workload, opt.ops); err != nil {
				return nil, errors.Wrapf(err, "run %s on %s deque", workload, kind)
			}
			cost := time.Since(start)

			report.Measurements = append(report.Measurements, DequeMeasurement{
				Store:    kind,
				Workload: workload,
				Ops:      opt.ops,
				Elapsed:  cost,
				Micros:   cost.Microseconds(),
			})
			logger.DebugSample(500, "workload measured",
				zap.String("store", kind.String()),
				zap.String("workload", workload.String()),
				zap.Duration("cost", cost))
		}

		logger.Debug("store done", zap.String("store", kind.String()))
	}

	return report, nil
}

func runWorkload(d deque.Deque[int], workload Workload, ops int) error {
	switch workload {
	case WorkloadFIFO:
		return fillThenDrain(d, ops, d.PushRight)
	case WorkloadLIFO:
		return fillThenDrain(d, ops, d.PushLeft)
	case WorkloadChurn:
		for i := 0; i < ops/2; i++ {
			if err := d.PushRight(i); err != nil {
				return err
			}
		}

		for i := 0; i < ops; i++ {
			if err := d.PushLeft(i); err != nil {
				return err
			}
			if _, err := d.PopRight(); err != nil {
				return err
			}
		}

		return nil
	case WorkloadReverse:
		r, err := deque.NewReversible(d)
		if err != nil {
			return err
		}

		for i := 0; i < ops; i++ {
			if err = r.PushRight(i); err != nil {
				return err
			}
		}

		return r.Reverse()
	default:
		return errors.Errorf("unknown workload %q", workload)
	}
}

func fillThenDrain(d deque.Deque[int], ops int, push func(int) error) error {
	for i := 0; i < ops; i++ {
		if err := push(i); err != nil {
			return err
		}
	}

	for !d.IsEmpty() {
		if _, err := d.PopLeft(); err != nil {
			return err
		}
	}

	return nil
}
