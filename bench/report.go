package bench

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/Laisky/errors/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/Laisky/go-deque/json"
)

// Output format of a rendered report
type Output string

const (
	// OutputText aligned text table
	OutputText Output = "text"
	// OutputJSON indented json
	OutputJSON Output = "json"
	// OutputYAML yaml document
	OutputYAML Output = "yaml"
	// OutputMsgpack msgpack bytes, for other programs
	OutputMsgpack Output = "msgpack"
)

// Report rendered by Write
type Report interface {
	WriteText(w io.Writer) error
}

// Write render report to w in format out
func Write(w io.Writer, report Report, out Output) error {
	switch out {
	case OutputText, "":
		return report.WriteText(w)
	case OutputJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal report")
		}

		if _, err = w.Write(append(data, '\n')); err != nil {
			return errors.Wrap(err, "write report")
		}

		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encode yaml report")
		}

		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "close yaml encoder")
		}

		return nil
	case OutputMsgpack:
		if err := msgpack.NewEncoder(w).Encode(report); err != nil {
			return errors.Wrap(err, "encode msgpack report")
		}

		return nil
	default:
		return errors.Errorf("unknown output %q", out)
	}
}

// WriteText one row per length and shape, one column per sorter, in microseconds
func (r *SortReport) WriteText(w io.Writer) error {
	var sorters []string
	type rowKey struct {
		length int
		shape  InputShape
	}
	var rows []rowKey
	cells := map[rowKey]map[string]int64{}
	for _, m := range r.Measurements {
		k := rowKey{m.Length, m.Shape}
		if _, ok := cells[k]; !ok {
			cells[k] = map[string]int64{}
			rows = append(rows, k)
		}
		if !slices.Contains(sorters, m.Sorter) {
			sorters = append(sorters, m.Sorter)
		}

		cells[k][m.Sorter] = m.Micros
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "order=%s\tseed=%d\t\n", r.Order, r.Seed)
	fmt.Fprintf(tw, "length\tshape\t%s\t\n", strings.Join(sorters, "(us)\t")+"(us)")
	for _, k := range rows {
		fmt.Fprintf(tw, "%d\t%s\t", k.length, k.shape)
		for _, s := range sorters {
			fmt.Fprintf(tw, "%d\t", cells[k][s])
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush table")
	}

	return nil
}

// WriteText one row per store, one column per workload, in microseconds
func (r *DequeReport) WriteText(w io.Writer) error {
	var (
		stores    []string
		workloads []string
	)
	cells := map[string]map[string]int64{}
	for _, m := range r.Measurements {
		store, workload := m.Store.String(), m.Workload.String()
		if _, ok := cells[store]; !ok {
			cells[store] = map[string]int64{}
			stores = append(stores, store)
		}
		if !slices.Contains(workloads, workload) {
			workloads = append(workloads, workload)
		}

		cells[store][workload] = m.Micros
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "ops=%d\t\n", r.Ops)
	fmt.Fprintf(tw, "store\t%s\t\n", strings.Join(workloads, "(us)\t")+"(us)")
	for _, s := range stores {
		fmt.Fprintf(tw, "%s\t", s)
		for _, wl := range workloads {
			fmt.Fprintf(tw, "%d\t", cells[s][wl])
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush table")
	}

	return nil
}
