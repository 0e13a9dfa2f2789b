// Package demo runs the heap walkthrough: insert values, display, sort,
// display, search, extract the minimum and display again.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/intheap/pkg/config"
	heapcontext "github.com/grafana/intheap/pkg/context"
	"github.com/grafana/intheap/pkg/heap"
	"github.com/grafana/intheap/pkg/iter"
)

// Report records the heap contents at every step of the walkthrough.
type Report struct {
	Inserted  []int `json:"inserted"`
	Heap      []int `json:"heap"`
	Sorted    []int `json:"sorted"`
	Search    int   `json:"search"`
	Found     bool  `json:"found"`
	Extracted *int  `json:"extracted"`
	Remaining []int `json:"remaining"`
}

// Run executes the walkthrough for cfg and writes it to w in cfg.Output format.
func Run(ctx context.Context, w io.Writer, cfg config.Config) error {
	r, err := Walk(ctx, cfg.Values, cfg.Search)
	if err != nil {
		return err
	}
	switch cfg.Output {
	case config.OutputJSON:
		return errors.Wrap(json.NewEncoder(w).Encode(r), "encoding report")
	default:
		return errors.Wrap(r.WriteText(w), "writing report")
	}
}

// Walk performs the walkthrough on a fresh heap. The context is checked
// between steps.
func Walk(ctx context.Context, values []int, search int) (*Report, error) {
	logger := heapcontext.Logger(ctx)
	opts := []heap.Option{heap.WithCapacity(len(values))}
	if reg := heapcontext.Registry(ctx); reg != nil {
		opts = append(opts, heap.WithMetrics(heap.NewMetrics(reg)))
	}
	h := heap.New(opts...)
	r := &Report{
		Inserted: values,
		Search:   search,
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"insert", func() error {
			for _, v := range values {
				h.Insert(v)
			}
			return nil
		}},
		{"display", snapshot(h, &r.Heap)},
		{"sort", func() error { h.Sort(); return nil }},
		{"display", snapshot(h, &r.Sorted)},
		{"search", func() error { r.Found = h.Search(search); return nil }},
		{"extract", func() error {
			if v, ok := h.ExtractMin(); ok {
				r.Extracted = &v
			}
			return nil
		}},
		{"display", snapshot(h, &r.Remaining)},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.fn(); err != nil {
			return nil, errors.Wrapf(err, "step %s", step.name)
		}
		level.Debug(logger).Log("msg", "step done", "step", step.name, "size", h.Len())
	}
	return r, nil
}

func snapshot(h *heap.MinHeap, dst *[]int) func() error {
	return func() (err error) {
		*dst, err = iter.Slice(h.Values())
		return err
	}
}

// WriteText writes the report in the transcript format of the walkthrough.
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Display elements: %s\n", join(r.Heap))
	ew.printf("Display elements after sorting: %s\n", join(r.Sorted))
	if r.Found {
		ew.printf("Element %d found in the heap\n", r.Search)
	} else {
		ew.printf("Element %d not found in the heap\n", r.Search)
	}
	if r.Extracted != nil {
		ew.printf("Extracted minimum element: %d\n", *r.Extracted)
	} else {
		ew.printf("Heap is empty\n")
	}
	ew.printf("Display elements: %s\n", join(r.Remaining))
	return ew.err
}

func join(values []int) string {
	var s []byte
	for _, v := range values {
		s = fmt.Appendf(s, "%d ", v)
	}
	return string(s)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
