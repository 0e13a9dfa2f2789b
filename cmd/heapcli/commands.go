package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/intheap/pkg/config"
	heapcontext "github.com/grafana/intheap/pkg/context"
	"github.com/grafana/intheap/pkg/heap"
	"github.com/grafana/intheap/pkg/iter"
	"github.com/grafana/intheap/pkg/util/cli"
)

var errNotFound = errors.New("value not found")

func newHeap(ctx context.Context, values []int) *heap.MinHeap {
	h := heap.New(heap.WithCapacity(len(values)))
	for _, v := range values {
		h.Insert(v)
	}
	level.Debug(heapcontext.Logger(ctx)).Log("msg", "heap built", "size", h.Len())
	return h
}

func writeJSON(ctx context.Context, v any) error {
	return errors.Wrap(json.NewEncoder(output(ctx)).Encode(v), "encoding result")
}

func sortValuesCmd(ctx context.Context, values []int, format string) error {
	h := newHeap(ctx, values)
	h.Sort()
	if format == config.OutputJSON {
		sorted, err := iter.Slice(h.Values())
		if err != nil {
			return err
		}
		if sorted == nil {
			sorted = []int{}
		}
		return writeJSON(ctx, sorted)
	}
	if err := cli.Header(output(ctx), "Sorted:"); err != nil {
		return err
	}
	return h.Display(output(ctx))
}

func extractValuesCmd(ctx context.Context, values []int, count int, format string) error {
	h := newHeap(ctx, values)
	if count <= 0 || count > h.Len() {
		count = h.Len()
	}
	extracted := make([]int, 0, count)
	for len(extracted) < count {
		v, ok := h.ExtractMin()
		if !ok {
			break
		}
		extracted = append(extracted, v)
	}
	if format == config.OutputJSON {
		remaining, err := iter.Slice(h.Values())
		if err != nil {
			return err
		}
		return writeJSON(ctx, struct {
			Extracted []int `json:"extracted"`
			Remaining []int `json:"remaining"`
		}{extracted, append([]int{}, remaining...)})
	}
	w := output(ctx)
	if err := cli.Header(w, "Extracted:"); err != nil {
		return err
	}
	for _, v := range extracted {
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := cli.Header(w, "Remaining:"); err != nil {
		return err
	}
	return h.Display(w)
}

func searchValuesCmd(ctx context.Context, values []int, value int, format string) error {
	h := newHeap(ctx, values)
	found := h.Search(value)
	var err error
	if format == config.OutputJSON {
		err = writeJSON(ctx, struct {
			Value int  `json:"value"`
			Found bool `json:"found"`
		}{value, found})
	} else if found {
		_, err = fmt.Fprintf(output(ctx), "Element %d found in the heap\n", value)
	} else {
		_, err = fmt.Fprintf(output(ctx), "Element %d not found in the heap\n", value)
	}
	if err != nil {
		return err
	}
	if !found {
		return errNotFound
	}
	return nil
}
