// Package heap implements an array-backed binary min-heap of ints.
//
// Besides the usual insert and extract-min operations the heap supports a
// linear membership search and an in-place heap sort. The sorted order left
// behind by Sort is non-decreasing and therefore satisfies the min-heap
// property, so the heap remains usable after sorting.
//
// MinHeap is not safe for concurrent use.
package heap

import (
	"io"
	"math"
	"strconv"

	"github.com/grafana/intheap/pkg/iter"
)

// Sentinel is returned by ExtractMinOrSentinel when the heap is empty.
// It can't be told apart from a stored math.MaxInt.
const Sentinel = math.MaxInt

type MinHeap struct {
	data    []int
	metrics *Metrics
}

type Option func(*MinHeap)

// WithMetrics instruments the heap operations.
func WithMetrics(m *Metrics) Option {
	return func(h *MinHeap) { h.metrics = m }
}

// WithCapacity pre-allocates the backing storage for n values.
func WithCapacity(n int) Option {
	return func(h *MinHeap) {
		if n > 0 {
			h.data = make([]int, 0, n)
		}
	}
}

func New(opts ...Option) *MinHeap {
	h := new(MinHeap)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *MinHeap) Len() int { return len(h.data) }

// Insert adds the value and sifts it up towards the root.
func (h *MinHeap) Insert(value int) {
	h.data = append(h.data, value)
	h.up(len(h.data) - 1)
	h.metrics.observe(opInsert, len(h.data))
}

// Min returns the minimum value without removing it.
func (h *MinHeap) Min() (int, bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	return h.data[0], true
}

// ExtractMin removes and returns the minimum value. The second return value
// is false if the heap is empty.
func (h *MinHeap) ExtractMin() (int, bool) {
	n := len(h.data)
	if n == 0 {
		h.metrics.observeEmpty()
		return 0, false
	}
	root := h.data[0]
	last := n - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if last > 1 {
		h.down(0, last)
	}
	h.metrics.observe(opExtractMin, len(h.data))
	return root, true
}

// ExtractMinOrSentinel is like ExtractMin but returns Sentinel if the heap
// is empty.
//
// Deprecated: the result is ambiguous when the heap holds math.MaxInt.
// Use ExtractMin.
func (h *MinHeap) ExtractMinOrSentinel() int {
	v, ok := h.ExtractMin()
	if !ok {
		return Sentinel
	}
	return v
}

// Search reports whether the value is stored in the heap. The heap order
// doesn't help locating arbitrary values, so this is a linear scan.
func (h *MinHeap) Search(value int) bool {
	h.metrics.observe(opSearch, len(h.data))
	for _, v := range h.data {
		if v == value {
			return true
		}
	}
	return false
}

// Sort reorders the values in place into non-decreasing order.
func (h *MinHeap) Sort() {
	n := len(h.data)
	for i := n/2 - 1; i >= 0; i-- {
		h.downMax(i, n)
	}
	for i := n - 1; i > 0; i-- {
		h.swap(0, i)
		h.downMax(0, i)
	}
	h.metrics.observe(opSort, n)
}

// Values returns an iterator over the values in storage order. The iterator
// must not be used after the heap is modified.
func (h *MinHeap) Values() iter.Iterator[int] {
	return iter.NewSliceIterator(h.data)
}

// Display writes the values in storage order, each followed by a space, and
// terminates the line.
func (h *MinHeap) Display(w io.Writer) error {
	buf := make([]byte, 0, len(h.data)*4+1)
	it := h.Values()
	for it.Next() {
		buf = strconv.AppendInt(buf, int64(it.At()), 10)
		buf = append(buf, ' ')
	}
	if err := it.Close(); err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

func (h *MinHeap) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *MinHeap) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if h.data[i] <= h.data[j] {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the value at i towards the leaves of the heap formed by the
// first n values, swapping with the smallest child.
func (h *MinHeap) down(i, n int) {
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.data[left] < h.data[smallest] {
			smallest = left
		}
		if right < n && h.data[right] < h.data[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// downMax is the max-ordered counterpart of down, used by Sort so that the
// roots moved to the end of the active prefix build an ascending suffix.
func (h *MinHeap) downMax(i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.data[left] > h.data[largest] {
			largest = left
		}
		if right < n && h.data[right] > h.data[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}
