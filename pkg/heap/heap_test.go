package heap

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/grafana/intheap/pkg/iter"
	"github.com/grafana/intheap/pkg/test"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireHeapProperty(t *testing.T, h *MinHeap) {
	t.Helper()
	for i := range h.data {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(h.data) {
				require.LessOrEqualf(t, h.data[i], h.data[c], "parent %d > child %d: %v", i, c, h.data)
			}
		}
	}
}

func fromValues(values ...int) *MinHeap {
	h := New(WithCapacity(len(values)))
	for _, v := range values {
		h.Insert(v)
	}
	return h
}

func display(t *testing.T, h *MinHeap) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, h.Display(&buf))
	return buf.String()
}

func Test_MinHeap_Scenario(t *testing.T) {
	h := fromValues(3, 2, 15, 5, 4, 45)
	requireHeapProperty(t, h)
	assert.Equal(t, "2 3 15 5 4 45 \n", display(t, h))
	assert.True(t, h.Search(15))

	h.Sort()
	assert.Equal(t, "2 3 4 5 15 45 \n", display(t, h))
	assert.True(t, h.Search(15))
	assert.False(t, h.Search(7))

	v, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, "3 5 4 45 15 \n", display(t, h))
	requireHeapProperty(t, h)
}

func Test_MinHeap_ExtractMinBeforeSort(t *testing.T) {
	h := fromValues(3, 2, 15, 5, 4, 45)
	v, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 5, h.Len())
	requireHeapProperty(t, h)
}

func Test_MinHeap_Empty(t *testing.T) {
	var h MinHeap
	v, ok := h.ExtractMin()
	assert.False(t, ok)
	assert.Zero(t, v)
	_, ok = h.Min()
	assert.False(t, ok)
	assert.Equal(t, Sentinel, h.ExtractMinOrSentinel())
	assert.False(t, h.Search(0))
	assert.Equal(t, "\n", display(t, &h))

	h.Sort()
	assert.Zero(t, h.Len())
}

func Test_MinHeap_SingleElement(t *testing.T) {
	h := fromValues(42)
	v, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Zero(t, h.Len())

	_, ok = h.ExtractMin()
	assert.False(t, ok)
}

func Test_MinHeap_SentinelIsAmbiguous(t *testing.T) {
	h := fromValues(math.MaxInt)
	assert.Equal(t, Sentinel, h.ExtractMinOrSentinel())
	assert.Equal(t, Sentinel, h.ExtractMinOrSentinel())
}

func Test_MinHeap_ExtractOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 2, 3, 7, 64, 1000} {
		values := make([]int, size)
		for i := range values {
			values[i] = rnd.Intn(100) - 50
		}
		h := fromValues(values...)
		requireHeapProperty(t, h)
		require.Equal(t, lo.Min(values), lo.Must(h.Min()))

		extracted := make([]int, 0, size)
		for h.Len() > 0 {
			v, ok := h.ExtractMin()
			require.True(t, ok)
			extracted = append(extracted, v)
			requireHeapProperty(t, h)
		}
		expected := append([]int(nil), values...)
		sort.Ints(expected)
		if diff := cmp.Diff(expected, extracted); diff != "" {
			t.Fatalf("size %d: extract order mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func Test_MinHeap_Sort(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
	}{
		{name: "empty"},
		{name: "single", values: []int{1}},
		{name: "two", values: []int{2, 1}},
		{name: "duplicates", values: []int{5, 1, 5, 1, 3, 3, 3}},
		{name: "descending", values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{name: "negative", values: []int{-1, math.MinInt, math.MaxInt, 0, -7}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, test.AssertIdempotentSubtest(t, func(t *testing.T) {
			h := fromValues(tc.values...)
			h.Sort()
			sorted, err := iter.Slice(h.Values())
			require.NoError(t, err)
			require.Len(t, sorted, len(tc.values))
			require.True(t, sort.IntsAreSorted(sorted), sorted)
			assert.ElementsMatch(t, tc.values, sorted)
		}))
	}
}

func Test_MinHeap_SortTwice(t *testing.T) {
	h := fromValues(7, 3, 9, 1, 1, 4)
	h.Sort()
	once := append([]int(nil), h.data...)
	h.Sort()
	assert.Equal(t, once, h.data)
}

func Test_MinHeap_UsableAfterSort(t *testing.T) {
	h := fromValues(10, 4, 8, 2, 6)
	h.Sort()
	requireHeapProperty(t, h)

	h.Insert(5)
	h.Insert(1)
	requireHeapProperty(t, h)

	var got []int
	for {
		v, ok := h.ExtractMin()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 4, 5, 6, 8, 10}, got)
}

func Test_MinHeap_SearchDuplicates(t *testing.T) {
	h := fromValues(3, 3, 1)
	require.True(t, h.Search(3))

	v, _ := h.ExtractMin()
	require.Equal(t, 1, v)
	v, _ = h.ExtractMin()
	require.Equal(t, 3, v)
	assert.True(t, h.Search(3))

	_, _ = h.ExtractMin()
	assert.False(t, h.Search(3))
}

func Test_MinHeap_Values(t *testing.T) {
	h := fromValues(4, 1, 3)
	values, err := iter.Slice(h.Values())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3}, values)
	assert.Equal(t, 3, h.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func Test_MinHeap_DisplayError(t *testing.T) {
	h := fromValues(1)
	assert.ErrorIs(t, h.Display(failingWriter{}), assert.AnError)
}
