package iter

type Iterator[A any] interface {
	// Next advances the iterator and returns true if another value was found.
	Next() bool

	// At returns the value at the current iterator position.
	At() A

	// Err returns the last error of the iterator.
	Err() error

	Close() error
}

type errIterator[A any] struct {
	err error
}

func NewErrIterator[A any](err error) Iterator[A] {
	return &errIterator[A]{
		err: err,
	}
}

func (i *errIterator[A]) Err() error {
	return i.err
}
func (*errIterator[A]) At() (a A) {
	return a
}
func (*errIterator[A]) Next() bool {
	return false
}

func (*errIterator[A]) Close() error {
	return nil
}

type sliceIterator[A any] struct {
	list []A
	cur  A
}

// NewSliceIterator returns an iterator over s. The slice is not copied:
// callers must not mutate it while iterating.
func NewSliceIterator[A any](s []A) Iterator[A] {
	return &sliceIterator[A]{
		list: s,
	}
}

func (i *sliceIterator[A]) Err() error {
	return nil
}

func (i *sliceIterator[A]) Next() bool {
	if len(i.list) > 0 {
		i.cur = i.list[0]
		i.list = i.list[1:]
		return true
	}
	var a A
	i.cur = a
	return false
}

func (i *sliceIterator[A]) At() A {
	return i.cur
}

func (i *sliceIterator[A]) Close() error {
	i.list = nil
	return nil
}

// Slice drains the iterator and closes it.
func Slice[A any](it Iterator[A]) ([]A, error) {
	var result []A
	for it.Next() {
		result = append(result, it.At())
	}
	err := it.Err()
	if cerr := it.Close(); err == nil {
		err = cerr
	}
	return result, err
}
