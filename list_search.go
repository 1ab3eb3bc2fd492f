package biglist

// Range arguments follow one rule. A forward range (start, count) covers
// [start, start+count) and needs 0 <= start <= Count and start+count <= Count.
// A backward range covers count elements ending at start and needs
// 0 <= start < Count and count <= start+1. Under PolicyLegacy an empty list
// accepts the backward ranges the historical list accepted.

// Contains reports whether an element equal to v exists.
func (l *List[T]) Contains(v T) (bool, error) {
	i, err := l.IndexOf(v)
	return i >= 0, err
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) (int64, error) {
	return l.IndexOfRange(v, 0, l.p.Count())
}

// IndexOfFrom searches from index start to the end.
func (l *List[T]) IndexOfFrom(v T, start int64) (int64, error) {
	return l.IndexOfRange(v, start, l.p.Count()-start)
}

// IndexOfRange searches the forward range (start, count).
func (l *List[T]) IndexOfRange(v T, start, count int64) (int64, error) {
	eq, err := l.matcher(v)
	if err != nil {
		return -1, err
	}
	return l.p.IndexFunc(start, count, eq)
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[T]) LastIndexOf(v T) (int64, error) {
	n := l.p.Count()
	if n == 0 {
		_, err := l.matcher(v)
		return -1, err
	}
	return l.LastIndexOfRange(v, n-1, n)
}

// LastIndexOfFrom searches backwards from index start to the beginning.
func (l *List[T]) LastIndexOfFrom(v T, start int64) (int64, error) {
	if l.legacyEmpty() && start >= 0 {
		return -1, &RangeError{Start: start, Count: start + 1, Len: 0}
	}
	return l.LastIndexOfRange(v, start, start+1)
}

// LastIndexOfRange searches the backward range of count elements ending at
// start.
func (l *List[T]) LastIndexOfRange(v T, start, count int64) (int64, error) {
	eq, err := l.matcher(v)
	if err != nil {
		return -1, err
	}
	if l.legacyEmpty() {
		return -1, nil
	}
	return l.p.LastIndexFunc(start, count, eq)
}

// Find returns the first element matching match.
func (l *List[T]) Find(match func(T) bool) (T, bool, error) {
	i, err := l.FindIndex(match)
	return l.at(i, err)
}

// FindIndex returns the index of the first element matching match, or -1.
func (l *List[T]) FindIndex(match func(T) bool) (int64, error) {
	return l.p.IndexFunc(0, l.p.Count(), match)
}

// FindIndexFrom searches from index start to the end.
func (l *List[T]) FindIndexFrom(start int64, match func(T) bool) (int64, error) {
	return l.p.IndexFunc(start, l.p.Count()-start, match)
}

// FindIndexRange searches the forward range (start, count).
func (l *List[T]) FindIndexRange(start, count int64, match func(T) bool) (int64, error) {
	return l.p.IndexFunc(start, count, match)
}

// FindLast returns the last element matching match.
func (l *List[T]) FindLast(match func(T) bool) (T, bool, error) {
	i, err := l.FindLastIndex(match)
	return l.at(i, err)
}

// FindLastIndex returns the index of the last element matching match, or -1.
func (l *List[T]) FindLastIndex(match func(T) bool) (int64, error) {
	n := l.p.Count()
	if n == 0 {
		if match == nil {
			return -1, ErrNilArgument
		}
		return -1, nil
	}
	return l.p.LastIndexFunc(n-1, n, match)
}

// FindLastIndexFrom searches backwards from index start to the beginning.
func (l *List[T]) FindLastIndexFrom(start int64, match func(T) bool) (int64, error) {
	return l.FindLastIndexRange(start, start+1, match)
}

// FindLastIndexRange searches the backward range of count elements ending at
// start.
func (l *List[T]) FindLastIndexRange(start, count int64, match func(T) bool) (int64, error) {
	if match == nil {
		return -1, ErrNilArgument
	}
	if l.legacyEmpty() {
		if start != -1 || count != 0 {
			return -1, &RangeError{Start: start, Count: count, Len: 0}
		}
		return -1, nil
	}
	return l.p.LastIndexFunc(start, count, match)
}

// FindAll returns a new list with every element matching match, in order.
func (l *List[T]) FindAll(match func(T) bool) (*List[T], error) {
	if match == nil {
		return nil, ErrNilArgument
	}
	out, err := newListFrom(l.equal, l.compare, l.opts)
	if err != nil {
		return nil, err
	}
	var addErr error
	err = l.p.Scan(0, l.p.Count(), func(_ int64, v T) bool {
		if match(v) {
			addErr = out.Add(v)
		}
		return addErr == nil
	})
	if err == nil {
		err = addErr
	}
	if err != nil {
		out.Clear()
		return nil, err
	}
	return out, nil
}

// Exists reports whether any element matches match.
func (l *List[T]) Exists(match func(T) bool) (bool, error) {
	i, err := l.FindIndex(match)
	return i >= 0, err
}

// TrueForAll reports whether every element matches match. It is true for an
// empty list.
func (l *List[T]) TrueForAll(match func(T) bool) (bool, error) {
	if match == nil {
		return false, ErrNilArgument
	}
	i, err := l.FindIndex(func(v T) bool { return !match(v) })
	if err != nil {
		return false, err
	}
	return i < 0, nil
}

// ForEach calls action for every element in order. It fails with
// ErrInvalidState if action changes the list's structure.
func (l *List[T]) ForEach(action func(T)) error {
	if action == nil {
		return ErrNilArgument
	}
	return l.p.Scan(0, l.p.Count(), func(_ int64, v T) bool {
		action(v)
		return true
	})
}

// BinarySearch searches the sorted list for v. It returns the index of a
// matching element, or the bitwise complement of the index at which v would
// be inserted. A nil cmp uses the list's default comparer.
func (l *List[T]) BinarySearch(v T, cmp func(a, b T) int) (int64, error) {
	return l.BinarySearchRange(0, l.p.Count(), v, cmp)
}

// BinarySearchRange searches the sorted forward range (start, count).
func (l *List[T]) BinarySearchRange(start, count int64, v T, cmp func(a, b T) int) (int64, error) {
	c, err := l.comparer(cmp)
	if err != nil {
		return -1, err
	}
	return l.p.BinarySearch(start, count, v, c)
}

func (l *List[T]) matcher(v T) (func(T) bool, error) {
	if l.equal == nil {
		return nil, errNoEquality
	}
	eq := l.equal
	return func(x T) bool { return eq(x, v) }, nil
}

func (l *List[T]) legacyEmpty() bool {
	return l.opts.policy == PolicyLegacy && l.p.Count() == 0
}

func (l *List[T]) at(i int64, err error) (T, bool, error) {
	var zero T
	if err != nil || i < 0 {
		return zero, false, err
	}
	v, err := l.p.Get(i)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
