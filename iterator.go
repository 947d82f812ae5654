// SPDX-License-Identifier: MIT

package rowset

import "github.com/vdbgo/rowset/internal/rowtrie"

// Iterator is the external iterator form of Walk: it positions before
// the first row, Next advances it and reports whether a row is now
// current, and RowID returns that row.
//
// An Iterator holds a reference on the Set it was created from — it
// calls AddRef when constructed and the caller must call Release when
// done with it — and assumes the Set is not structurally mutated for
// the iterator's lifetime; doing so is undefined behavior.
type Iterator struct {
	set    *Set
	cursor *rowtrie.Cursor
}

// NewIterator returns an Iterator over s, walking ascending order if
// reverse is false, descending order if true. The returned Iterator
// holds a reference on s until Release is called.
func (s *Set) NewIterator(reverse bool) (*Iterator, error) {
	if s == nil {
		return nil, newError("NewIterator", KindNullSelf)
	}
	if err := s.AddRef(); err != nil {
		return nil, err
	}
	return &Iterator{set: s, cursor: s.tree.NewCursor(reverse)}, nil
}

// Next advances the iterator and reports whether a row is now
// current.
func (it *Iterator) Next() bool {
	if it == nil {
		return false
	}
	return it.cursor.Next()
}

// RowID returns the row id the iterator currently sits on. Its value
// is unspecified unless the most recent call to Next returned true.
func (it *Iterator) RowID() int64 {
	if it == nil {
		return 0
	}
	return it.cursor.RowID()
}

// AddRef increments the iterator's underlying set's reference count.
func (it *Iterator) AddRef() error {
	if it == nil {
		return newError("AddRef", KindNullSelf)
	}
	return it.set.AddRef()
}

// Release releases the iterator's hold on its underlying set.
func (it *Iterator) Release() error {
	if it == nil {
		return nil
	}
	it.cursor.Close()
	return it.set.Release()
}
