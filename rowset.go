// SPDX-License-Identifier: MIT

package rowset

import (
	"math"
	"sync/atomic"

	"github.com/vdbgo/rowset/internal/rowtrie"
)

// Set is a compact, ordered set of non-negative 64-bit row
// identifiers. The zero value is not usable; construct one with New.
//
// Set is reference-counted: New returns a Set with a reference count
// of one, AddRef increments it, and Release decrements it, destroying
// the underlying engine when the count reaches zero. The reference
// count itself is safe for concurrent use from multiple goroutines;
// structural mutation (InsertRow, InsertRange) and traversal
// (Walk, iterators) are not, and callers sharing a mutable Set across
// goroutines must synchronize those externally.
//
// A Set must not be copied after first use; pass it by pointer.
type Set struct {
	refs atomic.Int32
	tree rowtrie.Tree
}

// New constructs an empty Set with a reference count of one.
func New() *Set {
	s := &Set{}
	s.refs.Store(1)
	return s
}

// AddRef increments the reference count and returns nil, or
// KindNullSelf if s is nil.
func (s *Set) AddRef() error {
	if s == nil {
		return newError("AddRef", KindNullSelf)
	}
	s.refs.Add(1)
	return nil
}

// Release decrements the reference count, destroying the set's
// contents once it reaches zero. It reports KindConstraintViolation,
// but still attempts best-effort destruction, if the count underflows
// — i.e. if Release is called more times than AddRef/New.
func (s *Set) Release() error {
	if s == nil {
		return nil
	}
	n := s.refs.Add(-1)
	switch {
	case n == 0:
		s.tree.DestroyAll()
		return nil
	case n < 0:
		s.tree.DestroyAll()
		return newError("Release", KindConstraintViolation)
	default:
		return nil
	}
}

// InsertRow inserts a single row id. It is equivalent to
// InsertRange(id, 1).
func (s *Set) InsertRow(id int64) error {
	return s.InsertRange(id, 1)
}

// InsertRange inserts count consecutive row ids starting at start. If
// the range spans an id already present, insertion stops at that
// point: ids before the duplicate remain inserted and are reflected in
// Cardinality, and KindDuplicateID is returned. The same holds for an
// allocation failure partway through a large range.
func (s *Set) InsertRange(start int64, count uint64) error {
	if s == nil {
		return newError("InsertRange", KindNullSelf)
	}
	if start < 0 || count == 0 {
		return newError("InsertRange", KindInvalidArgument)
	}
	if count > uint64(math.MaxInt64-start) {
		return newError("InsertRange", KindOutOfRange)
	}

	err := s.tree.InsertRange(start, count)
	switch err {
	case nil:
		return nil
	case rowtrie.ErrDuplicate:
		return newError("InsertRange", KindDuplicateID)
	default:
		return wrapError("InsertRange", KindOutOfMemory, err)
	}
}

// Cardinality returns the number of rows currently held.
func (s *Set) Cardinality() (uint64, error) {
	if s == nil {
		return 0, newError("Cardinality", KindNullSelf)
	}
	return s.tree.RowCount(), nil
}

// Walk invokes fn once for every row id currently held: ascending
// order if reverse is false, descending order if true.
//
// Walk is sugar over NewIterator followed by repeated Next/RowID; it
// exists as a separate entry point because most callers want a
// one-shot traversal and don't want to remember to Release anything.
func (s *Set) Walk(reverse bool, fn func(id int64)) error {
	if s == nil {
		return newError("Walk", KindNullSelf)
	}
	if fn == nil {
		return newError("Walk", KindNullArgument)
	}

	it, err := s.NewIterator(reverse)
	if err != nil {
		return err
	}
	defer it.Release()

	for it.Next() {
		fn(it.RowID())
	}
	return nil
}
