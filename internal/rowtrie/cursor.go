// SPDX-License-Identifier: MIT

package rowtrie

import "iter"

// Cursor is a one-shot, forward-or-backward external iterator over a
// Tree's leaf list. It positions before the first row; Next must be
// called once before RowID returns anything meaningful.
//
// Cursor bridges the package's push-style iter.Seq leaf iteration into
// the pull-style next/current protocol the public package's external
// Iterator needs, via the standard library's iter.Pull.
type Cursor struct {
	reverse bool
	leaf    *Leaf

	pullNext func() (uint16, bool)
	pullStop func()

	current int64
}

// NewCursor returns a Cursor over t, walking ascending leaf-id order
// if reverse is false, descending order otherwise.
func (t *Tree) NewCursor(reverse bool) *Cursor {
	c := &Cursor{reverse: reverse}
	if reverse {
		c.leaf = t.tail
	} else {
		c.leaf = t.head
	}
	return c
}

// Next advances the cursor and reports whether a row is now current.
func (c *Cursor) Next() bool {
	for {
		if c.pullNext == nil {
			if c.leaf == nil {
				return false
			}
			c.startLeaf()
		}

		i, ok := c.pullNext()
		if ok {
			c.current = int64(c.leaf.id<<16) | int64(i)
			return true
		}

		c.pullStop()
		c.pullNext, c.pullStop = nil, nil
		if c.reverse {
			c.leaf = c.leaf.prev
		} else {
			c.leaf = c.leaf.next
		}
	}
}

// startLeaf opens a pull-iterator over the current leaf's in-leaf
// indices, in the cursor's traversal direction.
func (c *Cursor) startLeaf() {
	var seq iter.Seq[uint16]
	if c.reverse {
		seq = c.leaf.descend()
	} else {
		seq = c.leaf.ascend()
	}
	c.pullNext, c.pullStop = iter.Pull(seq)
}

// RowID returns the row id the cursor currently sits on. Its value is
// unspecified unless the most recent call to Next returned true.
func (c *Cursor) RowID() int64 { return c.current }

// Close releases the pull-iterator resources the cursor may be
// holding. It is safe to call more than once and safe to call without
// having exhausted the cursor.
func (c *Cursor) Close() {
	if c.pullStop != nil {
		c.pullStop()
		c.pullNext, c.pullStop = nil, nil
	}
}
