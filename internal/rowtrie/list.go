// SPDX-License-Identifier: MIT

package rowtrie

// The leaf list threads every leaf in the trie into one doubly-linked,
// ascending-leaf-id sequence via the Leaf.next/prev fields. It has no
// ownership of its own: the trie owns every leaf, the list is an
// alias used purely for O(1) ordered traversal and O(1) splicing.

// pushSole makes leaf the list's only element.
func (t *Tree) pushSole(leaf *Leaf) {
	leaf.next, leaf.prev = nil, nil
	t.head, t.tail = leaf, leaf
}

// insertBefore splices leaf immediately before at.
func (t *Tree) insertBefore(at, leaf *Leaf) {
	leaf.prev = at.prev
	leaf.next = at
	if at.prev != nil {
		at.prev.next = leaf
	} else {
		t.head = leaf
	}
	at.prev = leaf
}

// insertAfter splices leaf immediately after at.
func (t *Tree) insertAfter(at, leaf *Leaf) {
	leaf.next = at.next
	leaf.prev = at
	if at.next != nil {
		at.next.prev = leaf
	} else {
		t.tail = leaf
	}
	at.next = leaf
}

// unlink removes leaf from the list. It does not touch leaf's own
// next/prev, which the caller discards along with the leaf.
func (t *Tree) unlink(leaf *Leaf) {
	if leaf.prev != nil {
		leaf.prev.next = leaf.next
	} else {
		t.head = leaf.next
	}
	if leaf.next != nil {
		leaf.next.prev = leaf.prev
	} else {
		t.tail = leaf.prev
	}
}

// stackEntry is one (node, depth) pair visited during a single
// descent, recorded so a newly inserted leaf can find its nearest
// neighbour without walking the list.
type stackEntry struct {
	node  *Node
	depth int
}

// linkLeaf inserts a newly created leaf into its correct sorted
// position in the leaf list, using the nearest-neighbour-in-trie
// algorithm of spec.md §4.3. stack holds every node visited while
// descending to leaf's position, deepest last.
func (t *Tree) linkLeaf(leaf *Leaf, stack []stackEntry) {
	switch t.leafCount {
	case 0:
		t.pushSole(leaf)
	case 1:
		existing := t.head
		if existing.id < leaf.id {
			t.insertAfter(existing, leaf)
		} else {
			t.insertBefore(existing, leaf)
		}
	default:
		neighbor, neighborIsSmaller := t.findNearestLeaf(stack, leaf.id)
		if neighborIsSmaller {
			t.insertAfter(neighbor, leaf)
		} else {
			t.insertBefore(neighbor, leaf)
		}
	}
	t.leafCount++
}

// findNearestLeaf walks stack from the deepest visited node up to the
// root. At each node it scans outward, in increasing byte-distance,
// from the byte the target leaf-id branches on, for the first
// occupied sibling slot. That slot roots a subtree entirely greater or
// entirely less than the target leaf-id (radix-trie ordering); the
// function then descends to that subtree's extremal leaf — smallest
// child first when the subtree is greater, largest child first when
// it is smaller — and returns it along with which side it was found
// on.
func (t *Tree) findNearestLeaf(stack []stackEntry, leafID uint64) (neighbor *Leaf, neighborIsSmaller bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		node, depth := stack[i].node, stack[i].depth
		bt := int(leafIDByte(leafID, depth))

		jMax := bt
		if 255-bt > jMax {
			jMax = 255 - bt
		}

		var subtree childSlot
		var subtreeIsSmaller bool
		found := false
		for j := 1; j <= jMax && !found; j++ {
			if bt+j <= 255 && !node.children[bt+j].empty() {
				subtree = node.children[bt+j]
				subtreeIsSmaller = false
				found = true
				break
			}
			if bt-j >= 0 && !node.children[bt-j].empty() {
				subtree = node.children[bt-j]
				subtreeIsSmaller = true
				found = true
				break
			}
		}
		if !found {
			continue
		}

		for subtree.node != nil {
			n := subtree.node
			if subtreeIsSmaller {
				for b := 255; b >= 0; b-- {
					if !n.children[b].empty() {
						subtree = n.children[b]
						break
					}
				}
			} else {
				for b := 0; b <= 255; b++ {
					if !n.children[b].empty() {
						subtree = n.children[b]
						break
					}
				}
			}
		}
		return subtree.leaf, subtreeIsSmaller
	}

	// Unreachable when t.leafCount >= 2: the stack always contains the
	// root, and with two or more leaves some sibling slot must be
	// occupied somewhere on the path to the root.
	return nil, false
}
