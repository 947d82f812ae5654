// SPDX-License-Identifier: MIT

package rowtrie

import "testing"

func collectAscend(l *Leaf) []uint16 {
	var got []uint16
	for v := range l.ascend() {
		got = append(got, v)
	}
	return got
}

func collectDescend(l *Leaf) []uint16 {
	var got []uint16
	for v := range l.descend() {
		got = append(got, v)
	}
	return got
}

func mustInsert(t *testing.T, l *Leaf, lo, hi uint16) {
	t.Helper()
	if err := l.InsertRun(lo, hi); err != nil {
		t.Fatalf("InsertRun(%d,%d): %v", lo, hi, err)
	}
}

func TestRangeListExtendLeft(t *testing.T) {
	l := newRangeListLeaf(0)
	mustInsert(t, l, 10, 20)
	mustInsert(t, l, 5, 9)

	if l.rangeLen != 1 || l.ranges[0] != (rowRange{5, 20}) {
		t.Fatalf("got ranges %v len %d", l.ranges[:l.rangeLen], l.rangeLen)
	}
}

func TestRangeListExtendRightAndMerge(t *testing.T) {
	l := newRangeListLeaf(0)
	mustInsert(t, l, 0, 4)
	mustInsert(t, l, 10, 14)
	mustInsert(t, l, 5, 9) // bridges the two into one range

	if l.rangeLen != 1 || l.ranges[0] != (rowRange{0, 14}) {
		t.Fatalf("got ranges %v len %d", l.ranges[:l.rangeLen], l.rangeLen)
	}
}

func TestRangeListInsertBefore(t *testing.T) {
	l := newRangeListLeaf(0)
	mustInsert(t, l, 100, 110)
	mustInsert(t, l, 0, 5)

	want := []rowRange{{0, 5}, {100, 110}}
	if l.rangeLen != 2 || l.ranges[0] != want[0] || l.ranges[1] != want[1] {
		t.Fatalf("got %v", l.ranges[:l.rangeLen])
	}
}

func TestRangeListDuplicateRejected(t *testing.T) {
	l := newRangeListLeaf(0)
	mustInsert(t, l, 10, 20)

	if err := l.InsertRun(15, 15); err != ErrDuplicate {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}
	if l.rangeLen != 1 || l.ranges[0] != (rowRange{10, 20}) {
		t.Fatalf("leaf mutated on duplicate: %v", l.ranges[:l.rangeLen])
	}
}

func TestRangeListSaturationSignalsTransform(t *testing.T) {
	l := newRangeListLeaf(0)
	for i := uint16(0); i < 16; i += 2 {
		mustInsert(t, l, i, i)
	}
	if l.rangeLen != 8 {
		t.Fatalf("rangeLen = %d, want 8", l.rangeLen)
	}

	if err := l.InsertRun(16, 16); err != errNeedsTransform {
		t.Fatalf("got %v, want errNeedsTransform", err)
	}
}

func TestTransformPreservesOrderAndMembership(t *testing.T) {
	l := newRangeListLeaf(0)
	for i := uint16(0); i < 16; i += 2 {
		mustInsert(t, l, i, i)
	}

	nl := l.toBitmap()
	if err := nl.InsertRun(16, 16); err != nil {
		t.Fatalf("InsertRun after transform: %v", err)
	}

	want := []uint16{0, 2, 4, 6, 8, 10, 12, 14, 16}
	got := collectAscend(nl)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBitmapDuplicateIsAtomic(t *testing.T) {
	l := newRangeListLeaf(0).toBitmap()
	mustInsert(t, l, 100, 200)

	if err := l.InsertRun(150, 250); err != ErrDuplicate {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}
	// rows 201..250, which do not overlap the existing range, must not
	// have been inserted: duplicate detection is check-then-set, not
	// a partial commit.
	for i := uint16(201); i <= 250; i++ {
		if l.bitmap.test(i) {
			t.Fatalf("row %d was inserted despite duplicate in the same run", i)
		}
	}
}

func TestDescendIsReverseOfAscend(t *testing.T) {
	l := newRangeListLeaf(0)
	mustInsert(t, l, 5, 8)
	mustInsert(t, l, 20, 22)

	asc := collectAscend(l)
	desc := collectDescend(l)
	if len(asc) != len(desc) {
		t.Fatalf("length mismatch: %v vs %v", asc, desc)
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("not reverse: %v vs %v", asc, desc)
		}
	}
}
