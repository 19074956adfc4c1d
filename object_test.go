package yajson

import (
	"fmt"
	"testing"
)

func TestObjectIndexThresholdBoundary(t *testing.T) {
	for _, n := range []int{indexThreshold - 1, indexThreshold} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			o := newObject(0)
			for i := 0; i < n; i++ {
				o.insert(fmt.Sprintf("k%d", i), NewInteger(int64(i)))
			}
			wantIndexed := n >= indexThreshold
			if o.useIndex() != wantIndexed {
				t.Errorf("useIndex() = %v, want %v", o.useIndex(), wantIndexed)
			}
			for i := 0; i < n; i++ {
				v := o.find(fmt.Sprintf("k%d", i))
				if v == nil {
					t.Fatalf("k%d missing", i)
				}
				if got, _ := v.AsInteger(); got != int64(i) {
					t.Errorf("k%d = %d, want %d", i, got, i)
				}
			}
		})
	}
}

func TestObjectInsertOverwritesInPlace(t *testing.T) {
	o := newObject(0)
	o.insert("a", NewInteger(1))
	o.insert("b", NewInteger(2))
	o.insert("a", NewInteger(99))

	if o.size() != 2 {
		t.Fatalf("size = %d, want 2", o.size())
	}
	keys := o.Keys()
	if keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}
	v := o.find("a")
	if got, _ := v.AsInteger(); got != 99 {
		t.Errorf("a = %d, want 99", got)
	}
}

func TestObjectEraseShiftsAndRebuildsIndex(t *testing.T) {
	o := newObject(0)
	for i := 0; i < indexThreshold+4; i++ {
		o.insert(fmt.Sprintf("k%d", i), NewInteger(int64(i)))
	}
	if !o.erase("k0") {
		t.Fatal("erase(k0) should report true")
	}
	if o.contains("k0") {
		t.Error("k0 should be gone")
	}
	for i := 1; i < indexThreshold+4; i++ {
		if !o.contains(fmt.Sprintf("k%d", i)) {
			t.Errorf("k%d should still be present", i)
		}
	}
}

func TestObjectEqualIgnoresOrder(t *testing.T) {
	a := newObject(0)
	a.insert("x", NewInteger(1))
	a.insert("y", NewInteger(2))

	b := newObject(0)
	b.insert("y", NewInteger(2))
	b.insert("x", NewInteger(1))

	if !a.equal(b) {
		t.Error("objects with same pairs in different order should be equal")
	}
}

func TestObjectAppendUncheckedThenRebuild(t *testing.T) {
	o := newObject(0)
	for i := 0; i < indexThreshold+1; i++ {
		o.appendUnchecked(fmt.Sprintf("k%d", i), NewInteger(int64(i)))
	}
	// Before rebuildIndex, find() must still work: the index is nil, so
	// find builds it lazily from entries.
	if v := o.find("k0"); v == nil {
		t.Fatal("k0 missing before rebuildIndex")
	}
	o.rebuildIndex()
	if !o.useIndex() {
		t.Fatal("expected index to be built above threshold")
	}
	if v := o.find(fmt.Sprintf("k%d", indexThreshold)); v == nil {
		t.Error("last appended key missing after rebuildIndex")
	}
}
