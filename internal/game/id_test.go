package game

import "testing"

func TestIDAllocator(t *testing.T) {
	var ids IDAllocator
	last := -1
	for i := 0; i < 100; i++ {
		id := ids.Allocate()
		if id <= last {
			t.Log("previous", last)
			t.Log("allocated", id)
			t.Fail()
		}
		last = id
	}

	ids.Reset()
	if id := ids.Allocate(); id != 0 {
		t.Log("allocated after reset", id)
		t.Fail()
	}
}

func TestIDAllocatorsAreIndependent(t *testing.T) {
	var a, b IDAllocator
	a.Allocate()
	a.Allocate()
	if id := b.Allocate(); id != 0 {
		t.Log("second allocator started at", id)
		t.Fail()
	}
}
