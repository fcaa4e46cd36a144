package game

// IDAllocator mints note IDs for one document. It is not safe for
// concurrent use.
type IDAllocator struct {
	next int
}

func (a *IDAllocator) Allocate() int {
	id := a.next
	a.next++
	return id
}

// Reset restarts allocation at 0, for a freshly emptied document.
func (a *IDAllocator) Reset() {
	a.next = 0
}
