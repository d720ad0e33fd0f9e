package mines

// worklist is a FIFO of cell indices threaded through next, so no index can
// be queued twice while it is still pending.
type worklist struct {
	next       []int
	head, tail int
}

func newWorklist(n int) *worklist {
	return &worklist{next: make([]int, n), head: -1, tail: -1}
}

func (wl *worklist) add(i int) {
	if wl.tail >= 0 {
		wl.next[wl.tail] = i
	} else {
		wl.head = i
	}
	wl.tail = i
	wl.next[i] = -1
}

func (wl *worklist) pop() (int, bool) {
	if wl.head < 0 {
		return -1, false
	}
	i := wl.head
	wl.head = wl.next[i]
	if wl.head < 0 {
		wl.tail = -1
	}
	return i, true
}

func (wl *worklist) empty() bool {
	return wl.head < 0
}
