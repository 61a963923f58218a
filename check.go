package fixedpool

import "fmt"

// checkTable tracks per-block ownership state for pools built
// WithChecked. It trades hot-path speed for detection of free-list
// contract violations: double frees, foreign blocks, and element size
// mismatches between alloc and free.
type checkTable struct {
	state map[*byte]blockState // keyed by the block's first byte
}

type blockState struct {
	elemSize int
	free     bool
}

func newCheckTable() *checkTable {
	return &checkTable{state: make(map[*byte]blockState)}
}

// checkOut records a block as held by a caller, whether it is fresh or
// popped from a free list.
func (t *checkTable) checkOut(buf []byte, elemSize int) {
	t.state[&buf[0]] = blockState{elemSize: elemSize}
}

func (t *checkTable) checkIn(buf []byte, elemSize int) {
	key := &buf[0]
	st, ok := t.state[key]
	if !ok {
		panic("fixedpool: free of a block not allocated by this pool")
	}
	if st.free {
		panic("fixedpool: double free")
	}
	if st.elemSize != elemSize {
		panic(fmt.Sprintf("fixedpool: free with element size %d, block was allocated with %d", elemSize, st.elemSize))
	}
	t.state[key] = blockState{elemSize: elemSize, free: true}
}
