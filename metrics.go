package fixedpool

// NumBlocks returns how many blocks the pool currently owns, free and
// checked out combined.
func (p *Pool) NumBlocks() int {
	return len(p.blocks)
}

// NumFree returns how many owned blocks are sitting in free lists,
// ready for reuse.
func (p *Pool) NumFree() int {
	n := 0
	for _, stack := range p.free {
		n += len(stack)
	}
	return n
}

// NumInUse returns how many owned blocks are currently checked out.
func (p *Pool) NumInUse() int {
	return p.NumBlocks() - p.NumFree()
}

// MaxElemSize returns the largest element byte size requested so far,
// which is also the width of the free-list table.
func (p *Pool) MaxElemSize() int {
	return len(p.free)
}

// BytesReserved returns the total size in bytes of all owned blocks.
func (p *Pool) BytesReserved() int {
	n := 0
	for _, b := range p.blocks {
		n += len(b)
	}
	return n
}

// Utilization returns the ratio of checked-out blocks to owned blocks
// (0.0 to 1.0). Returns 0.0 when the pool owns no blocks.
func (p *Pool) Utilization() float64 {
	owned := p.NumBlocks()
	if owned == 0 {
		return 0
	}
	return float64(p.NumInUse()) / float64(owned)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		ArrayLen:      p.arrayLen,
		BlocksOwned:   p.NumBlocks(),
		BlocksFree:    p.NumFree(),
		BlocksInUse:   p.NumInUse(),
		MaxElemSize:   p.MaxElemSize(),
		BytesReserved: p.BytesReserved(),
		Utilization:   p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	ArrayLen      int     // Fixed element count per block
	BlocksOwned   int     // Blocks obtained from the memory system
	BlocksFree    int     // Blocks in free lists
	BlocksInUse   int     // Blocks checked out to callers
	MaxElemSize   int     // Largest element size seen
	BytesReserved int     // Total bytes across all owned blocks
	Utilization   float64 // Ratio of in-use to owned blocks (0.0-1.0)
}
