// Package fixedpool implements a pooling allocator for arrays that all
// hold the same number of elements. Typical usage: create one pool per
// evaluation pass, allocate per-call-site temporary arrays from it, free
// them back for reuse, then Release() at the end of the pass for bulk
// cleanup.
package fixedpool

import "errors"

// ErrInvalidArrayLength is returned by New when the requested array
// length is zero or negative.
var ErrInvalidArrayLength = errors.New("fixedpool: array length must be positive")

// Pool hands out and reclaims blocks sized to hold a fixed number of
// elements of a caller-chosen element size. Freed blocks are recycled
// through per-element-size LIFO free lists, so repeated alloc/free
// cycles at one size keep reusing the same memory instead of hitting
// the allocator again.
//
// A Pool owns every block it has ever produced until Release. It is not
// goroutine-safe; use one Pool per goroutine or external locking.
type Pool struct {
	mem      Memory
	blocks   [][]byte   // every block ever obtained, handed back in Release
	free     [][][]byte // free[i] is a LIFO stack of blocks of element size i+1
	arrayLen int
	checks   *checkTable // nil unless WithChecked
	released bool
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithMemory sets the underlying memory system blocks are obtained from.
// Defaults to GoMemory.
func WithMemory(m Memory) Option {
	return func(p *Pool) { p.mem = m }
}

// WithChecked makes FreeArray validate its contract (block came from
// this pool, same element size, not already free) and panic on
// violations. Intended for debug builds; the default unchecked mode
// pays no bookkeeping cost on the hot path.
func WithChecked() Option {
	return func(p *Pool) { p.checks = newCheckTable() }
}

// New creates a Pool whose blocks all hold arrayLen elements. No memory
// is allocated until the first AllocArray call.
func New(arrayLen int, opts ...Option) (*Pool, error) {
	if arrayLen <= 0 {
		return nil, ErrInvalidArrayLength
	}
	p := &Pool{arrayLen: arrayLen, mem: GoMemory{}}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ArrayLen returns the fixed element count every block of this pool holds.
func (p *Pool) ArrayLen() int {
	return p.arrayLen
}

// AllocArray returns a block of ArrayLen()*elemSize bytes aligned to
// Alignment. The most recently freed block of the same element size is
// reused when one exists (O(1), no allocation); otherwise a fresh block
// is obtained from the memory system. Reused blocks keep their previous
// contents.
//
// Panics if elemSize is not positive.
func (p *Pool) AllocArray(elemSize int) []byte {
	stack := p.stackFor(elemSize)
	if n := len(*stack); n > 0 {
		buf := (*stack)[n-1]
		*stack = (*stack)[:n-1]
		if p.checks != nil {
			p.checks.checkOut(buf, elemSize)
		}
		return buf
	}
	buf := p.mem.AllocAligned(p.arrayLen * elemSize)
	p.blocks = append(p.blocks, buf)
	if p.checks != nil {
		p.checks.checkOut(buf, elemSize)
	}
	return buf
}

// FreeArray pushes buf onto the free list for elemSize, making it the
// next block AllocArray(elemSize) hands out. The block must have come
// from AllocArray on this pool with the same element size and must not
// already be free; violations are undefined behavior unless the pool
// was built WithChecked.
func (p *Pool) FreeArray(buf []byte, elemSize int) {
	stack := p.stackFor(elemSize)
	if p.checks != nil {
		p.checks.checkIn(buf, elemSize)
	}
	*stack = append(*stack, buf)
}

// AllocArrayScoped allocates like AllocArray and binds the block to a
// handle that frees it on Release. Pair with defer so the block goes
// back on every exit path.
func (p *Pool) AllocArrayScoped(elemSize int) *Scoped[byte] {
	return &Scoped[byte]{pool: p, buf: p.AllocArray(elemSize), elemSize: elemSize}
}

// Release hands every block the pool has ever obtained back to the
// memory system, each exactly once, whether it is free or still checked
// out, and makes the pool unusable. Any subsequent allocation or free
// panics. A second Release is a no-op.
//
// Blocks and handles still held by callers are dangling after Release;
// the pool does not detect them.
func (p *Pool) Release() {
	for _, buf := range p.blocks {
		p.mem.Release(buf)
	}
	p.blocks = nil
	p.free = nil
	p.checks = nil
	p.released = true
}

// stackFor returns the free stack for elemSize, growing the table with
// empty stacks up to that slot on first sight. Sizes map to slots as
// elemSize-1, so lookups for already-seen sizes are direct indexing
// with no hash step.
func (p *Pool) stackFor(elemSize int) *[][]byte {
	if elemSize <= 0 {
		panic("fixedpool: element size must be positive")
	}
	p.panicIfReleased()
	idx := elemSize - 1
	if idx >= len(p.free) {
		p.free = append(p.free, make([][][]byte, idx+1-len(p.free))...)
	}
	return &p.free[idx]
}

// panicIfReleased panics if the pool has been released.
func (p *Pool) panicIfReleased() {
	if p.released {
		panic("fixedpool: use after Release()")
	}
}
