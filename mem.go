package fixedpool

import "unsafe"

// Alignment is the byte alignment of every block a Pool hands out.
// 64 matches a cache line and keeps SIMD-friendly bulk element
// processing fast.
const Alignment = 64

// Memory is the underlying memory system a Pool obtains blocks from.
// Running out of memory is the only failure mode; implementations
// report it by panicking and the pool propagates the panic unchanged,
// leaving its registry and free lists as they were.
type Memory interface {
	// AllocAligned returns a block of exactly size bytes whose first
	// byte is aligned to Alignment.
	AllocAligned(size int) []byte

	// Release gives a block back. The pool calls it exactly once per
	// block, from Pool.Release.
	Release(b []byte)
}

// GoMemory allocates blocks on the Go heap, over-allocating by
// Alignment and shifting to the next 64-byte boundary. Release is a
// no-op: the garbage collector reclaims a block once the pool drops
// its reference.
type GoMemory struct{}

// AllocAligned returns a 64-byte-aligned block of size bytes.
func (GoMemory) AllocAligned(size int) []byte {
	buf := make([]byte, size+Alignment) // padding for 64-byte alignment
	addr := int(addressOf(buf))
	next := roundUpToMultipleOf64(addr)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

// Release does nothing; the block is garbage collected once
// unreferenced.
func (GoMemory) Release(b []byte) {}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func roundUpToMultipleOf64(v int) int {
	return (v + Alignment - 1) &^ (Alignment - 1)
}
