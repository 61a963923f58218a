package fixedpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedValidUsage(t *testing.T) {
	p, err := New(8, WithChecked())
	require.NoError(t, err)
	defer p.Release()

	// Normal alloc/free cycles must stay silent.
	for i := 0; i < 3; i++ {
		b := p.AllocArray(4)
		p.FreeArray(b, 4)
	}

	s := Alloc[int64](p)
	Free(p, s)

	tmp := AllocScoped[int32](p)
	tmp.Release()
}

func TestCheckedDoubleFree(t *testing.T) {
	p, err := New(8, WithChecked())
	require.NoError(t, err)
	defer p.Release()

	b := p.AllocArray(4)
	p.FreeArray(b, 4)
	assert.PanicsWithValue(t, "fixedpool: double free", func() { p.FreeArray(b, 4) })
}

func TestCheckedForeignBlock(t *testing.T) {
	p, err := New(8, WithChecked())
	require.NoError(t, err)
	defer p.Release()

	other := make([]byte, 8*4)
	assert.PanicsWithValue(t, "fixedpool: free of a block not allocated by this pool",
		func() { p.FreeArray(other, 4) })
}

func TestCheckedSizeMismatch(t *testing.T) {
	p, err := New(8, WithChecked())
	require.NoError(t, err)
	defer p.Release()

	b := p.AllocArray(4)
	assert.Panics(t, func() { p.FreeArray(b, 2) })
}

func TestCheckedReuseCycle(t *testing.T) {
	p, err := New(8, WithChecked())
	require.NoError(t, err)
	defer p.Release()

	// A reused block must be freeable again after being checked out.
	b := p.AllocArray(4)
	p.FreeArray(b, 4)
	b2 := p.AllocArray(4)
	require.Equal(t, addressOf(b), addressOf(b2))
	p.FreeArray(b2, 4)
}
