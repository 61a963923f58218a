package fixedpool

import (
	"fmt"
	"testing"
)

func BenchmarkAllocFreeCycle(b *testing.B) {
	sizes := []int{4, 8, 16, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			p, _ := New(1024)
			defer p.Release()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf := p.AllocArray(size)
				p.FreeArray(buf, size)
			}
		})
	}
}

func BenchmarkPoolVsBuiltin(b *testing.B) {
	b.Run("pool", func(b *testing.B) {
		p, _ := New(1024)
		defer p.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf := p.AllocArray(8)
			p.FreeArray(buf, 8)
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 1024*8)
		}
	})
}

func BenchmarkScopedOverhead(b *testing.B) {
	b.Run("raw", func(b *testing.B) {
		p, _ := New(1024)
		defer p.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf := p.AllocArray(8)
			p.FreeArray(buf, 8)
		}
	})

	b.Run("scoped", func(b *testing.B) {
		p, _ := New(1024)
		defer p.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tmp := p.AllocArrayScoped(8)
			tmp.Release()
		}
	})
}

func BenchmarkCheckedMode(b *testing.B) {
	b.Run("unchecked", func(b *testing.B) {
		p, _ := New(1024)
		defer p.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf := p.AllocArray(8)
			p.FreeArray(buf, 8)
		}
	})

	b.Run("checked", func(b *testing.B) {
		p, _ := New(1024, WithChecked())
		defer p.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf := p.AllocArray(8)
			p.FreeArray(buf, 8)
		}
	})
}
