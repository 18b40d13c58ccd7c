package slotmap

import "testing"

func BenchmarkAllocateFree(b *testing.B) {
	pool := New[int](WithInitialCapacity(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, err := pool.Allocate(i)
		if err != nil {
			b.Fatal(err)
		}
		pool.Free(h)
	}
}

func BenchmarkGet(b *testing.B) {
	pool := New[int]()

	h, err := pool.Allocate(42)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := pool.Get(h); !ok {
			b.Fatal("handle went stale")
		}
	}
}

func BenchmarkGetStale(b *testing.B) {
	pool := New[int]()

	h, err := pool.Allocate(42)
	if err != nil {
		b.Fatal(err)
	}
	pool.Free(h)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := pool.Get(h); ok {
			b.Fatal("stale handle resolved")
		}
	}
}

func BenchmarkAllocateGrow(b *testing.B) {
	b.ReportAllocs()

	pool := New[int]()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Allocate(i); err != nil {
			b.Fatal(err)
		}
	}
}
