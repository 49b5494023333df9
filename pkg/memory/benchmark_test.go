package memory

import "testing"

// ============ Strong handle benchmarks ============

func BenchmarkStrong_NewAndClose(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewStrong(&leaf{})
		s.Close()
	}
}

func BenchmarkStrong_Clone(b *testing.B) {
	s := NewStrong(&leaf{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Close()
	}
	s.Close()
}

func BenchmarkStrong_Get(b *testing.B) {
	s := NewStrong(&leaf{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Get()
	}
	s.Close()
}

func BenchmarkStrong_AssignMove(b *testing.B) {
	a := NewStrong(&leaf{name: "a"})
	c := NewStrong(&leaf{name: "c"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.AssignMove(&c)
	}
	a.Close()
	c.Close()
}

// ============ Weak handle benchmarks ============

func BenchmarkWeak_NewAndClose(b *testing.B) {
	s := NewStrong(&leaf{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := NewWeak(s)
		w.Close()
	}
	s.Close()
}

func BenchmarkWeak_Upgrade(b *testing.B) {
	s := NewStrong(&leaf{})
	w := NewWeak(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		up := w.Upgrade()
		up.Close()
	}
	w.Close()
	s.Close()
}

// ============ Collector benchmarks ============

func BenchmarkCollectCycles_Empty(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CollectCycles()
	}
}

func BenchmarkCollectCycles_SingleTwoNodeCycle(b *testing.B) {
	log := map[string]int{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := newNode("a", log)
		c := newNode("b", log)
		a.Get().next = c.Clone()
		c.Get().next = a.Clone()
		a.Close()
		c.Close()
		CollectCycles()
	}
}

func BenchmarkCollectCycles_ManyIndependentCycles(b *testing.B) {
	const cycles = 50
	log := map[string]int{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for n := 0; n < cycles; n++ {
			a := newNode("a", log)
			c := newNode("b", log)
			a.Get().next = c.Clone()
			c.Get().next = a.Clone()
			a.Close()
			c.Close()
		}
		CollectCycles()
	}
}

func BenchmarkRootBufferStats(b *testing.B) {
	log := map[string]int{}
	a := newNode("stats-a", log)
	c := newNode("stats-b", log)
	a.Get().next = c.Clone()
	c.Get().next = a.Clone()
	a.Close()
	c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RootBufferStats()
	}
	CollectCycles()
}

// ============ Baseline comparisons ============

func BenchmarkBaseline_PointerDeref(b *testing.B) {
	data := 42
	ptr := &data
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = *ptr
	}
}

func BenchmarkBaseline_Alloc(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = new(leaf)
	}
}

func BenchmarkCompare_StrongGetVsRaw(b *testing.B) {
	s := NewStrong(&leaf{})

	b.Run("Raw", func(b *testing.B) {
		data := 42
		ptr := &data
		for i := 0; i < b.N; i++ {
			_ = *ptr
		}
	})

	b.Run("Strong_Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = s.Get()
		}
	})

	s.Close()
}
