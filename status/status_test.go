package status

import (
	"reflect"
	"sync"
	"testing"
)

func TestMetricMap_GetReturnsStablePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("badge.runner")
	a.Set(12)

	b := m.Get("badge.runner")
	if a != b {
		t.Fatal("expected cached pointer on second Get")
	}
	if got := b.Get(); got != 12 {
		t.Errorf("expected 12, got %v", got)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k).Store(k)
	}

	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		keys = append(keys, key+"="+ptr.Load())
	})

	want := []string{"a=a", "b=b", "c=c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("range order = %v, want %v", keys, want)
		}
	}
}

func TestAtomicFloat_RaiseIsHighWater(t *testing.T) {
	var f AtomicFloat
	f.Raise(5)
	f.Raise(3)
	if got := f.Get(); got != 5 {
		t.Errorf("Raise lowered value to %v", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			f.Raise(v)
		}(float64(i))
	}
	wg.Wait()
	if got := f.Get(); got != 63 {
		t.Errorf("expected high water 63, got %v", got)
	}
}

func TestRegistry_Badge(t *testing.T) {
	r := NewRegistry()
	r.Badge("react").Set(7)
	if got := r.Floats.Get(BadgePrefix + "react").Get(); got != 7 {
		t.Errorf("badge gauge not shared, got %v", got)
	}
	if r.TotalCount() != 1 {
		t.Errorf("expected 1 metric, got %d", r.TotalCount())
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Badge("runner").Set(412)
	r.Ints.Get(FrameCount).Add(3)
	r.Bools.Get(AudioMuted).Store(true)
	r.Strings.Get(ActiveGame).Store("react")

	want := []string{
		`arcade.active="react"`,
		"audio.muted=true",
		"badge.runner=412",
		"frames.flushed=3",
	}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}
