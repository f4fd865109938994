package cache

import "testing"

func TestCacheGetSetRoundTrip(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = (%d,%v), want (1,true)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get(missing) = true, want false")
	}
}

func TestCacheGetOrCreateCallsOnce(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 42
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate = %d, want 42", v)
	}
	if calls != 1 {
		t.Fatalf("create called %d times, want 1", calls)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // touch 1, making 2 the least recently used
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Fatal("key 2 should have been evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Fatal("key 1 should still be cached")
	}
	if _, ok := c.Get(3); !ok {
		t.Fatal("key 3 should be cached")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Fatal("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Fatal("Delete(a) second time = true, want false")
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", c.Len())
	}
}

func TestCacheUnlimitedWithZeroSoftLimit(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", c.Len())
	}
}
