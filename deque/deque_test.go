package deque

import "testing"

func TestAddFirstOrdering(t *testing.T) {
	d := New[int](4)
	for i := 1; i <= 3; i++ {
		d.AddFirst(i)
	}
	if d.Size() != 3 {
		t.Fatalf("size = %d, want 3", d.Size())
	}
	// newest first
	for i, want := range []int{3, 2, 1} {
		if got := d.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestEvictionWhenFull(t *testing.T) {
	d := New[int](3)
	for i := 1; i <= 5; i++ {
		d.AddFirst(i)
	}
	if !d.IsFull() || d.Size() != 3 {
		t.Fatalf("size = %d, want full at 3", d.Size())
	}
	for i, want := range []int{5, 4, 3} {
		if got := d.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRemoveLast(t *testing.T) {
	d := New[string](4)
	d.AddFirst("a")
	d.AddFirst("b")

	v, ok := d.RemoveLast()
	if !ok || v != "a" {
		t.Fatalf("RemoveLast = %q, %v; want \"a\", true", v, ok)
	}
	v, ok = d.RemoveLast()
	if !ok || v != "b" {
		t.Fatalf("RemoveLast = %q, %v; want \"b\", true", v, ok)
	}
	if _, ok := d.RemoveLast(); ok {
		t.Fatal("RemoveLast on empty deque should report false")
	}
}

func TestTraverseVisitsNewestFirst(t *testing.T) {
	d := New[int](8)
	for i := 0; i < 5; i++ {
		d.AddFirst(i)
	}
	var seen []int
	d.Traverse(func(i, v int) {
		seen = append(seen, v)
	})
	for i, want := range []int{4, 3, 2, 1, 0} {
		if seen[i] != want {
			t.Fatalf("traverse order %v", seen)
		}
	}
}

func TestClear(t *testing.T) {
	d := New[int](2)
	d.AddFirst(1)
	d.Clear()
	if !d.IsEmpty() {
		t.Fatal("deque should be empty after Clear")
	}
	d.AddFirst(7)
	if d.Get(0) != 7 {
		t.Fatal("deque unusable after Clear")
	}
}
