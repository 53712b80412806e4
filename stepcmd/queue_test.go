package stepcmd

import "testing"

func TestNewQueueRoundsUpToPowerOfTwo(t *testing.T) {
	tests := []struct {
		capacity int
		wantCap  int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{16, 16},
		{17, 32},
	}
	for _, tt := range tests {
		q := NewQueue(tt.capacity)
		if q.Cap() != tt.wantCap {
			t.Errorf("NewQueue(%d).Cap() = %d, want %d", tt.capacity, q.Cap(), tt.wantCap)
		}
	}
}

func TestQueueEmptyFull(t *testing.T) {
	q := NewQueue(4)
	if !q.IsEmpty() {
		t.Fatal("new queue should be empty")
	}
	if q.IsFull() {
		t.Fatal("new queue should not be full")
	}
	for i := 0; i < q.Cap()-1; i++ {
		if q.AddEntry(1000, 10, 0, false) != AddOK {
			t.Fatalf("AddEntry %d failed unexpectedly", i)
		}
	}
	if !q.IsFull() {
		t.Fatal("queue should be full after filling to Cap()-1 entries")
	}
	if q.AddEntry(1000, 10, 0, false) != AddFull {
		t.Fatal("AddEntry on a full queue should return AddFull")
	}
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue(8)
	want := []uint32{100, 200, 300}
	for _, i0 := range want {
		if r := q.AddEntry(i0, 1, 0, false); r != AddOK {
			t.Fatalf("AddEntry(%d) = %v, want AddOK", i0, r)
		}
	}
	for _, i0 := range want {
		c, ok := q.Pop()
		if !ok {
			t.Fatal("Pop returned !ok before queue was drained")
		}
		if got := c.Interval(); got != i0 {
			t.Errorf("Pop order broken: got interval %d, want %d", got, i0)
		}
	}
	if !q.IsEmpty() {
		t.Fatal("queue should be empty after draining all pushed entries")
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue should return ok=false")
	}
}

func TestQueueAddEntryValidationDoesNotMutateOnError(t *testing.T) {
	q := NewQueue(4)
	if r := q.AddEntry(MaxInterval+1, 10, 0, false); r != AddIntervalTooHigh {
		t.Fatalf("AddEntry = %v, want AddIntervalTooHigh", r)
	}
	if !q.IsEmpty() {
		t.Fatal("a rejected AddEntry must not enqueue a command")
	}

	if r := q.AddEntry(1000, 0, 0, false); r != AddStepsError {
		t.Fatalf("AddEntry = %v, want AddStepsError", r)
	}
	if !q.IsEmpty() {
		t.Fatal("a rejected AddEntry must not enqueue a command")
	}
}

func TestQueueDirectionFlipPacking(t *testing.T) {
	q := NewQueue(4)
	q.AddEntry(1000, 5, 0, true)
	c, ok := q.Pop()
	if !ok {
		t.Fatal("expected a queued command")
	}
	if !c.FlipsDirection() {
		t.Error("expected flip bit to be set")
	}
	if c.StepCount() != 5 {
		t.Errorf("StepCount() = %d, want 5", c.StepCount())
	}
}

func TestQueuePeekPositionDelta(t *testing.T) {
	q := NewQueue(4)
	q.AddEntry(1000, 7, 0, false)

	delta, flips, ok := q.PeekPositionDelta(true)
	if !ok {
		t.Fatal("expected a peekable command")
	}
	if flips {
		t.Error("expected no direction flip")
	}
	if delta != 7 {
		t.Errorf("delta = %d, want 7 (forward run)", delta)
	}

	q2 := NewQueue(4)
	q2.AddEntry(1000, 7, 0, true)
	delta2, flips2, _ := q2.PeekPositionDelta(true)
	if !flips2 {
		t.Error("expected direction flip")
	}
	if delta2 != -7 {
		t.Errorf("delta = %d, want -7 (reversed run)", delta2)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue(4)
	q.AddEntry(1000, 1, 0, false)
	q.AddEntry(1000, 1, 0, false)
	q.Clear()
	if !q.IsEmpty() {
		t.Fatal("Clear should empty the queue")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Clear", q.Len())
	}
}
