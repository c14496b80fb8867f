package order

import (
	"testing"

	"github.com/juanmaberdugo/reto-7/internal/models"
)

func TestDequeueEmpty(t *testing.T) {
	q := NewQueue(testLogger())

	o, ok := q.Dequeue()
	if ok {
		t.Error("Dequeue() on empty queue reported ok = true")
	}
	if o != nil {
		t.Errorf("Dequeue() on empty queue returned %v, want nil", o)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after empty dequeue, want 0", q.Len())
	}
}

func TestFIFOIdentity(t *testing.T) {
	q := NewQueue(testLogger())

	first := New(testLogger())
	first.AddItem(models.NewBeverage("Coca Cola", 3000.00, 500, true), 2)
	second := New(testLogger())
	second.AddItem(models.NewMainCourse("Hamburguesa", 12000.00, "EE.UU", 15), 1)

	q.Enqueue(first)
	q.Enqueue(second)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	// Dequeue returns the very same orders, oldest first.
	got, ok := q.Dequeue()
	if !ok || got != first {
		t.Errorf("first Dequeue() = %v, %v; want the first enqueued order", got, ok)
	}
	got, ok = q.Dequeue()
	if !ok || got != second {
		t.Errorf("second Dequeue() = %v, %v; want the second enqueued order", got, ok)
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue() on drained queue reported ok = true")
	}
}
