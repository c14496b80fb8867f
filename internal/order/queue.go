package order

import "log/slog"

// Queue is a strict FIFO of orders awaiting processing. There is no
// capacity bound, no peek and no priority.
type Queue struct {
	orders []*Order
	logger *slog.Logger
}

// NewQueue creates an empty order queue.
func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{logger: logger}
}

// Enqueue appends the order to the tail, unconditionally.
func (q *Queue) Enqueue(o *Order) {
	q.orders = append(q.orders, o)
	q.logger.Info("order queued", "order_id", o.ID(), "pending", len(q.orders))
}

// Dequeue removes and returns the oldest order. The second return value is
// false when no orders are pending; callers must check it before using the
// order.
func (q *Queue) Dequeue() (*Order, bool) {
	if len(q.orders) == 0 {
		q.logger.Info("no pending orders")
		return nil, false
	}

	o := q.orders[0]
	q.orders = q.orders[1:]
	return o, true
}

// Len returns the number of pending orders.
func (q *Queue) Len() int { return len(q.orders) }
