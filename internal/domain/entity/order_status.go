package entity

// OrderStatus represents where an order sits in the delivery lifecycle.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderInProgress     OrderStatus = "in_progress"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// orderStatusRank orders the forward lifecycle. Cancelled sits outside the
// chain and is handled separately.
var orderStatusRank = map[OrderStatus]int{
	OrderPending:        0,
	OrderConfirmed:      1,
	OrderInProgress:     2,
	OrderOutForDelivery: 3,
	OrderDelivered:      4,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	if s == OrderCancelled {
		return true
	}
	_, ok := orderStatusRank[s]

	return ok
}

// IsTerminal reports whether no further transition may leave this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step:
// one step forward along pending -> confirmed -> in_progress ->
// out_for_delivery -> delivered, or to cancelled from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == OrderCancelled {
		return true
	}

	return orderStatusRank[next] == orderStatusRank[s]+1
}
