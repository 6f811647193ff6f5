package entities

import "errors"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// TransitionTable maps a status to the statuses it may move to.
// A status mapped to an empty slice is terminal. Self-transitions are
// never allowed: a status is not listed among its own successors, so
// no-op updates are rejected and duplicate notifications never fire.
type TransitionTable map[Status][]Status

// DefaultTransitions is the business rule for order lifecycles:
//
//	Pending ──> Shipped ──> Delivered
//	   │            │
//	   └──> Cancelled <─────┘
func DefaultTransitions() TransitionTable {
	return TransitionTable{
		StatusPending:   {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

func (t TransitionTable) Allowed(from, to Status) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (t TransitionTable) Terminal(s Status) bool {
	next, ok := t[s]
	return ok && len(next) == 0
}
