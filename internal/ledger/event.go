package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind names a ledger mutation.
type EventKind string

const (
	EventAdded           EventKind = "added"
	EventSelected        EventKind = "selected"
	EventDeselected      EventKind = "deselected"
	EventDeleteRequested EventKind = "delete_requested"
	EventDeleteCancelled EventKind = "delete_cancelled"
	EventDeleted         EventKind = "deleted"
	EventSettled         EventKind = "settled"
)

// Event describes one successful state transition.
// Amount is only set for EventSettled; Balance is the friend's balance
// after the transition.
type Event struct {
	Kind       EventKind
	FriendID   string
	FriendName string
	Amount     decimal.Decimal
	Balance    decimal.Decimal
	At         time.Time
}

// Observer receives ledger events. Implementations must not call back
// into the ledger that emitted the event.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
