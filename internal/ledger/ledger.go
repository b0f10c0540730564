package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxIDAttempts bounds regeneration when a generator returns a taken id.
const maxIDAttempts = 8

// optionalID is a tagged optional friend id.
type optionalID struct {
	id  string
	set bool
}

func someID(id string) optionalID { return optionalID{id: id, set: true} }

func (o optionalID) is(id string) bool { return o.set && o.id == id }

// Ledger is the in-memory friend list with its selection and
// pending-delete markers. Every method is a single state transition:
// on error nothing has changed.
//
// A Ledger is not safe for concurrent use; callers drive it from one
// event loop.
type Ledger struct {
	friends    []Friend
	selected   optionalID
	pending    optionalID
	ids        IDGenerator
	observers  []Observer
	tagAvatars bool
	now        func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger) error

// WithIDGenerator sets the generator used by AddFriend.
func WithIDGenerator(g IDGenerator) Option {
	return func(l *Ledger) error {
		if g == nil {
			return fmt.Errorf("%w: nil id generator", ErrValidation)
		}
		l.ids = g
		return nil
	}
}

// WithFriends preloads the ledger. Ids must be non-empty and unique.
func WithFriends(friends []Friend) Option {
	return func(l *Ledger) error {
		for _, f := range friends {
			if f.ID == "" {
				return fmt.Errorf("%w: friend %q has no id", ErrValidation, f.Name)
			}
			if l.index(f.ID) >= 0 {
				return fmt.Errorf("%w: duplicate friend id %q", ErrValidation, f.ID)
			}
			l.friends = append(l.friends, f)
		}
		return nil
	}
}

// WithObserver registers an observer for every successful mutation.
func WithObserver(o Observer) Option {
	return func(l *Ledger) error {
		if o != nil {
			l.observers = append(l.observers, o)
		}
		return nil
	}
}

// WithAvatarTagging makes AddFriend append "?=<id>" to the image
// reference so every friend gets a distinct avatar URL.
func WithAvatarTagging() Option {
	return func(l *Ledger) error {
		l.tagAvatars = true
		return nil
	}
}

// New returns an empty ledger configured by opts.
func New(opts ...Option) (*Ledger, error) {
	l := &Ledger{
		ids: UUIDGenerator{},
		now: time.Now,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Seeded returns a ledger holding SeedFriends followed by opts.
func Seeded(opts ...Option) (*Ledger, error) {
	return New(append([]Option{WithFriends(SeedFriends())}, opts...)...)
}

// AddFriend appends a friend with a zero balance. Selection is untouched.
func (l *Ledger) AddFriend(name, image string) (Friend, error) {
	name = strings.TrimSpace(name)
	image = strings.TrimSpace(image)
	if name == "" {
		return Friend{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if image == "" {
		return Friend{}, fmt.Errorf("%w: image is required", ErrValidation)
	}

	id, err := l.freshID()
	if err != nil {
		return Friend{}, err
	}
	if l.tagAvatars {
		image = image + "?=" + id
	}

	f := Friend{ID: id, Name: name, Image: image, Balance: decimal.Zero}
	l.friends = append(l.friends, f)
	l.emit(EventAdded, f, decimal.Zero)
	return f, nil
}

// ToggleSelect selects id, or clears the selection if id is already selected.
func (l *Ledger) ToggleSelect(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if l.selected.is(id) {
		l.selected = optionalID{}
		l.emit(EventDeselected, l.friends[i], decimal.Zero)
		return nil
	}
	l.selected = someID(id)
	l.emit(EventSelected, l.friends[i], decimal.Zero)
	return nil
}

// Deselect clears the selection, closing the split flow.
func (l *Ledger) Deselect() {
	if !l.selected.set {
		return
	}
	f, _ := l.Friend(l.selected.id)
	l.selected = optionalID{}
	l.emit(EventDeselected, f, decimal.Zero)
}

// RequestDelete marks id for deletion. The friend stays in the ledger
// until ConfirmDelete.
func (l *Ledger) RequestDelete(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	l.pending = someID(id)
	l.emit(EventDeleteRequested, l.friends[i], decimal.Zero)
	return nil
}

// ConfirmDelete removes the pending friend and returns it. A selection
// pointing at that friend is cleared.
func (l *Ledger) ConfirmDelete() (Friend, error) {
	if !l.pending.set {
		return Friend{}, ErrNoPendingOperation
	}
	id := l.pending.id
	i := l.index(id)
	if i < 0 {
		l.pending = optionalID{}
		return Friend{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	f := l.friends[i]
	l.friends = append(l.friends[:i:i], l.friends[i+1:]...)
	if l.selected.is(f.ID) {
		l.selected = optionalID{}
	}
	l.pending = optionalID{}
	l.emit(EventDeleted, f, decimal.Zero)
	return f, nil
}

// CancelDelete drops the pending marker without touching the friends.
func (l *Ledger) CancelDelete() {
	if !l.pending.set {
		return
	}
	f, _ := l.Friend(l.pending.id)
	l.pending = optionalID{}
	l.emit(EventDeleteCancelled, f, decimal.Zero)
}

// SettleBill adds amount to the selected friend's balance and clears the
// selection. id must be the selected friend.
func (l *Ledger) SettleBill(id string, amount decimal.Decimal) (Friend, error) {
	if !l.selected.set {
		return Friend{}, fmt.Errorf("%w: no friend selected", ErrInvalidState)
	}
	if !l.selected.is(id) {
		return Friend{}, fmt.Errorf("%w: %q is not the selected friend", ErrInvalidState, id)
	}
	i := l.index(id)
	if i < 0 {
		return Friend{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	l.friends[i].Balance = l.friends[i].Balance.Add(amount)
	l.selected = optionalID{}
	f := l.friends[i]
	l.emit(EventSettled, f, amount)
	return f, nil
}

// Friends returns a copy of the friends in insertion order.
func (l *Ledger) Friends() []Friend {
	out := make([]Friend, len(l.friends))
	copy(out, l.friends)
	return out
}

// Len returns the number of friends.
func (l *Ledger) Len() int {
	return len(l.friends)
}

// Friend looks up a friend by id.
func (l *Ledger) Friend(id string) (Friend, bool) {
	i := l.index(id)
	if i < 0 {
		return Friend{}, false
	}
	return l.friends[i], true
}

// Selected returns the selected friend, if any.
func (l *Ledger) Selected() (Friend, bool) {
	if !l.selected.set {
		return Friend{}, false
	}
	return l.Friend(l.selected.id)
}

// PendingDelete returns the friend awaiting delete confirmation, if any.
func (l *Ledger) PendingDelete() (Friend, bool) {
	if !l.pending.set {
		return Friend{}, false
	}
	return l.Friend(l.pending.id)
}

// Totals sums balances on each side.
func (l *Ledger) Totals() Totals {
	t := Totals{OwedToUser: decimal.Zero, UserOwes: decimal.Zero}
	for _, f := range l.friends {
		switch f.Standing() {
		case Owed:
			t.OwedToUser = t.OwedToUser.Add(f.Balance)
		case Owes:
			t.UserOwes = t.UserOwes.Add(f.Balance.Neg())
		}
	}
	t.Net = t.OwedToUser.Sub(t.UserOwes)
	return t
}

func (l *Ledger) index(id string) int {
	for i := range l.friends {
		if l.friends[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) freshID() (string, error) {
	for range maxIDAttempts {
		id := l.ids.Generate()
		if id != "" && l.index(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate a unique friend id", ErrInvalidState)
}

func (l *Ledger) emit(kind EventKind, f Friend, amount decimal.Decimal) {
	if len(l.observers) == 0 {
		return
	}
	e := Event{
		Kind:       kind,
		FriendID:   f.ID,
		FriendName: f.Name,
		Amount:     amount,
		Balance:    f.Balance,
		At:         l.now(),
	}
	for _, o := range l.observers {
		o.Observe(e)
	}
}
