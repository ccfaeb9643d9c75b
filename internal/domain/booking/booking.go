package booking

import (
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
)

// Booking is the aggregate root for the booking domain. It reserves an item
// for a booker between start and end.
type Booking struct {
	id     int64
	start  time.Time
	end    time.Time
	item   *item.Item
	booker *user.User
	status BookingStatus
}

// NewBooking creates an unsaved Booking with status=WAITING.
//
// Checks run in a fixed order: item availability, then the interval, then
// that the booker does not own the item.
func NewBooking(booker *user.User, it *item.Item, start, end time.Time) (*Booking, error) {
	if !it.Available() {
		return nil, ErrItemNotAvailable.Withf("item with id=%d is not available", it.ID())
	}
	if !end.After(start) {
		return nil, ErrInvalidDateTime.Withf("booking end %s must be after start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if it.IsOwnedBy(booker.ID()) {
		return nil, ErrBookerIsOwner.Withf("user with id=%d owns item with id=%d", booker.ID(), it.ID())
	}

	return &Booking{
		start:  start,
		end:    end,
		item:   it,
		booker: booker,
		status: StatusWaiting,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id int64,
	start, end time.Time,
	it *item.Item,
	booker *user.User,
	status BookingStatus,
) *Booking {
	return &Booking{
		id:     id,
		start:  start,
		end:    end,
		item:   it,
		booker: booker,
		status: status,
	}
}

// --- Getters ---

// ID returns the identifier assigned by the store, zero before the first save.
func (b *Booking) ID() int64 { return b.id }

// Start returns the beginning of the reserved interval.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reserved interval.
func (b *Booking) End() time.Time { return b.end }

// Item returns the booked item as read with the booking.
func (b *Booking) Item() *item.Item { return b.item }

// Booker returns the requesting user as read with the booking.
func (b *Booking) Booker() *user.User { return b.booker }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// --- Behavior ---

// IsManagedBy reports whether userID owns the booked item.
func (b *Booking) IsManagedBy(userID int64) bool {
	return b.item.IsOwnedBy(userID)
}

// IsVisibleTo reports whether userID is the booker or the item owner.
func (b *Booking) IsVisibleTo(userID int64) bool {
	return b.booker.ID() == userID || b.IsManagedBy(userID)
}

// Approve transitions the booking to APPROVED.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return ErrStatusAlreadySet.Withf("booking with id=%d is already %s", b.id, b.status)
	}
	b.status = StatusApproved
	return nil
}

// Reject transitions the booking to REJECTED. Rejecting twice is not an error.
func (b *Booking) Reject() {
	b.status = StatusRejected
}

// Decide approves or rejects the booking on behalf of actorID, who must own the item.
func (b *Booking) Decide(actorID int64, approve bool) error {
	if !b.IsManagedBy(actorID) {
		return ErrNotItemOwner.Withf("user with id=%d does not own item with id=%d", actorID, b.item.ID())
	}
	if approve {
		return b.Approve()
	}
	b.Reject()
	return nil
}
