package booking

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_booking_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

// BookingRepository defines the persistence contract for booking aggregates.
// Bookings are returned with their item and booker loaded.
type BookingRepository interface {
	// FindByID retrieves a booking, failing with ErrBookingNotFound when absent.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// ListByBooker retrieves bookings made by a user, ordered by end descending.
	ListByBooker(ctx context.Context, bookerID int64, filter Filter, page domain.Page) ([]*Booking, error)

	// ListByOwner retrieves bookings of items owned by a user, ordered by end descending.
	ListByOwner(ctx context.Context, ownerID int64, filter Filter, page domain.Page) ([]*Booking, error)

	// FindLastForItem returns the latest-ending non-rejected booking that started at or before now, or nil.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem returns the earliest non-rejected booking starting after now, or nil.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// HasFinishedBooking reports whether the user has a non-rejected booking of the item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)

	// Save persists a new booking and returns it with its assigned id.
	Save(ctx context.Context, booking *Booking) (*Booking, error)

	// Update persists a status change of an existing booking.
	Update(ctx context.Context, booking *Booking) error
}
