package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its identifier together with its item and booker.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.withRelations(ctx).Where("bookings.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingDomain.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// ListByBooker retrieves a page of the user's bookings matching filter.
func (r *GormBookingRepository) ListByBooker(ctx context.Context, bookerID int64, filter bookingDomain.Filter, page domain.Page) ([]*bookingDomain.Booking, error) {
	scope, err := stateScope(filter)
	if err != nil {
		return nil, err
	}

	var models []BookingModel
	if err := r.withRelations(ctx).
		Scopes(scope).
		Where("bookings.booker_id = ?", bookerID).
		Order("bookings.end_date DESC, bookings.id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find booker bookings: %w", err)
	}
	return toDomainBookings(models)
}

// ListByOwner retrieves a page of bookings of the user's items matching filter.
func (r *GormBookingRepository) ListByOwner(ctx context.Context, ownerID int64, filter bookingDomain.Filter, page domain.Page) ([]*bookingDomain.Booking, error) {
	scope, err := stateScope(filter)
	if err != nil {
		return nil, err
	}

	var models []BookingModel
	if err := r.withRelations(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Scopes(scope).
		Where("items.owner_id = ?", ownerID).
		Order("bookings.end_date DESC, bookings.id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner bookings: %w", err)
	}
	return toDomainBookings(models)
}

// FindLastForItem returns the non-rejected booking of the item that started
// at or before now and ends latest, or nil when there is none.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.withRelations(ctx).
		Where("bookings.item_id = ?", itemID).
		Where("bookings.start_date <= ?", now).
		Where("bookings.status <> ?", string(bookingDomain.StatusRejected)).
		Order("bookings.end_date DESC, bookings.id DESC").
		Limit(1).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find last booking: %w", err)
	}
	return firstBooking(models)
}

// FindNextForItem returns the non-rejected booking of the item that starts
// soonest after now, or nil when there is none.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.withRelations(ctx).
		Where("bookings.item_id = ?", itemID).
		Where("bookings.start_date > ?", now).
		Where("bookings.status <> ?", string(bookingDomain.StatusRejected)).
		Order("bookings.start_date ASC, bookings.id ASC").
		Limit(1).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find next booking: %w", err)
	}
	return firstBooking(models)
}

// HasFinishedBooking reports whether the user has a non-rejected booking of
// the item that ended before now.
func (r *GormBookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).
		Model(&BookingModel{}).
		Where("booker_id = ? AND item_id = ?", bookerID, itemID).
		Where("end_date < ?", now).
		Where("status <> ?", string(bookingDomain.StatusRejected)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check finished bookings: %w", err)
	}
	return count > 0, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(bk)
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return bookingDomain.ReconstructBooking(
		model.ID,
		bk.Start(),
		bk.End(),
		bk.Item(),
		bk.Booker(),
		bk.Status(),
	), nil
}

// Update persists the status of an existing booking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	result := database.Conn(ctx, r.db).
		Model(&BookingModel{}).
		Where("id = ?", bk.ID()).
		Update("status", string(bk.Status()))
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookingDomain.NewNotFoundError(bk.ID())
	}
	return nil
}

func (r *GormBookingRepository) withRelations(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db).Preload("Item").Preload("Booker")
}

// stateScope translates a state filter into a WHERE clause. The predicates
// mirror Filter.Matches.
func stateScope(filter bookingDomain.Filter) (func(*gorm.DB) *gorm.DB, error) {
	now := filter.Now
	switch filter.State {
	case bookingDomain.StateAll:
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	case bookingDomain.StateCurrent:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.start_date <= ? AND bookings.end_date >= ?", now, now)
		}, nil
	case bookingDomain.StatePast:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.end_date < ?", now)
		}, nil
	case bookingDomain.StateFuture:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.start_date > ?", now)
		}, nil
	case bookingDomain.StateWaiting:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.status = ?", string(bookingDomain.StatusWaiting))
		}, nil
	case bookingDomain.StateRejected:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.status = ?", string(bookingDomain.StatusRejected))
		}, nil
	default:
		return nil, bookingDomain.ErrUnknownState.Withf("Unknown state: %s", filter.State)
	}
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		StartDate: bk.Start(),
		EndDate:   bk.End(),
		ItemID:    bk.Item().ID(),
		BookerID:  bk.Booker().ID(),
		Status:    string(bk.Status()),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.ReconstructBooking(
		m.ID,
		m.StartDate,
		m.EndDate,
		toDomainItem(&m.Item),
		toDomainUser(&m.Booker),
		status,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

func firstBooking(models []BookingModel) (*bookingDomain.Booking, error) {
	if len(models) == 0 {
		return nil, nil
	}
	return toDomainBooking(&models[0])
}
