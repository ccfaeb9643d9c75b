package application

import (
	"context"
	"strconv"

	"github.com/shareit-hub/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/events"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"github.com/shareit-hub/service-shareit/internal/platform/kafka"
	"go.uber.org/zap"
)

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	tx        Transactor
	repo      bookingDomain.BookingRepository
	users     user.UserRepository
	items     item.ItemRepository
	publisher EventPublisher
	topic     string
	clock     clock.Clock
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	tx Transactor,
	repo bookingDomain.BookingRepository,
	users user.UserRepository,
	items item.ItemRepository,
	publisher EventPublisher,
	topic string,
	clk clock.Clock,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		tx:        tx,
		repo:      repo,
		users:     users,
		items:     items,
		publisher: publisher,
		topic:     topic,
		clock:     clk,
		logger:    logger,
	}
}

// Create stores a WAITING booking of an item on behalf of bookerID.
func (s *BookingService) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	var saved *bookingDomain.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		booker, err := s.users.FindByID(ctx, bookerID)
		if err != nil {
			return err
		}
		it, err := s.items.FindByID(ctx, req.ItemID)
		if err != nil {
			return err
		}

		bk, err := bookingDomain.NewBooking(booker, it, req.Start, req.End)
		if err != nil {
			return err
		}

		saved, err = s.repo.Save(ctx, bk)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", saved.Item().ID()),
		zap.Int64("booker_id", bookerID),
	)

	evt := events.BookingCreatedEvent{
		BookingID:  saved.ID(),
		ItemID:     saved.Item().ID(),
		BookerID:   saved.Booker().ID(),
		OwnerID:    saved.Item().OwnerID(),
		Start:      saved.Start(),
		End:        saved.End(),
		OccurredAt: s.clock.Now(),
	}
	s.publishEvent(ctx, events.BookingCreated, saved.ID(), evt)

	result := toBookingDTO(saved)
	return &result, nil
}

// SetStatus approves or rejects a booking. Only the owner of the booked item
// may decide.
func (s *BookingService) SetStatus(ctx context.Context, actorID, bookingID int64, approved bool) (*BookingDTO, error) {
	var bk *bookingDomain.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		bk, err = s.repo.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := bk.Decide(actorID, approved); err != nil {
			return err
		}
		return s.repo.Update(ctx, bk)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.Int64("booking_id", bk.ID()),
		zap.String("status", bk.Status().String()),
		zap.Int64("owner_id", actorID),
	)

	evt := events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.Item().ID(),
		BookerID:   bk.Booker().ID(),
		OwnerID:    actorID,
		Status:     bk.Status().String(),
		OccurredAt: s.clock.Now(),
	}
	s.publishEvent(ctx, events.DecisionType(approved), bk.ID(), evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetByID retrieves a booking visible to its booker and to the item owner.
func (s *BookingService) GetByID(ctx context.Context, actorID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.IsVisibleTo(actorID) {
		return nil, bookingDomain.ErrNotBookingParticipant.Withf(
			"user with id=%d is neither the booker nor the owner of booking with id=%d", actorID, bookingID)
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListByBooker retrieves the bookings made by bookerID, latest end first.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, state bookingDomain.State, from, size int) ([]BookingDTO, error) {
	page, err := s.prepareListing(ctx, bookerID, from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByBooker(ctx, bookerID, s.filter(state), page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// ListByOwner retrieves the bookings of items owned by ownerID, latest end first.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, state bookingDomain.State, from, size int) ([]BookingDTO, error) {
	page, err := s.prepareListing(ctx, ownerID, from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByOwner(ctx, ownerID, s.filter(state), page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// --- Helpers ---

func (s *BookingService) prepareListing(ctx context.Context, userID int64, from, size int) (domain.Page, error) {
	if err := ensureUserExists(ctx, s.users, userID); err != nil {
		return domain.Page{}, err
	}
	return domain.NewPage(from, size)
}

func (s *BookingService) filter(state bookingDomain.State) bookingDomain.Filter {
	return bookingDomain.Filter{State: state, Now: s.clock.Now()}
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID int64, data any) {
	cloudEvent, err := kafka.NewCloudEvent(events.Source, eventType, strconv.FormatInt(bookingID, 10), data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, s.topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", s.topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
