package application

import (
	"context"
	"strings"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"go.uber.org/zap"
)

// ItemService implements use cases for listing, searching and commenting on items.
type ItemService struct {
	tx       Transactor
	items    item.ItemRepository
	comments item.CommentRepository
	bookings bookingDomain.BookingRepository
	users    user.UserRepository
	requests request.ItemRequestRepository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	tx Transactor,
	items item.ItemRepository,
	comments item.CommentRepository,
	bookings bookingDomain.BookingRepository,
	users user.UserRepository,
	requests request.ItemRequestRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		tx:       tx,
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		requests: requests,
		clock:    clk,
		logger:   logger,
	}
}

// Create lists a new item owned by ownerID, optionally in answer to a request.
func (s *ItemService) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if err := ensureUserExists(ctx, s.users, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, request.NewNotFoundError(*req.RequestID)
		}
	}

	available := req.Available != nil && *req.Available
	it, err := item.NewItem(ownerID, req.Name, req.Description, available, req.RequestID)
	if err != nil {
		return nil, err
	}

	saved, err := s.items.Save(ctx, it)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		zap.Int64("item_id", saved.ID()),
		zap.Int64("owner_id", ownerID),
	)
	result := toItemDTO(saved)
	return &result, nil
}

// Update applies a partial change to an item. Only its owner may change it.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	if err := ensureUserExists(ctx, s.users, ownerID); err != nil {
		return nil, err
	}

	var it *item.Item
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		it, err = s.items.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !it.IsOwnedBy(ownerID) {
			return item.ErrNotItemOwner.Withf("user with id=%d does not own item with id=%d", ownerID, itemID)
		}

		it.Apply(item.Patch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		return s.items.Update(ctx, it)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item updated", zap.Int64("item_id", itemID))
	result := toItemDTO(it)
	return &result, nil
}

// GetByID returns an item with its comments. The owner also sees the last
// and next bookings.
func (s *ItemService) GetByID(ctx context.Context, actorID, itemID int64) (*ItemDetailsDTO, error) {
	if err := ensureUserExists(ctx, s.users, actorID); err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result, err := s.view(ctx, it, actorID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByOwner returns a page of the owner's items in owner view.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailsDTO, error) {
	if err := ensureUserExists(ctx, s.users, ownerID); err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	dtos := make([]ItemDetailsDTO, len(items))
	for i, it := range items {
		if dtos[i], err = s.view(ctx, it, ownerID, now); err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

// Search returns available items whose name or description contains text.
// Blank text matches nothing.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(items), nil
}

// PostComment stores a comment by a user who has finished a booking of the item.
func (s *ItemService) PostComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	finished, err := s.bookings.HasFinishedBooking(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, item.ErrCommentNotAllowed.Withf(
			"user with id=%d has no finished booking of item with id=%d", authorID, itemID)
	}

	c, err := item.NewComment(itemID, authorID, author.Name(), req.Text, now)
	if err != nil {
		return nil, err
	}
	saved, err := s.comments.Save(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment posted",
		zap.Int64("comment_id", saved.ID()),
		zap.Int64("item_id", itemID),
		zap.Int64("author_id", authorID),
	)
	result := toCommentDTO(saved)
	return &result, nil
}

// view picks the owner or the public view of it for actorID.
func (s *ItemService) view(ctx context.Context, it *item.Item, actorID int64, now time.Time) (ItemDetailsDTO, error) {
	comments, err := s.comments.FindByItemID(ctx, it.ID())
	if err != nil {
		return ItemDetailsDTO{}, err
	}
	if !it.IsOwnedBy(actorID) {
		return toPublicItemView(it, comments), nil
	}

	last, err := s.bookings.FindLastForItem(ctx, it.ID(), now)
	if err != nil {
		return ItemDetailsDTO{}, err
	}
	next, err := s.bookings.FindNextForItem(ctx, it.ID(), now)
	if err != nil {
		return ItemDetailsDTO{}, err
	}
	return toOwnerItemView(it, last, next, comments), nil
}
