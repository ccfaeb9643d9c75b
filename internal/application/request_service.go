package application

import (
	"context"

	"github.com/shareit-hub/service-shareit/internal/domain"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"go.uber.org/zap"
)

// ItemRequestService implements use cases for requests of wanted items.
type ItemRequestService struct {
	requests request.ItemRequestRepository
	items    item.ItemRepository
	users    user.UserRepository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewItemRequestService creates a new ItemRequestService.
func NewItemRequestService(
	requests request.ItemRequestRepository,
	items item.ItemRepository,
	users user.UserRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *ItemRequestService {
	return &ItemRequestService{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
		logger:   logger,
	}
}

// Create stores a request for an item on behalf of requestorID.
func (s *ItemRequestService) Create(ctx context.Context, requestorID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	if err := ensureUserExists(ctx, s.users, requestorID); err != nil {
		return nil, err
	}

	r, err := request.NewItemRequest(requestorID, req.Description, s.clock.Now())
	if err != nil {
		return nil, err
	}
	saved, err := s.requests.Save(ctx, r)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item request created",
		zap.Int64("request_id", saved.ID()),
		zap.Int64("requestor_id", requestorID),
	)
	result := toItemRequestDTO(saved, nil)
	return &result, nil
}

// ListOwn returns the requestor's own requests, newest first.
func (s *ItemRequestService) ListOwn(ctx context.Context, requestorID int64) ([]ItemRequestDTO, error) {
	if err := ensureUserExists(ctx, s.users, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// ListOthers returns a page of requests made by everyone but requestorID.
func (s *ItemRequestService) ListOthers(ctx context.Context, requestorID int64, from, size int) ([]ItemRequestDTO, error) {
	if err := ensureUserExists(ctx, s.users, requestorID); err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.FindOthers(ctx, requestorID, page)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// GetByID returns one request with the items offered in answer.
func (s *ItemRequestService) GetByID(ctx context.Context, actorID, requestID int64) (*ItemRequestDTO, error) {
	if err := ensureUserExists(ctx, s.users, actorID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.withItems(ctx, []*request.ItemRequest{r})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// withItems loads the answering items of all requests in one query.
func (s *ItemRequestService) withItems(ctx context.Context, requests []*request.ItemRequest) ([]ItemRequestDTO, error) {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID()
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]*item.Item, len(requests))
	for _, it := range items {
		if it.RequestID() != nil {
			byRequest[*it.RequestID()] = append(byRequest[*it.RequestID()], it)
		}
	}

	dtos := make([]ItemRequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = toItemRequestDTO(r, byRequest[r.ID()])
	}
	return dtos, nil
}
