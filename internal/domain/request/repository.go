package request

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_request_repository.go -package=mocks

import (
	"context"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

// ItemRequestRepository defines persistence operations for item requests.
type ItemRequestRepository interface {
	// FindByID retrieves a request, failing with ErrItemRequestNotFound when absent.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// Exists reports whether a request with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// FindByRequestor returns the user's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)

	// FindOthers returns requests made by everyone except the user, newest first.
	FindOthers(ctx context.Context, requestorID int64, page domain.Page) ([]*ItemRequest, error)

	// Save persists a new request and returns it with its assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)
}
