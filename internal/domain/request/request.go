// Package request models requests for items that nobody has listed yet.
package request

import (
	"strings"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

// ErrItemRequestNotFound is returned when no item request has the requested id.
var ErrItemRequestNotFound = domain.NewError(domain.KindNotFound, "ITEM_REQUEST_NOT_FOUND", "item request not found")

// NewNotFoundError reports a missing item request.
func NewNotFoundError(id int64) error {
	return ErrItemRequestNotFound.Withf("item request with id=%d not found", id)
}

// ItemRequest is a user's description of an item they would like to borrow.
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

// NewItemRequest creates an unsaved item request.
func NewItemRequest(requestorID int64, description string, created time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	return &ItemRequest{
		description: description,
		requestorID: requestorID,
		created:     created,
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data (no validation).
func Reconstruct(id, requestorID int64, description string, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequestorID() int64  { return r.requestorID }
func (r *ItemRequest) Created() time.Time  { return r.created }
