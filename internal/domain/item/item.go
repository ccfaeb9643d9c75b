package item

import (
	"strings"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

var (
	ErrItemNotFound = domain.NewError(domain.KindNotFound, "ITEM_NOT_FOUND", "item not found")

	// ErrNotItemOwner is returned when someone other than the owner edits an item.
	ErrNotItemOwner = domain.NewError(domain.KindForbidden, "ILLEGAL_ACCESS_ITEM", "only the owner can change the item")
)

// NewNotFoundError reports a missing item.
func NewNotFoundError(id int64) error {
	return ErrItemNotFound.Withf("item with id=%d not found", id)
}

// Item is a shareable object listed by its owner.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

// NewItem creates an unsaved item owned by ownerID, optionally answering an item request.
func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	if ownerID <= 0 {
		return nil, domain.NewValidationError("owner ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("item name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("item description is required")
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// --- Getters ---

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }

// --- Behavior ---

// IsOwnedBy checks if the item belongs to the given user.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// Patch holds the optional fields of a partial item update.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply changes the fields set in p. Blank strings are ignored.
func (i *Item) Apply(p Patch) {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		i.name = *p.Name
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		i.description = *p.Description
	}
	if p.Available != nil {
		i.available = *p.Available
	}
}
