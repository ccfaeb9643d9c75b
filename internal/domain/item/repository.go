package item

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_item_repository.go -package=mocks

import (
	"context"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*Item, error)
	// Search matches available items whose name or description contains text, ignoring case.
	Search(ctx context.Context, text string, page domain.Page) ([]*Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
	Save(ctx context.Context, it *Item) (*Item, error)
	Update(ctx context.Context, it *Item) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)
	Save(ctx context.Context, c *Comment) (*Comment, error)
}
