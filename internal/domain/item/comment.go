package item

import (
	"strings"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

// ErrCommentNotAllowed is returned when the author never finished a booking of the item.
var ErrCommentNotAllowed = domain.NewError(domain.KindValidation, "COMMENT_NOT_ALLOWED", "only past bookers can comment")

// Comment is feedback left on an item by a user who booked it.
type Comment struct {
	id         int64
	text       string
	itemID     int64
	authorID   int64
	authorName string
	created    time.Time
}

// NewComment creates an unsaved comment.
func NewComment(itemID, authorID int64, authorName, text string, created time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	return &Comment{
		text:       text,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    created,
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data (no validation).
func ReconstructComment(id, itemID, authorID int64, authorName, text string, created time.Time) *Comment {
	return &Comment{
		id:         id,
		text:       text,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) AuthorName() string { return c.authorName }
func (c *Comment) Created() time.Time { return c.created }
