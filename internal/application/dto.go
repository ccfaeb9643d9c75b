package application

import (
	"time"

	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
)

// --- Request payloads ---

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest holds a partial user update. Empty fields are left unchanged.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"request_id"`
}

// UpdateItemRequest holds a partial item update.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds the text of a new comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateBookingRequest holds the data needed to book an item.
type CreateBookingRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start" binding:"required,future"`
	End    time.Time `json:"end" binding:"required,future"`
}

// CreateItemRequestRequest holds the description of a wanted item.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// --- Views ---

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemDTO is the response representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// BookingSummaryDTO is the short form of a booking attached to an item view.
type BookingSummaryDTO struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// ItemDetailsDTO is an item together with its comments. LastBooking and
// NextBooking are only filled in for the item owner.
type ItemDetailsDTO struct {
	ItemDTO
	LastBooking *BookingSummaryDTO `json:"last_booking"`
	NextBooking *BookingSummaryDTO `json:"next_booking"`
	Comments    []CommentDTO       `json:"comments"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
	ItemID   int64     `json:"item_id"`
	BookerID int64     `json:"booker_id"`
	Item     ItemDTO   `json:"item"`
	Booker   UserDTO   `json:"booker"`
}

// ItemRequestDTO is the response representation of an item request.
type ItemRequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// --- Mappers ---

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}

func toItemDTO(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
	}
}

func toItemDTOs(items []*item.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos
}

func toCommentDTO(c *item.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.AuthorName(),
		Created:    c.Created(),
	}
}

func toCommentDTOs(comments []*item.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:       bk.ID(),
		Start:    bk.Start(),
		End:      bk.End(),
		Status:   bk.Status().String(),
		ItemID:   bk.Item().ID(),
		BookerID: bk.Booker().ID(),
		Item:     toItemDTO(bk.Item()),
		Booker:   toUserDTO(bk.Booker()),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}

func toBookingSummary(bk *bookingDomain.Booking) *BookingSummaryDTO {
	if bk == nil {
		return nil
	}
	return &BookingSummaryDTO{
		ID:       bk.ID(),
		BookerID: bk.Booker().ID(),
		Start:    bk.Start(),
		End:      bk.End(),
	}
}

// toOwnerItemView builds the item view shown to the owner, with the
// surrounding bookings.
func toOwnerItemView(it *item.Item, last, next *bookingDomain.Booking, comments []*item.Comment) ItemDetailsDTO {
	return ItemDetailsDTO{
		ItemDTO:     toItemDTO(it),
		LastBooking: toBookingSummary(last),
		NextBooking: toBookingSummary(next),
		Comments:    toCommentDTOs(comments),
	}
}

// toPublicItemView builds the item view shown to everyone except the owner.
func toPublicItemView(it *item.Item, comments []*item.Comment) ItemDetailsDTO {
	return ItemDetailsDTO{
		ItemDTO:  toItemDTO(it),
		Comments: toCommentDTOs(comments),
	}
}

// toItemRequestDTO attaches the answering items, which may be nil.
func toItemRequestDTO(r *request.ItemRequest, items []*item.Item) ItemRequestDTO {
	return ItemRequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequestorID: r.RequestorID(),
		Created:     r.Created(),
		Items:       toItemDTOs(items),
	}
}
