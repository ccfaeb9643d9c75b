package booking

import "github.com/shareit-hub/service-shareit/internal/domain"

var (
	ErrBookingNotFound = domain.NewError(domain.KindNotFound, "BOOKING_NOT_FOUND", "booking not found")

	ErrItemNotAvailable      = domain.NewError(domain.KindValidation, "ITEM_NOT_AVAILABLE", "item is not available")
	ErrInvalidDateTime       = domain.NewError(domain.KindValidation, "INVALID_DATE_TIME", "booking end must be after start")
	ErrBookerIsOwner         = domain.NewError(domain.KindValidation, "BOOKER_AND_OWNER_ARE_SAME", "owner cannot book own item")
	ErrStatusAlreadySet      = domain.NewError(domain.KindValidation, "STATUS_ALREADY_SET", "status already set")
	ErrNotItemOwner          = domain.NewError(domain.KindForbidden, "ILLEGAL_ACCESS_NOT_OWNER", "only the item owner can change booking status")
	ErrNotBookingParticipant = domain.NewError(domain.KindForbidden, "ILLEGAL_ACCESS_NOT_PARTICIPANT", "only the booker or the item owner can view the booking")

	// ErrUnknownState is returned for a state filter token outside the six known values.
	ErrUnknownState = domain.NewError(domain.KindBadRequest, "UNKNOWN_STATE", "Unknown state")
)

// NewNotFoundError reports a missing booking.
func NewNotFoundError(id int64) error {
	return ErrBookingNotFound.Withf("booking with id=%d not found", id)
}
