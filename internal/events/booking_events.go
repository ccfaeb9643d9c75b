// Package events defines the booking lifecycle events published to Kafka.
package events

import "time"

// TopicBookingEvents is the default topic for booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Source is the CloudEvent source of every event this service emits.
const Source = "service-shareit"

// Booking event types.
const (
	BookingCreated  = "booking.created"
	BookingApproved = "booking.approved"
	BookingRejected = "booking.rejected"
)

// BookingCreatedEvent is emitted after a booking request is stored.
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDecidedEvent is emitted after the item owner approves or rejects a booking.
type BookingDecidedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DecisionType returns the event type for an owner's decision.
func DecisionType(approved bool) string {
	if approved {
		return BookingApproved
	}
	return BookingRejected
}
