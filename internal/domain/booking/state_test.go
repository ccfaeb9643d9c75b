package booking_test

import (
	"testing"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
	"github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for token, want := range map[string]booking.State{
		"all":      booking.StateAll,
		"ALL":      booking.StateAll,
		"Current":  booking.StateCurrent,
		"past":     booking.StatePast,
		"FUTURE":   booking.StateFuture,
		"waiting":  booking.StateWaiting,
		"rejected": booking.StateRejected,
	} {
		got, err := booking.ParseState(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got)
	}

	_, err := booking.ParseState("UNSUPPORTED_STATUS")
	require.ErrorIs(t, err, booking.ErrUnknownState)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindBadRequest, kind)
}

func TestFilterMatches(t *testing.T) {
	_, booker, it := fixtures()
	at := func(start, end time.Duration, status booking.BookingStatus) *booking.Booking {
		return booking.ReconstructBooking(1, now.Add(start), now.Add(end), it, booker, status)
	}

	past := at(-2*time.Hour, -time.Hour, booking.StatusApproved)
	current := at(-time.Hour, time.Hour, booking.StatusWaiting)
	future := at(time.Hour, 2*time.Hour, booking.StatusRejected)
	startsNow := at(0, time.Hour, booking.StatusWaiting)
	endsNow := at(-time.Hour, 0, booking.StatusWaiting)

	filter := func(s booking.State) booking.Filter { return booking.Filter{State: s, Now: now} }

	assert.True(t, filter(booking.StateAll).Matches(past))
	assert.True(t, filter(booking.StateAll).Matches(future))

	assert.True(t, filter(booking.StateCurrent).Matches(current))
	assert.True(t, filter(booking.StateCurrent).Matches(startsNow))
	assert.True(t, filter(booking.StateCurrent).Matches(endsNow))
	assert.False(t, filter(booking.StateCurrent).Matches(past))
	assert.False(t, filter(booking.StateCurrent).Matches(future))

	assert.True(t, filter(booking.StatePast).Matches(past))
	assert.False(t, filter(booking.StatePast).Matches(endsNow))
	assert.False(t, filter(booking.StatePast).Matches(current))

	assert.True(t, filter(booking.StateFuture).Matches(future))
	assert.False(t, filter(booking.StateFuture).Matches(startsNow))

	assert.True(t, filter(booking.StateWaiting).Matches(current))
	assert.False(t, filter(booking.StateWaiting).Matches(past))

	assert.True(t, filter(booking.StateRejected).Matches(future))
	assert.False(t, filter(booking.StateRejected).Matches(current))

	assert.False(t, filter(booking.State("BOGUS")).Matches(current))
}
