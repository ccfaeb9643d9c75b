package mocks_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-hub/service-shareit/internal/application"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	_ bookingDomain.BookingRepository = (*mocks.MockBookingRepository)(nil)
	_ item.ItemRepository             = (*mocks.MockItemRepository)(nil)
	_ item.CommentRepository          = (*mocks.MockCommentRepository)(nil)
	_ request.ItemRequestRepository   = (*mocks.MockItemRequestRepository)(nil)
	_ user.UserRepository             = (*mocks.MockUserRepository)(nil)
	_ application.Transactor          = (*mocks.MockTransactor)(nil)
	_ application.EventPublisher      = (*mocks.MockEventPublisher)(nil)
)

func TestMockBookingRepository_SaveAndUpdatePassBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingRepository(ctrl)
	ctx := context.Background()

	start := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	bk := bookingDomain.ReconstructBooking(0, start, start.Add(time.Hour), nil, user.ReconstructUser(2, "booker", "b@example.com"), bookingDomain.StatusWaiting)
	saved := bookingDomain.ReconstructBooking(7, start, start.Add(time.Hour), nil, bk.Booker(), bookingDomain.StatusWaiting)

	repo.EXPECT().Save(ctx, bk).Return(saved, nil)
	repo.EXPECT().Update(ctx, saved).Return(nil)

	got, err := repo.Save(ctx, bk)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID())
	require.NoError(t, repo.Update(ctx, got))
}
