package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/shareit-hub/service-shareit/internal/events"
	"github.com/shareit-hub/service-shareit/internal/mocks"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var (
	owner    = user.ReconstructUser(1, "Olivia", "olivia@example.com")
	booker   = user.ReconstructUser(2, "Bob", "bob@example.com")
	stranger = user.ReconstructUser(3, "Sam", "sam@example.com")
)

func tent() *item.Item {
	return item.Reconstruct(10, owner.ID(), "Tent", "Two person tent", true, nil)
}

type testDeps struct {
	tx        *mocks.MockTransactor
	users     *mocks.MockUserRepository
	items     *mocks.MockItemRepository
	comments  *mocks.MockCommentRepository
	requests  *mocks.MockItemRequestRepository
	bookings  *mocks.MockBookingRepository
	publisher *mocks.MockEventPublisher

	bookingService *application.BookingService
	itemService    *application.ItemService
	requestService *application.ItemRequestService
	userService    *application.UserService
	ctx            context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		tx:        mocks.NewMockTransactor(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		items:     mocks.NewMockItemRepository(ctrl),
		comments:  mocks.NewMockCommentRepository(ctrl),
		requests:  mocks.NewMockItemRequestRepository(ctrl),
		bookings:  mocks.NewMockBookingRepository(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		ctx:       context.Background(),
	}

	d.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	clk := clock.Fixed(now)
	log := zap.NewNop()
	d.bookingService = application.NewBookingService(
		d.tx, d.bookings, d.users, d.items, d.publisher, events.TopicBookingEvents, clk, log)
	d.itemService = application.NewItemService(
		d.tx, d.items, d.comments, d.bookings, d.users, d.requests, clk, log)
	d.requestService = application.NewItemRequestService(d.requests, d.items, d.users, clk, log)
	d.userService = application.NewUserService(d.users, log)

	return ctrl, d
}

func ptr[T any](v T) *T { return &v }
