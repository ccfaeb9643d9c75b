package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateItem(t *testing.T) {
	t.Run("success with request", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), owner.ID()).Return(true, nil)
		d.requests.EXPECT().Exists(gomock.Any(), int64(7)).Return(true, nil)
		d.items.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, it *item.Item) (*item.Item, error) {
				return item.Reconstruct(11, it.OwnerID(), it.Name(), it.Description(), it.Available(), it.RequestID()), nil
			})

		got, err := d.itemService.Create(d.ctx, owner.ID(), application.CreateItemRequest{
			Name:        "Drill",
			Description: "Cordless drill",
			Available:   ptr(true),
			RequestID:   ptr(int64(7)),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID)
		assert.Equal(t, owner.ID(), got.OwnerID)
		assert.Equal(t, ptr(int64(7)), got.RequestID)
		assert.True(t, got.Available)
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), owner.ID()).Return(true, nil)
		d.requests.EXPECT().Exists(gomock.Any(), int64(7)).Return(false, nil)
		d.items.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.itemService.Create(d.ctx, owner.ID(), application.CreateItemRequest{
			Name: "Drill", Description: "Cordless drill", Available: ptr(true), RequestID: ptr(int64(7)),
		})
		require.ErrorIs(t, err, request.ErrItemRequestNotFound)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)

		_, err := d.itemService.Create(d.ctx, 99, application.CreateItemRequest{
			Name: "Drill", Description: "Cordless drill", Available: ptr(true),
		})
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("owner changes availability only", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), owner.ID()).Return(true, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := d.itemService.Update(d.ctx, owner.ID(), 10, application.UpdateItemRequest{Available: ptr(false)})

		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, "Tent", got.Name)
		assert.Equal(t, "Two person tent", got.Description)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), booker.ID()).Return(true, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.items.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.itemService.Update(d.ctx, booker.ID(), 10, application.UpdateItemRequest{Name: ptr("Hijacked")})

		require.ErrorIs(t, err, item.ErrNotItemOwner)
		kind, _ := domain.KindOf(err)
		assert.Equal(t, domain.KindForbidden, kind)
	})
}

func TestGetItemViews(t *testing.T) {
	last := bookingDomain.ReconstructBooking(1, now.Add(-2*time.Hour), now.Add(-time.Hour), tent(), booker, bookingDomain.StatusWaiting)
	next := bookingDomain.ReconstructBooking(2, now.Add(time.Hour), now.Add(2*time.Hour), tent(), booker, bookingDomain.StatusWaiting)
	comment := item.ReconstructComment(4, 10, booker.ID(), booker.Name(), "Great tent", now.Add(-30*time.Minute))

	t.Run("owner sees last and next", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), owner.ID()).Return(true, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.comments.EXPECT().FindByItemID(gomock.Any(), int64(10)).Return([]*item.Comment{comment}, nil)
		d.bookings.EXPECT().FindLastForItem(gomock.Any(), int64(10), now).Return(last, nil)
		d.bookings.EXPECT().FindNextForItem(gomock.Any(), int64(10), now).Return(next, nil)

		got, err := d.itemService.GetByID(d.ctx, owner.ID(), 10)

		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		assert.Equal(t, int64(1), got.LastBooking.ID)
		assert.Equal(t, booker.ID(), got.LastBooking.BookerID)
		assert.Equal(t, int64(2), got.NextBooking.ID)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "Bob", got.Comments[0].AuthorName)
	})

	t.Run("others never see bookings", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), booker.ID()).Return(true, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.comments.EXPECT().FindByItemID(gomock.Any(), int64(10)).Return([]*item.Comment{}, nil)
		d.bookings.EXPECT().FindLastForItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		d.bookings.EXPECT().FindNextForItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := d.itemService.GetByID(d.ctx, booker.ID(), 10)

		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.NotNil(t, got.Comments)
	})

	t.Run("owner listing without bookings", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().Exists(gomock.Any(), owner.ID()).Return(true, nil)
		d.items.EXPECT().FindByOwner(gomock.Any(), owner.ID(), gomock.Any()).Return([]*item.Item{tent()}, nil)
		d.comments.EXPECT().FindByItemID(gomock.Any(), int64(10)).Return(nil, nil)
		d.bookings.EXPECT().FindLastForItem(gomock.Any(), int64(10), now).Return(nil, nil)
		d.bookings.EXPECT().FindNextForItem(gomock.Any(), int64(10), now).Return(nil, nil)

		got, err := d.itemService.ListByOwner(d.ctx, owner.ID(), 0, 10)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].LastBooking)
		assert.Nil(t, got[0].NextBooking)
	})
}

func TestSearchItems(t *testing.T) {
	t.Run("blank text matches nothing", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.items.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := d.itemService.Search(d.ctx, "   ", 0, 10)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("delegates to store", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.items.EXPECT().Search(gomock.Any(), "TENT", gomock.Any()).Return([]*item.Item{tent()}, nil)

		got, err := d.itemService.Search(d.ctx, "TENT", 0, 10)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(10), got[0].ID)
	})

	t.Run("paging is validated first", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		_, err := d.itemService.Search(d.ctx, "", -1, 10)
		require.ErrorIs(t, err, domain.ErrFromNegative)
	})
}

func TestPostComment(t *testing.T) {
	t.Run("past booker may comment", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().FindByID(gomock.Any(), booker.ID()).Return(booker, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.bookings.EXPECT().HasFinishedBooking(gomock.Any(), booker.ID(), int64(10), now).Return(true, nil)
		d.comments.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *item.Comment) (*item.Comment, error) {
				return item.ReconstructComment(3, c.ItemID(), c.AuthorID(), c.AuthorName(), c.Text(), c.Created()), nil
			})

		got, err := d.itemService.PostComment(d.ctx, booker.ID(), 10, application.CreateCommentRequest{Text: "Kept us dry"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "Bob", got.AuthorName)
		assert.True(t, got.Created.Equal(now))
	})

	t.Run("without finished booking", func(t *testing.T) {
		ctrl, d := newTestDeps(t)
		defer ctrl.Finish()

		d.users.EXPECT().FindByID(gomock.Any(), stranger.ID()).Return(stranger, nil)
		d.items.EXPECT().FindByID(gomock.Any(), int64(10)).Return(tent(), nil)
		d.bookings.EXPECT().HasFinishedBooking(gomock.Any(), stranger.ID(), int64(10), now).Return(false, nil)
		d.comments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.itemService.PostComment(d.ctx, stranger.ID(), 10, application.CreateCommentRequest{Text: "Looks nice"})

		require.ErrorIs(t, err, item.ErrCommentNotAllowed)
		kind, _ := domain.KindOf(err)
		assert.Equal(t, domain.KindValidation, kind)
	})
}
