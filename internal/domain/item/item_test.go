package item_test

import (
	"testing"
	"time"

	"github.com/shareit-hub/service-shareit/internal/domain"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reqID := int64(9)
		it, err := item.NewItem(1, "Drill", "Cordless drill", true, &reqID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), it.OwnerID())
		assert.True(t, it.Available())
		assert.Equal(t, &reqID, it.RequestID())
		assert.True(t, it.IsOwnedBy(1))
		assert.False(t, it.IsOwnedBy(2))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := item.NewItem(1, "", "desc", true, nil)
		require.Error(t, err)

		_, err = item.NewItem(1, "Drill", " ", true, nil)
		require.Error(t, err)

		_, err = item.NewItem(0, "Drill", "desc", true, nil)
		kind, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindValidation, kind)
	})
}

func TestItemApply(t *testing.T) {
	it := item.Reconstruct(5, 1, "Drill", "Cordless drill", true, nil)

	it.Apply(item.Patch{Available: ptr(false)})
	assert.False(t, it.Available())
	assert.Equal(t, "Drill", it.Name())

	it.Apply(item.Patch{Name: ptr(""), Description: ptr("Hammer drill")})
	assert.Equal(t, "Drill", it.Name())
	assert.Equal(t, "Hammer drill", it.Description())

	it.Apply(item.Patch{Name: ptr("Big drill")})
	assert.Equal(t, "Big drill", it.Name())
	assert.False(t, it.Available())
}

func TestNewComment(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	c, err := item.NewComment(3, 2, "Bob", "Great drill", now)
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.AuthorName())
	assert.Equal(t, now, c.Created())

	_, err = item.NewComment(3, 2, "Bob", "  ", now)
	require.Error(t, err)
}
