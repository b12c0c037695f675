package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

func TestListProperty(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.properties.CreateFn = func(ctx context.Context, property *domain.Property) error {
		property.ID = 11
		return nil
	}

	property, err := portal.ListProperty(context.Background(),
		"Sunny Loft", "Top floor", "12 Hill St", "Downtown", "North",
		"apartment", 250000)
	require.NoError(t, err)

	assert.Equal(t, int64(11), property.ID)
	assert.Equal(t, domain.PropertyStatusAvailable, property.Status)
	assert.Equal(t, domain.PropertyTypeApartment, property.PropertyType)
	assert.False(t, property.ListingDate.IsZero())
}

func TestListPropertyRejectsUnknownType(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	_, err := portal.ListProperty(context.Background(),
		"Sunny Loft", "", "12 Hill St", "", "", "castle", 250000)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
	assert.Zero(t, stores.properties.CreateCalls.Count)
}

func TestListPropertyRejectsNonPositivePrice(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	_, err := portal.ListProperty(context.Background(),
		"Sunny Loft", "", "12 Hill St", "", "", "house", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonPositivePrice)
	assert.Zero(t, stores.properties.CreateCalls.Count)
}

func TestUpdatePropertyStatus(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	err := portal.UpdatePropertyStatus(context.Background(), 5, domain.PropertyStatusUnderOffer)
	require.NoError(t, err)

	require.Equal(t, 1, stores.properties.UpdateStatusCalls.Count)
	assert.Equal(t, int64(5), stores.properties.UpdateStatusCalls.IDs[0])
	assert.Equal(t, domain.PropertyStatusUnderOffer, stores.properties.UpdateStatusCalls.Statuses[0])
}

func TestUpdatePropertyStatusNotFound(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.properties.UpdateStatusFn = func(ctx context.Context, id int64, status domain.PropertyStatus) error {
		return store.ErrPropertyNotFound
	}

	err := portal.UpdatePropertyStatus(context.Background(), 404, domain.PropertyStatusSold)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeletePropertyConstraintViolation(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.properties.DeleteFn = func(ctx context.Context, id int64) error {
		return store.ErrConstraintViolation
	}

	err := portal.DeleteProperty(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
}

func TestGetPropertyStatisticsEmptyStore(t *testing.T) {
	t.Parallel()
	portal, _ := newTestPortal(t)

	stats, err := portal.GetPropertyStatistics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProperties)
	assert.Zero(t, stats.AvgPrice)
	assert.Zero(t, stats.MinPrice)
	assert.Zero(t, stats.MaxPrice)
}
