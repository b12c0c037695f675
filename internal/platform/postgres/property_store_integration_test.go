package postgres_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/postgres"
	"github.com/alienx5499/property-portal/internal/store"
	"github.com/alienx5499/property-portal/internal/testdb"
)

func mustNewProperty(
	t *testing.T,
	title, neighborhood, region string,
	propertyType domain.PropertyType,
	price int64,
) *domain.Property {
	t.Helper()
	property, err := domain.NewProperty(
		title, "Bright and recently renovated", "7 Elm St",
		neighborhood, region, propertyType, price)
	require.NoError(t, err)
	return property
}

func TestPropertyStoreLifecycle(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		properties := postgres.NewPostgresPropertyStore(db, testLogger()).WithTx(tx)

		property := mustNewProperty(t, "Sunny Loft", "Downtown", "North", domain.PropertyTypeApartment, 250_000)
		require.NoError(t, properties.Create(ctx, property))
		require.NotZero(t, property.ID)

		loaded, err := properties.GetByID(ctx, property.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sunny Loft", loaded.Title)
		assert.Equal(t, domain.PropertyTypeApartment, loaded.PropertyType)
		assert.Equal(t, domain.PropertyStatusAvailable, loaded.Status)
		assert.Equal(t, int64(250_000), loaded.CurrentPrice)
		assert.Nil(t, loaded.SoldDate)
		assert.GreaterOrEqual(t, loaded.DaysOnMarket, 0,
			"days on market derives from the listing date")

		require.NoError(t, properties.UpdatePrice(ctx, property.ID, 240_000))
		require.NoError(t, properties.UpdateStatus(ctx, property.ID, domain.PropertyStatusUnderOffer))

		loaded, err = properties.GetByID(ctx, property.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(240_000), loaded.CurrentPrice)
		assert.Equal(t, domain.PropertyStatusUnderOffer, loaded.Status)

		soldDate := time.Now().UTC()
		loaded.Status = domain.PropertyStatusSold
		loaded.SoldDate = &soldDate
		require.NoError(t, properties.Update(ctx, loaded))

		sold, err := properties.GetByID(ctx, property.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PropertyStatusSold, sold.Status)
		require.NotNil(t, sold.SoldDate)
		assert.WithinDuration(t, soldDate, *sold.SoldDate, time.Second)

		require.NoError(t, properties.Delete(ctx, property.ID))
		_, err = properties.GetByID(ctx, property.ID)
		assert.ErrorIs(t, err, store.ErrPropertyNotFound)
	})
}

func TestPropertyStoreNotFound(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		properties := postgres.NewPostgresPropertyStore(db, testLogger()).WithTx(tx)

		_, err := properties.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrPropertyNotFound)

		err = properties.UpdateStatus(ctx, 999999, domain.PropertyStatusSold)
		assert.ErrorIs(t, err, store.ErrPropertyNotFound)

		err = properties.UpdatePrice(ctx, 999999, 100_000)
		assert.ErrorIs(t, err, store.ErrPropertyNotFound)

		err = properties.Delete(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrPropertyNotFound)
	})
}

func TestPropertyStoreQueries(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		properties := postgres.NewPostgresPropertyStore(db, testLogger()).WithTx(tx)

		seed := []*domain.Property{
			mustNewProperty(t, "Sunny Loft", "Downtown", "North", domain.PropertyTypeApartment, 250_000),
			mustNewProperty(t, "Harbour View Condo", "Marina", "North", domain.PropertyTypeCondo, 410_000),
			mustNewProperty(t, "Garden House", "Downtown", "South", domain.PropertyTypeHouse, 620_000),
		}
		for _, p := range seed {
			require.NoError(t, properties.Create(ctx, p))
		}
		require.NoError(t, properties.UpdateStatus(ctx, seed[2].ID, domain.PropertyStatusUnderOffer))

		active, err := properties.FindActiveListings(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 3, "available and under-offer listings are both active")

		downtown, err := properties.FindByNeighborhood(ctx, "Downtown")
		require.NoError(t, err)
		assert.Len(t, downtown, 2)

		condos, err := properties.FindByType(ctx, domain.PropertyTypeCondo)
		require.NoError(t, err)
		require.Len(t, condos, 1)
		assert.Equal(t, "Harbour View Condo", condos[0].Title)

		midRange, err := properties.FindByPriceRange(ctx, 200_000, 500_000)
		require.NoError(t, err)
		assert.Len(t, midRange, 2, "price range bounds are inclusive")

		matches, err := properties.SearchByText(ctx, "harbour condo")
		require.NoError(t, err)
		require.NotEmpty(t, matches, "full-text search should match title words")
		assert.Equal(t, "Harbour View Condo", matches[0].Title)

		none, err := properties.SearchByText(ctx, "lighthouse")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestPropertyStoreStatistics(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		properties := postgres.NewPostgresPropertyStore(db, testLogger()).WithTx(tx)

		empty, err := properties.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Zero(t, empty.TotalProperties)
		assert.Zero(t, empty.AvgPrice)
		assert.Zero(t, empty.MinPrice)
		assert.Zero(t, empty.MaxPrice)

		seed := []*domain.Property{
			mustNewProperty(t, "Sunny Loft", "Downtown", "North", domain.PropertyTypeApartment, 100_000),
			mustNewProperty(t, "Harbour View Condo", "Marina", "North", domain.PropertyTypeCondo, 101_000),
		}
		for _, p := range seed {
			require.NoError(t, properties.Create(ctx, p))
		}
		require.NoError(t, properties.UpdateStatus(ctx, seed[1].ID, domain.PropertyStatusSold))

		stats, err := properties.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalProperties)
		assert.Equal(t, 1, stats.AvailableProperties)
		assert.Equal(t, 1, stats.SoldProperties)
		assert.Zero(t, stats.UnderOfferProperties)
		assert.Equal(t, int64(100_500), stats.AvgPrice)
		assert.Equal(t, int64(100_000), stats.MinPrice)
		assert.Equal(t, int64(101_000), stats.MaxPrice)
	})
}
