package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
)

func soldProperty(region string, price int64, daysOnMarket int) *domain.Property {
	listed := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	sold := listed.AddDate(0, 0, daysOnMarket)
	return &domain.Property{
		ID:           1,
		Title:        "listing",
		Address:      "1 Test St",
		Region:       region,
		PropertyType: domain.PropertyTypeHouse,
		ListingDate:  listed,
		CurrentPrice: price,
		Status:       domain.PropertyStatusSold,
		SoldDate:     &sold,
	}
}

func activeProperty(neighborhood string, propertyType domain.PropertyType, price int64) *domain.Property {
	return &domain.Property{
		Title:        "listing",
		Address:      "1 Test St",
		Neighborhood: neighborhood,
		PropertyType: propertyType,
		ListingDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		CurrentPrice: price,
		Status:       domain.PropertyStatusAvailable,
	}
}

func TestAverageTimeOnMarket(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.properties.Properties = []*domain.Property{
		soldProperty("North", 100, 10),
		soldProperty("North", 200, 20),
	}

	avg, err := portal.AverageTimeOnMarket(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 15.0, avg, 0.001)
}

func TestAverageTimeOnMarketEmptySoldSet(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.properties.Properties = []*domain.Property{
		activeProperty("Downtown", domain.PropertyTypeCondo, 100),
	}

	avg, err := portal.AverageTimeOnMarket(context.Background())
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestAverageTimeOnMarketSkipsSoldWithoutDate(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	undated := soldProperty("North", 100, 10)
	undated.SoldDate = nil

	stores.properties.Properties = []*domain.Property{
		undated,
		soldProperty("North", 200, 30),
	}

	avg, err := portal.AverageTimeOnMarket(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 30.0, avg, 0.001)
}

func TestRegionalPriceTrend(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	north1 := soldProperty("North", 100, 10)
	north2 := activeProperty("Downtown", domain.PropertyTypeHouse, 200)
	north2.Region = "north" // case-insensitive match
	north3 := activeProperty("Downtown", domain.PropertyTypeHouse, 300)
	north3.Region = "North"
	south := activeProperty("Harbor", domain.PropertyTypeCondo, 999)
	south.Region = "South"

	stores.properties.Properties = []*domain.Property{north1, north2, north3, south}

	trend, err := portal.RegionalPriceTrendFor(context.Background(), "North")
	require.NoError(t, err)

	assert.Equal(t, 3, trend.Count)
	assert.Equal(t, int64(200), trend.AvgPrice)
	assert.Equal(t, int64(100), trend.MinPrice)
	assert.Equal(t, int64(300), trend.MaxPrice)
	assert.Equal(t, 2, trend.Available)
	assert.Equal(t, 1, trend.Sold)
	assert.Equal(t, 0, trend.UnderOffer)
}

func TestRegionalPriceTrendIntegerDivision(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	a := activeProperty("Downtown", domain.PropertyTypeHouse, 100)
	a.Region = "East"
	b := activeProperty("Downtown", domain.PropertyTypeHouse, 101)
	b.Region = "East"

	stores.properties.Properties = []*domain.Property{a, b}

	trend, err := portal.RegionalPriceTrendFor(context.Background(), "East")
	require.NoError(t, err)
	assert.Equal(t, int64(100), trend.AvgPrice, "average must floor, not round")
}

func TestRegionalPriceTrendNoMatches(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	south := activeProperty("Harbor", domain.PropertyTypeCondo, 999)
	south.Region = "South"
	stores.properties.Properties = []*domain.Property{south}

	trend, err := portal.RegionalPriceTrendFor(context.Background(), "West")
	require.NoError(t, err)

	assert.Equal(t, "West", trend.Region)
	assert.Zero(t, trend.Count)
	assert.Zero(t, trend.AvgPrice)
	assert.Zero(t, trend.MinPrice)
	assert.Zero(t, trend.MaxPrice)
}

func TestGetActiveListingsByFilters(t *testing.T) {
	t.Parallel()

	downtown := activeProperty("Downtown", domain.PropertyTypeCondo, 100)
	downtownHouse := activeProperty("Downtown", domain.PropertyTypeHouse, 200)
	harbor := activeProperty("Harbor", domain.PropertyTypeCondo, 300)

	neighborhood := "downtown"
	condo := domain.PropertyTypeCondo

	tests := []struct {
		name         string
		neighborhood *string
		propertyType *domain.PropertyType
		wantCount    int
	}{
		{"no filters", nil, nil, 3},
		{"neighborhood only", &neighborhood, nil, 2},
		{"type only", nil, &condo, 2},
		{"both filters", &neighborhood, &condo, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			portal, stores := newTestPortal(t)
			stores.properties.Properties = []*domain.Property{downtown, downtownHouse, harbor}

			got, err := portal.GetActiveListingsByFilters(context.Background(), tc.neighborhood, tc.propertyType)
			require.NoError(t, err)
			assert.Len(t, got, tc.wantCount)
		})
	}
}
