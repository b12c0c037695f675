package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
)

// RegionalPriceTrend is the aggregate computed over the listings of one
// region. Prices are integer currency units; the average is floor division,
// matching the monetary data model. A region with no listings yields the
// zero aggregate with only Region set.
type RegionalPriceTrend struct {
	Region     string `json:"region"`
	Count      int    `json:"count"`
	AvgPrice   int64  `json:"avg_price"`
	MinPrice   int64  `json:"min_price"`
	MaxPrice   int64  `json:"max_price"`
	Available  int    `json:"available"`
	UnderOffer int    `json:"under_offer"`
	Sold       int    `json:"sold"`
}

// GetActiveListingsByFilters returns the active listings narrowed by two
// optional, independently applicable predicates: an exact case-insensitive
// neighborhood match, and an exact property type match. A nil filter means
// no constraint on that field.
func (s *PortalService) GetActiveListingsByFilters(
	ctx context.Context,
	neighborhood *string,
	propertyType *domain.PropertyType,
) ([]*domain.Property, error) {
	properties, err := s.GetActiveListings(ctx)
	if err != nil {
		return nil, err
	}

	if neighborhood != nil {
		filtered := properties[:0]
		for _, p := range properties {
			if strings.EqualFold(p.Neighborhood, *neighborhood) {
				filtered = append(filtered, p)
			}
		}
		properties = filtered
	}

	if propertyType != nil {
		filtered := properties[:0]
		for _, p := range properties {
			if p.PropertyType == *propertyType {
				filtered = append(filtered, p)
			}
		}
		properties = filtered
	}

	return properties, nil
}

// AverageTimeOnMarket computes the mean number of whole days between
// listing and sale over every sold property that has a sold date. Sold
// rows without a sold date are skipped. An empty sold set yields 0.0,
// which is a defined result rather than an error.
func (s *PortalService) AverageTimeOnMarket(ctx context.Context) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	properties, err := s.GetAllProperties(ctx)
	if err != nil {
		return 0, err
	}

	var totalDays, soldCount int
	for _, p := range properties {
		if p.Status != domain.PropertyStatusSold || p.SoldDate == nil {
			continue
		}
		totalDays += int(p.SoldDate.Sub(p.ListingDate) / (24 * time.Hour))
		soldCount++
	}

	if soldCount == 0 {
		return 0, nil
	}

	avg := float64(totalDays) / float64(soldCount)
	log.Debug("computed average time on market",
		slog.Int("sold_count", soldCount),
		slog.Float64("avg_days", avg))
	return avg, nil
}

// RegionalPriceTrendFor aggregates price statistics for one region. The
// region match is case-insensitive and computed in memory over the fetched
// listings rather than pushed down to the store.
func (s *PortalService) RegionalPriceTrendFor(ctx context.Context, region string) (*RegionalPriceTrend, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	properties, err := s.GetAllProperties(ctx)
	if err != nil {
		return nil, err
	}

	trend := &RegionalPriceTrend{Region: region}
	var total int64
	for _, p := range properties {
		if !strings.EqualFold(p.Region, region) {
			continue
		}

		if trend.Count == 0 || p.CurrentPrice < trend.MinPrice {
			trend.MinPrice = p.CurrentPrice
		}
		if p.CurrentPrice > trend.MaxPrice {
			trend.MaxPrice = p.CurrentPrice
		}
		total += p.CurrentPrice
		trend.Count++

		switch p.Status {
		case domain.PropertyStatusAvailable:
			trend.Available++
		case domain.PropertyStatusUnderOffer:
			trend.UnderOffer++
		case domain.PropertyStatusSold:
			trend.Sold++
		}
	}

	if trend.Count == 0 {
		return trend, nil
	}

	trend.AvgPrice = total / int64(trend.Count)
	log.Debug("computed regional price trend",
		slog.String("region", region),
		slog.Int("count", trend.Count),
		slog.Int64("avg_price", trend.AvgPrice))
	return trend, nil
}
