package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// ListProperty validates the listing fields, decodes the property type
// code, and saves a new listing in status available with the listing date
// set to now.
func (s *PortalService) ListProperty(
	ctx context.Context,
	title, description, address, neighborhood, region string,
	typeCode string,
	price int64,
) (*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	propertyType, err := domain.ParsePropertyType(typeCode)
	if err != nil {
		log.Warn("property listing rejected",
			slog.String("error", err.Error()),
			slog.String("property_type", typeCode))
		return nil, NewPortalServiceError("list_property", "invalid property type", err)
	}

	property, err := domain.NewProperty(title, description, address, neighborhood, region, propertyType, price)
	if err != nil {
		log.Warn("property listing rejected",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return nil, NewPortalServiceError("list_property", "invalid property", err)
	}

	if err := s.stores.Properties.Create(ctx, property); err != nil {
		log.Error("failed to save property",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return nil, NewPortalServiceError("list_property", "failed to save property", err)
	}

	log.Info("property listed",
		slog.Int64("property_id", property.ID),
		slog.String("title", property.Title),
		slog.Int64("price", property.CurrentPrice))
	return property, nil
}

// GetPropertyByID retrieves a single listing.
func (s *PortalService) GetPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.stores.Properties.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_property", "property not found", err)
		}
		return nil, NewPortalServiceError("get_property", "failed to retrieve property", err)
	}
	return property, nil
}

// GetAllProperties lists every property, newest listing first.
func (s *PortalService) GetAllProperties(ctx context.Context) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.FindAll(ctx)
	if err != nil {
		return nil, NewPortalServiceError("list_properties", "failed to list properties", err)
	}
	return properties, nil
}

// GetActiveListings lists every property still in status available.
func (s *PortalService) GetActiveListings(ctx context.Context) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.FindActiveListings(ctx)
	if err != nil {
		return nil, NewPortalServiceError("active_listings", "failed to list active properties", err)
	}
	return properties, nil
}

// GetPropertiesByNeighborhood lists the properties in an exact neighborhood.
func (s *PortalService) GetPropertiesByNeighborhood(ctx context.Context, neighborhood string) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.FindByNeighborhood(ctx, neighborhood)
	if err != nil {
		return nil, NewPortalServiceError("properties_by_neighborhood", "failed to query properties", err)
	}
	return properties, nil
}

// GetPropertiesByType lists the properties of one property type.
func (s *PortalService) GetPropertiesByType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.FindByType(ctx, propertyType)
	if err != nil {
		return nil, NewPortalServiceError("properties_by_type", "failed to query properties", err)
	}
	return properties, nil
}

// GetPropertiesByPriceRange lists the properties priced within the
// inclusive bounds, cheapest first.
func (s *PortalService) GetPropertiesByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, NewPortalServiceError("properties_by_price", "failed to query properties", err)
	}
	return properties, nil
}

// SearchProperties runs a relevance-ranked text search over listings.
func (s *PortalService) SearchProperties(ctx context.Context, searchText string) ([]*domain.Property, error) {
	properties, err := s.stores.Properties.SearchByText(ctx, searchText)
	if err != nil {
		return nil, NewPortalServiceError("search_properties", "failed to search properties", err)
	}
	return properties, nil
}

// UpdateProperty validates and persists changes to an existing listing.
func (s *PortalService) UpdateProperty(ctx context.Context, property *domain.Property) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := property.Validate(); err != nil {
		log.Warn("property update rejected",
			slog.String("error", err.Error()),
			slog.Int64("property_id", property.ID))
		return NewPortalServiceError("update_property", "invalid property", err)
	}

	if err := s.stores.Properties.Update(ctx, property); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("update_property", "property not found", err)
		}
		return NewPortalServiceError("update_property", "failed to update property", err)
	}
	return nil
}

// UpdatePropertyStatus transitions a property to the given status without
// touching any other field. Setting the sold date is the caller's concern;
// use MarkPropertySold for the full sale transition.
func (s *PortalService) UpdatePropertyStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	if err := s.stores.Properties.UpdateStatus(ctx, id, status); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("update_property_status", "property not found", err)
		}
		return NewPortalServiceError("update_property_status", "failed to update status", err)
	}
	return nil
}

// UpdatePropertyPrice changes the asking price of a listing.
func (s *PortalService) UpdatePropertyPrice(ctx context.Context, id int64, newPrice int64) error {
	if err := s.stores.Properties.UpdatePrice(ctx, id, newPrice); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("update_property_price", "property not found", err)
		}
		return NewPortalServiceError("update_property_price", "failed to update price", err)
	}
	return nil
}

// MarkPropertySold transitions a property to sold and stamps the sold date,
// as one atomic read-modify-write so a concurrent update cannot separate
// the status from the date.
func (s *PortalService) MarkPropertySold(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProperties := s.stores.Properties.WithTx(tx)

		property, err := txProperties.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewPortalServiceError("mark_property_sold", "property not found", err)
			}
			return NewPortalServiceError("mark_property_sold", "failed to load property", err)
		}

		soldAt := time.Now().UTC()
		property.Status = domain.PropertyStatusSold
		property.SoldDate = &soldAt

		if err := txProperties.Update(ctx, property); err != nil {
			return NewPortalServiceError("mark_property_sold", "failed to record sale", err)
		}

		log.Info("property marked sold",
			slog.Int64("property_id", id),
			slog.Time("sold_date", soldAt))
		return nil
	})
}

// DeleteProperty removes a listing. Deleting a property that still has
// inquiries or offers fails with store.ErrConstraintViolation wrapped in
// the service error.
func (s *PortalService) DeleteProperty(ctx context.Context, id int64) error {
	if err := s.stores.Properties.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("delete_property", "property not found", err)
		}
		return NewPortalServiceError("delete_property", "failed to delete property", err)
	}
	return nil
}

// GetPropertyStatistics returns the portal-wide property rollup. An empty
// store yields the all-zero aggregate.
func (s *PortalService) GetPropertyStatistics(ctx context.Context) (*store.PropertyStatistics, error) {
	stats, err := s.stores.Properties.GetStatistics(ctx)
	if err != nil {
		return nil, NewPortalServiceError("property_statistics", "failed to compute statistics", err)
	}
	return stats, nil
}
