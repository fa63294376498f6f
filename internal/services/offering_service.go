package services

import (
	"context"
	"fmt"

	"github.com/isdelr/portfolio-be/internal/cache"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
)

// OfferingServiceProvider defines the interface for the services section
// (models.Service rows).
type OfferingServiceProvider interface {
	GetAllServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error)
	UpdateService(ctx context.Context, id string, patch models.ServicePatch) (models.Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)
}

// OfferingService provides business logic for offered services.
type OfferingService struct {
	services store.Table[models.Service]
	cache    *cache.Cache
	events   EventServiceProvider
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(s store.Store, c *cache.Cache, events EventServiceProvider) *OfferingService {
	return &OfferingService{services: s.Services(), cache: c, events: events}
}

// GetAllServices returns services in insertion order.
func (s *OfferingService) GetAllServices(ctx context.Context) ([]models.Service, error) {
	return cache.Fetch(s.cache, cache.KeyServices, func() ([]models.Service, error) {
		services, err := s.services.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}
		return services, nil
	})
}

func (s *OfferingService) CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error) {
	if err := input.Validate(); err != nil {
		return models.Service{}, err
	}

	service := input.NewService(store.NewID())
	if err := s.services.Insert(ctx, service.ID, service); err != nil {
		return models.Service{}, fmt.Errorf("failed to create service: %w", err)
	}

	s.cache.Invalidate(cache.KeyServices)
	s.events.Publish(EventServiceCreated, service)
	return service, nil
}

func (s *OfferingService) UpdateService(ctx context.Context, id string, patch models.ServicePatch) (models.Service, error) {
	if err := patch.Validate(); err != nil {
		return models.Service{}, err
	}

	service, ok, err := s.services.Update(ctx, id, patch.Apply)
	if err != nil {
		return models.Service{}, fmt.Errorf("failed to update service: %w", err)
	}
	if !ok {
		return models.Service{}, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	s.cache.Invalidate(cache.KeyServices)
	s.events.Publish(EventServiceUpdated, service)
	return service, nil
}

func (s *OfferingService) DeleteService(ctx context.Context, id string) (bool, error) {
	removed, err := s.services.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete service: %w", err)
	}
	if removed {
		s.cache.Invalidate(cache.KeyServices)
		s.events.Publish(EventServiceDeleted, deletedPayload(id))
	}
	return removed, nil
}
