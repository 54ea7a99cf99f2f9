package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

// LaptopCache abstracts the read cache (Redis). A nil laptop with a nil
// error means the entry is not cached.
type LaptopCache interface {
	Get(ctx context.Context, id string) (*domain.Laptop, error)
	Set(ctx context.Context, laptop *domain.Laptop) error
	Invalidate(ctx context.Context, id string) error
}

// LaptopService implements inventory CRUD. Reads by id go through the cache;
// mutations invalidate it and enqueue an audit entry. Cache failures only
// degrade to the repository and never fail a request.
type LaptopService struct {
	repo  ports.LaptopRepository
	cache LaptopCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewLaptopService(repo ports.LaptopRepository, cache LaptopCache, audit ports.AuditRecorder, log zerolog.Logger) *LaptopService {
	return &LaptopService{repo: repo, cache: cache, audit: audit, log: log}
}

// List returns all laptops, newest first.
func (s *LaptopService) List(ctx context.Context) ([]domain.Laptop, error) {
	return s.repo.List(ctx)
}

// Get returns a single laptop, serving from the cache when possible.
func (s *LaptopService) Get(ctx context.Context, id string) (*domain.Laptop, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("laptop_id", id).Msg("cache read failed, falling back to repository")
	} else if cached != nil {
		return cached, nil
	}

	laptop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, laptop); err != nil {
		s.log.Warn().Err(err).Str("laptop_id", id).Msg("cache write failed")
	}
	return laptop, nil
}

func (s *LaptopService) Create(ctx context.Context, input ports.CreateLaptopInput, actor ports.Actor) (*domain.Laptop, error) {
	now := time.Now().UTC()
	laptop := &domain.Laptop{
		Brand:     input.Brand,
		Model:     input.Model,
		Price:     input.Price,
		RAMGb:     input.RAMGb,
		StorageGb: input.StorageGb,
		Processor: input.Processor,
		Available: input.Available,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, laptop)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create laptop")
		return nil, err
	}

	s.recordAudit(actor, domain.AuditActionCreate, created.ID)
	s.log.Info().Str("laptop_id", created.ID).Str("brand", created.Brand).Msg("laptop created")
	return created, nil
}

func (s *LaptopService) Update(ctx context.Context, id string, update ports.LaptopUpdate, actor ports.Actor) (*domain.Laptop, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.recordAudit(actor, domain.AuditActionUpdate, id)
	s.log.Info().Str("laptop_id", id).Msg("laptop updated")
	return updated, nil
}

func (s *LaptopService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.recordAudit(actor, domain.AuditActionDelete, id)
	s.log.Info().Str("laptop_id", id).Msg("laptop deleted")
	return nil
}

func (s *LaptopService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("laptop_id", id).Msg("cache invalidation failed")
	}
}

func (s *LaptopService) recordAudit(actor ports.Actor, action, laptopID string) {
	s.audit.Record(ports.AuditEntryInput{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    action,
		LaptopID:  laptopID,
		Timestamp: time.Now().UTC(),
	})
}
