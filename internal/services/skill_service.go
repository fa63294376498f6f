package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/isdelr/portfolio-be/internal/cache"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
)

// SkillServiceProvider defines the interface for skill services.
type SkillServiceProvider interface {
	GetAllSkills(ctx context.Context) ([]models.Skill, error)
	GetSkillByID(ctx context.Context, id string) (models.Skill, error)
	CreateSkill(ctx context.Context, input models.SkillInput) (models.Skill, error)
	UpdateSkill(ctx context.Context, id string, patch models.SkillPatch) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) (bool, error)
}

// SkillService provides business logic for skills.
type SkillService struct {
	skills store.Table[models.Skill]
	cache  *cache.Cache
	events EventServiceProvider
}

// NewSkillService creates a new SkillService.
func NewSkillService(s store.Store, c *cache.Cache, events EventServiceProvider) *SkillService {
	return &SkillService{skills: s.Skills(), cache: c, events: events}
}

// GetAllSkills returns every skill, highest percentage first.
func (s *SkillService) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return cache.Fetch(s.cache, cache.KeySkills, func() ([]models.Skill, error) {
		skills, err := s.skills.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list skills: %w", err)
		}
		sort.SliceStable(skills, func(i, j int) bool {
			return skills[i].Percentage > skills[j].Percentage
		})
		return skills, nil
	})
}

func (s *SkillService) GetSkillByID(ctx context.Context, id string) (models.Skill, error) {
	skill, ok, err := s.skills.Get(ctx, id)
	if err != nil {
		return models.Skill{}, err
	}
	if !ok {
		return models.Skill{}, fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}
	return skill, nil
}

func (s *SkillService) CreateSkill(ctx context.Context, input models.SkillInput) (models.Skill, error) {
	if err := input.Validate(); err != nil {
		return models.Skill{}, err
	}

	skill := input.NewSkill(store.NewID())
	if err := s.skills.Insert(ctx, skill.ID, skill); err != nil {
		return models.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}

	s.cache.Invalidate(cache.KeySkills)
	s.events.Publish(EventSkillCreated, skill)
	return skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, id string, patch models.SkillPatch) (models.Skill, error) {
	if err := patch.Validate(); err != nil {
		return models.Skill{}, err
	}

	skill, ok, err := s.skills.Update(ctx, id, patch.Apply)
	if err != nil {
		return models.Skill{}, fmt.Errorf("failed to update skill: %w", err)
	}
	if !ok {
		return models.Skill{}, fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}

	s.cache.Invalidate(cache.KeySkills)
	s.events.Publish(EventSkillUpdated, skill)
	return skill, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id string) (bool, error) {
	removed, err := s.skills.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete skill: %w", err)
	}
	if removed {
		s.cache.Invalidate(cache.KeySkills)
		s.events.Publish(EventSkillDeleted, deletedPayload(id))
	}
	return removed, nil
}
