package services

import (
	"context"

	"github.com/isdelr/portfolio-be/internal/models"
)

// StatsServiceProvider defines the interface for the admin dashboard summary.
type StatsServiceProvider interface {
	GetStats(ctx context.Context) (models.Stats, error)
}

// StatsService counts rows across the other services.
type StatsService struct {
	projects ProjectServiceProvider
	skills   SkillServiceProvider
	messages MessageServiceProvider
}

// NewStatsService creates a new StatsService.
func NewStatsService(projects ProjectServiceProvider, skills SkillServiceProvider, messages MessageServiceProvider) *StatsService {
	return &StatsService{projects: projects, skills: skills, messages: messages}
}

// GetStats returns project and skill counts plus unread and total message counts.
func (s *StatsService) GetStats(ctx context.Context) (models.Stats, error) {
	projects, err := s.projects.GetAllProjects(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	skills, err := s.skills.GetAllSkills(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	messages, err := s.messages.GetAllMessages(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}

	return models.Stats{
		Projects:      len(projects),
		Skills:        len(skills),
		Messages:      unread,
		TotalMessages: len(messages),
	}, nil
}
