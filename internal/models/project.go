package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Common project statuses. Any other non-empty text is accepted as well.
const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusPlanning   = "Planning"
)

// Project represents a portfolio entry.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	ImageURL     *string   `json:"imageUrl"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectInput is the create payload for a project.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	ImageURL     *string  `json:"imageUrl"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Technologies []string `json:"technologies"`
}

func (in ProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.Status, validation.Required),
	)
}

// NewProject builds a normalized project from the input.
func (in ProjectInput) NewProject(id string, now time.Time) Project {
	return Project{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Status:       in.Status,
		ImageURL:     normalizeString(in.ImageURL),
		GithubURL:    normalizeString(in.GithubURL),
		LiveURL:      normalizeString(in.LiveURL),
		Technologies: normalizeStrings(in.Technologies),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProjectPatch is a partial update. Nil required fields and unset optional
// fields are left untouched.
type ProjectPatch struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Category     *string            `json:"category"`
	Status       *string            `json:"status"`
	ImageURL     Optional[string]   `json:"imageUrl"`
	GithubURL    Optional[string]   `json:"githubUrl"`
	LiveURL      Optional[string]   `json:"liveUrl"`
	Technologies Optional[[]string] `json:"technologies"`
}

func (p ProjectPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.Category, validation.NilOrNotEmpty),
		validation.Field(&p.Status, validation.NilOrNotEmpty),
	)
}

// Apply merges the supplied fields into p and stamps UpdatedAt.
func (p ProjectPatch) Apply(project *Project, now time.Time) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Category != nil {
		project.Category = *p.Category
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.ImageURL.Set {
		project.ImageURL = normalizeString(p.ImageURL.Value)
	}
	if p.GithubURL.Set {
		project.GithubURL = normalizeString(p.GithubURL.Value)
	}
	if p.LiveURL.Set {
		project.LiveURL = normalizeString(p.LiveURL.Value)
	}
	if p.Technologies.Set {
		if p.Technologies.Value == nil {
			project.Technologies = nil
		} else {
			project.Technologies = normalizeStrings(*p.Technologies.Value)
		}
	}
	project.UpdatedAt = now
}
