package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Service represents an offering listed in the services section.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconClass   string `json:"iconClass"`
}

// ServiceInput is the create payload for a service.
type ServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconClass   string `json:"iconClass"`
}

func (in ServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.IconClass, validation.Required),
	)
}

func (in ServiceInput) NewService(id string) Service {
	return Service{ID: id, Title: in.Title, Description: in.Description, IconClass: in.IconClass}
}

// ServicePatch is a partial update of a service.
type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IconClass   *string `json:"iconClass"`
}

func (p ServicePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.IconClass, validation.NilOrNotEmpty),
	)
}

func (p ServicePatch) Apply(service *Service) {
	if p.Title != nil {
		service.Title = *p.Title
	}
	if p.Description != nil {
		service.Description = *p.Description
	}
	if p.IconClass != nil {
		service.IconClass = *p.IconClass
	}
}
