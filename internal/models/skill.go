package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Skill represents a skill bar on the site. Percentage is 0–100.
type Skill struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Percentage int     `json:"percentage"`
	IconClass  *string `json:"iconClass"`
}

// SkillInput is the create payload for a skill.
type SkillInput struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Percentage *int    `json:"percentage"`
	IconClass  *string `json:"iconClass"`
}

func (in SkillInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.Percentage, validation.NotNil, validation.Min(0), validation.Max(100)),
	)
}

// NewSkill builds a normalized skill. Validate must have passed.
func (in SkillInput) NewSkill(id string) Skill {
	skill := Skill{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		IconClass: normalizeString(in.IconClass),
	}
	if in.Percentage != nil {
		skill.Percentage = *in.Percentage
	}
	return skill
}

// SkillPatch is a partial update of a skill.
type SkillPatch struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Percentage *int             `json:"percentage"`
	IconClass  Optional[string] `json:"iconClass"`
}

func (p SkillPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.Category, validation.NilOrNotEmpty),
		validation.Field(&p.Percentage, validation.Min(0), validation.Max(100)),
	)
}

func (p SkillPatch) Apply(skill *Skill) {
	if p.Name != nil {
		skill.Name = *p.Name
	}
	if p.Category != nil {
		skill.Category = *p.Category
	}
	if p.Percentage != nil {
		skill.Percentage = *p.Percentage
	}
	if p.IconClass.Set {
		skill.IconClass = normalizeString(p.IconClass.Value)
	}
}
