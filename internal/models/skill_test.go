package models

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestSkillInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     SkillInput
		wantField string
	}{
		{"valid", SkillInput{Name: "Go", Category: "Software", Percentage: intPtr(80)}, ""},
		{"zero percentage is allowed", SkillInput{Name: "Go", Category: "Software", Percentage: intPtr(0)}, ""},
		{"missing percentage", SkillInput{Name: "Go", Category: "Software"}, "percentage"},
		{"percentage above range", SkillInput{Name: "Go", Category: "Software", Percentage: intPtr(101)}, "percentage"},
		{"negative percentage", SkillInput{Name: "Go", Category: "Software", Percentage: intPtr(-1)}, "percentage"},
		{"missing name", SkillInput{Category: "Software", Percentage: intPtr(50)}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.wantField)
		})
	}
}

func TestSkillPatchApply(t *testing.T) {
	skill := SkillInput{Name: "C", Category: "Technical", Percentage: intPtr(85), IconClass: strPtr("fas fa-code")}.NewSkill("s1")

	var patch SkillPatch
	require.NoError(t, json.Unmarshal([]byte(`{"percentage":90,"iconClass":""}`), &patch))
	require.NoError(t, patch.Validate())
	patch.Apply(&skill)

	assert.Equal(t, "C", skill.Name)
	assert.Equal(t, 90, skill.Percentage)
	assert.Nil(t, skill.IconClass)
}

func TestSkillPatchRejectsOutOfRangePercentage(t *testing.T) {
	patch := SkillPatch{Percentage: intPtr(150)}

	var verrs validation.Errors
	require.ErrorAs(t, patch.Validate(), &verrs)
	assert.Contains(t, verrs, "percentage")
}
