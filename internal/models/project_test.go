package models

import (
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectInputValidate(t *testing.T) {
	in := ProjectInput{Title: "Repeater", Description: "ESP32 repeater", Category: "IoT"}

	err := in.Validate()
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "status")
	assert.NotContains(t, verrs, "title")

	in.Status = ProjectStatusPlanning
	assert.NoError(t, in.Validate())
}

func TestProjectInputNormalizesOptionalFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := ProjectInput{
		Title:        "Scope watch",
		Description:  "Wearable oscilloscope",
		Category:     "Wearable",
		Status:       ProjectStatusInProgress,
		ImageURL:     strPtr(""),
		GithubURL:    strPtr("https://github.com/example/scope"),
		Technologies: []string{},
	}

	p := in.NewProject("p1", now)

	assert.Equal(t, "p1", p.ID)
	assert.Nil(t, p.ImageURL)
	assert.Nil(t, p.LiveURL)
	require.NotNil(t, p.GithubURL)
	assert.Equal(t, "https://github.com/example/scope", *p.GithubURL)
	assert.Nil(t, p.Technologies)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"imageUrl":null`)
	assert.Contains(t, string(body), `"technologies":null`)
}

func TestProjectPatchDistinguishesAbsentFromNull(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	project := ProjectInput{
		Title:        "Career booster",
		Description:  "Career platform",
		Category:     "Education",
		Status:       ProjectStatusCompleted,
		ImageURL:     strPtr("https://img.example.com/a.png"),
		LiveURL:      strPtr("https://career.example.com"),
		Technologies: []string{"React", "Node.js"},
	}.NewProject("p1", created)

	var patch ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Career booster v2","imageUrl":null,"liveUrl":""}`), &patch))
	require.NoError(t, patch.Validate())

	assert.True(t, patch.ImageURL.Set)
	assert.True(t, patch.LiveURL.Set)
	assert.False(t, patch.GithubURL.Set)
	assert.False(t, patch.Technologies.Set)

	updated := created.Add(time.Hour)
	patch.Apply(&project, updated)

	assert.Equal(t, "Career booster v2", project.Title)
	assert.Equal(t, "Career platform", project.Description)
	assert.Nil(t, project.ImageURL)
	assert.Nil(t, project.LiveURL)
	assert.Equal(t, []string{"React", "Node.js"}, project.Technologies)
	assert.Equal(t, created, project.CreatedAt)
	assert.Equal(t, updated, project.UpdatedAt)
}

func TestProjectPatchRejectsEmptyRequiredField(t *testing.T) {
	var patch ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &patch))

	var verrs validation.Errors
	require.ErrorAs(t, patch.Validate(), &verrs)
	assert.Contains(t, verrs, "title")
}

func TestProjectPatchReplacesTechnologies(t *testing.T) {
	project := Project{Technologies: []string{"Arduino"}}

	var patch ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"technologies":["ESP32","C++"]}`), &patch))
	patch.Apply(&project, time.Now())
	assert.Equal(t, []string{"ESP32", "C++"}, project.Technologies)

	patch = ProjectPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"technologies":null}`), &patch))
	patch.Apply(&project, time.Now())
	assert.Nil(t, project.Technologies)
}

func TestProjectPatchFromOptionals(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	project := ProjectInput{
		Title:       "Repeater",
		Description: "ESP32 repeater",
		Category:    "IoT",
		Status:      ProjectStatusPlanning,
		GithubURL:   strPtr("https://github.com/example/repeater"),
	}.NewProject("p1", created)

	patch := ProjectPatch{
		ImageURL:     Some("https://img.example.com/repeater.png"),
		GithubURL:    Null[string](),
		Technologies: Some([]string{"ESP32"}),
	}
	require.NoError(t, patch.Validate())
	patch.Apply(&project, created.Add(time.Minute))

	require.NotNil(t, project.ImageURL)
	assert.Equal(t, "https://img.example.com/repeater.png", *project.ImageURL)
	assert.Nil(t, project.GithubURL)
	assert.Equal(t, []string{"ESP32"}, project.Technologies)
	assert.Nil(t, project.LiveURL)

	// An explicit empty value clears the field like null does.
	patch = ProjectPatch{ImageURL: Some(""), Technologies: Some([]string{})}
	patch.Apply(&project, created.Add(2*time.Minute))
	assert.Nil(t, project.ImageURL)
	assert.Nil(t, project.Technologies)
}
