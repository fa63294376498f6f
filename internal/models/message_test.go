package models

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageInputRequiresEmail(t *testing.T) {
	in := MessageInput{Name: "Ada", Message: "Hello there"}

	var verrs validation.Errors
	require.ErrorAs(t, in.Validate(), &verrs)
	assert.Contains(t, verrs, "email")
	assert.Len(t, verrs, 1)
}

func TestNewMessageStartsUnread(t *testing.T) {
	now := time.Now()
	msg := MessageInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"}.NewMessage("m1", now)

	assert.False(t, msg.IsRead)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, now, msg.CreatedAt)
}

func TestServicePatchApply(t *testing.T) {
	svc := ServiceInput{Title: "Tutoring", Description: "Mentoring", IconClass: "fas fa-chalkboard-teacher"}.NewService("s1")
	title := "Technical Tutoring"

	patch := ServicePatch{Title: &title}
	require.NoError(t, patch.Validate())
	patch.Apply(&svc)

	assert.Equal(t, "Technical Tutoring", svc.Title)
	assert.Equal(t, "Mentoring", svc.Description)
}
