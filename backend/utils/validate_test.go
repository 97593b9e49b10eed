package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `json:"name" validate:"required,min=3"`
	Email string  `json:"email" validate:"omitempty,email"`
	Note  *string `json:"note" validate:"omitempty,min=3"`
	Role  string  `json:"role" validate:"omitempty,oneof=user admin"`
}

func TestValidateStruct(t *testing.T) {
	short := "ab"

	assert.Nil(t, ValidateStruct(sample{Name: "Read"}))
	assert.Equal(t, []string{"name must be at least 3 characters"}, ValidateStruct(sample{Name: "ab"}))
	assert.Equal(t, []string{"name is required"}, ValidateStruct(sample{}))
	assert.Equal(t,
		[]string{"email must be a valid email address", "note must be at least 3 characters", "role must be one of: user, admin"},
		ValidateStruct(sample{Name: "Read", Email: "nope", Note: &short, Role: "root"}),
	)
}
