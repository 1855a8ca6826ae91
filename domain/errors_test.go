package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	ve := NewValidationError("bad litter size %d", 12)
	assert.Equal(t, "bad litter size 12", ve.Error())
	assert.True(t, IsValidation(ve))
	assert.False(t, IsUnauthorized(ve))

	ue := NewUnauthorizedError("nope")
	assert.True(t, IsUnauthorized(ue))
	assert.False(t, IsValidation(ue))

	ne := NewNotFoundError("no such user")
	assert.True(t, IsNotFound(ne))
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create breeding record: %w", NewValidationError("doe is resting"))
	assert.True(t, IsValidation(wrapped))
}

func TestClassify(t *testing.T) {
	assert.Nil(t, Classify(nil))

	ve := NewValidationError("bad")
	assert.Equal(t, error(ve), Classify(ve))

	driverErr := errors.New("pq: connection refused")
	assert.Equal(t, ErrInternal, Classify(driverErr))
}
