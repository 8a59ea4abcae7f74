package apierr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/apierr"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		status                                            int
		client, server, notFound, unauthorized, forbidden bool
	}{
		{400, true, false, false, false, false},
		{401, true, false, false, true, false},
		{403, true, false, false, false, true},
		{404, true, false, true, false, false},
		{409, true, false, false, false, false},
		{499, true, false, false, false, false},
		{500, false, true, false, false, false},
		{503, false, true, false, false, false},
		{302, false, false, false, false, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			e := apierr.New(tc.status, "boom", nil)
			assert.Equal(t, tc.client, e.IsClientError())
			assert.Equal(t, tc.server, e.IsServerError())
			assert.Equal(t, tc.notFound, e.IsNotFound())
			assert.Equal(t, tc.unauthorized, e.IsUnauthorized())
			assert.Equal(t, tc.forbidden, e.IsForbidden())
		})
	}
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetch profile: %w", apierr.New(404, "Profile not found", nil))

	apiErr, ok := apierr.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.True(t, apierr.HasStatus(wrapped, 404))
	assert.False(t, apierr.HasStatus(wrapped, 409))

	_, ok = apierr.As(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	e := apierr.New(400, "Validation failed", map[string]any{"message": "Validation failed"})
	assert.Equal(t, "Validation failed", e.Error())
}
