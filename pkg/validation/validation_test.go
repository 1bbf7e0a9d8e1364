package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidserve/backend/pkg/apperr"
)

func TestRequireFieldsNilPayload(t *testing.T) {
	err := RequireFields(nil, "email")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "expecting json", ae.Message)
}

func TestRequireFieldsFirstMissingWins(t *testing.T) {
	err := RequireFields(map[string]any{"email": "x"}, "email", "password", "mobile")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "password is missing in request", ae.Message)
}

func TestRequireFieldsAllPresent(t *testing.T) {
	err := RequireFields(map[string]any{"email": "x", "password": ""}, "email", "password")
	assert.NoError(t, err)
}

func TestRequireFieldsEmptyPayloadMap(t *testing.T) {
	// an empty object is a payload; only named fields are checked
	assert.NoError(t, RequireFields(map[string]any{}))
}

func TestVideoURL(t *testing.T) {
	assert.NoError(t, VideoURL("https://youtube.com/watch?v=abc"))

	err := VideoURL("")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "url is missing in request", ae.Message)

	err = VideoURL("not a url")
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
}

func TestStringCoercion(t *testing.T) {
	p := map[string]any{"a": "x", "b": 3}
	assert.Equal(t, "x", String(p, "a"))
	assert.Equal(t, "", String(p, "b"))
	assert.Equal(t, "", String(p, "missing"))
}

func TestBoolCoercion(t *testing.T) {
	p := map[string]any{"remember": true, "s": "true"}
	assert.True(t, Bool(p, "remember"))
	assert.False(t, Bool(p, "s"))
	assert.False(t, Bool(p, "missing"))
}
