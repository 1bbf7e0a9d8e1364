package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/vidserve/backend/pkg/apperr"
)

var validate = validator.New()

// RequireFields checks that the decoded JSON payload carries every named
// field. Fields are checked in declared order and the first missing one
// determines the error; there is no aggregation.
func RequireFields(payload map[string]any, fields ...string) error {
	if payload == nil {
		return apperr.Validation("expecting json")
	}
	for _, field := range fields {
		if _, ok := payload[field]; !ok {
			return apperr.Validation(field + " is missing in request")
		}
	}
	return nil
}

// VideoURL checks that the given value is a well-formed absolute URL.
func VideoURL(raw string) error {
	if raw == "" {
		return apperr.Validation("url is missing in request")
	}
	if err := validate.Var(raw, "url"); err != nil {
		return apperr.Validation("url must be a valid URL")
	}
	return nil
}

// String coerces a payload value to string; non-string values yield "".
func String(payload map[string]any, field string) string {
	if v, ok := payload[field].(string); ok {
		return v
	}
	return ""
}

// Bool coerces a payload value to bool; absent or non-bool values yield false.
func Bool(payload map[string]any, field string) bool {
	if v, ok := payload[field].(bool); ok {
		return v
	}
	return false
}
