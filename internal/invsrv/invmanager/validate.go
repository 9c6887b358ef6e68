package invmanager

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseRequest unmarshals a request body into the given schema struct and
// runs its validation tags.
func parseRequest(body []byte, req any) apperrors.Error {
	if len(body) == 0 {
		return ErrInvalidSchema.Msg("request body is required")
	}
	if err := json.Unmarshal(body, req); err != nil {
		return ErrInvalidSchema.Err(err)
	}
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return ErrInvalidSchema.Err(verrs)
		}
		return ErrInvalidSchema.Err(err)
	}
	return nil
}
