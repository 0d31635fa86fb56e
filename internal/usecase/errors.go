package usecase

import (
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"
)

// ValidationError reports request fields that failed validation. It is
// raised at the boundary before any storage call, so a rejected request
// never touches the ledger or the catalog.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
