package gamerec

import "github.com/kailas-cloud/gamerec/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrConstruction   = domain.ErrConstruction
	ErrInvalidRequest = domain.ErrInvalidRequest
	ErrUnavailable    = domain.ErrUnavailable
)
