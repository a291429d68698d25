package utils

import "errors"

var (
	ErrDataLoad            = errors.New("dataset could not be loaded")
	ErrSpotNotFound        = errors.New("spot not found")
	ErrMalformedCoordinate = errors.New("malformed coordinates")
	ErrMissingCoordinate   = errors.New("coordinates not available")
	ErrUnresolvedReference = errors.New("recommended spot is not in the spot dataset")
	ErrStyleLoad           = errors.New("stylesheet could not be loaded")
	ErrInvalidAnswer       = errors.New("invalid quiz answer")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
)
