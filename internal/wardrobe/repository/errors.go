package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load collection")
	ErrFailedToDecode = errors.New("failed to decode collection blob")
)
