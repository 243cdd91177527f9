package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrStateNotFound is returned by a state store that has never been written
	ErrStateNotFound = goerr.New("state not found")

	// ErrInvalidRepository is returned for repository identifiers not in "owner/name" form
	ErrInvalidRepository = goerr.New("invalid repository identifier")
)
