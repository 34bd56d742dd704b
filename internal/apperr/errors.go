package apperr

import "errors"

var (
	ErrAborted     = errors.New("aborted")
	ErrNoMatches   = errors.New("no matching notes")
	ErrUnknownMode = errors.New("unknown mode")
)
