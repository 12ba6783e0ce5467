package combat

import "errors"

var (
	ErrUnknownSkill     = errors.New("unknown skill")
	ErrUnknownStatus    = errors.New("unknown status")
	ErrUnknownPredicate = errors.New("unknown predicate")
	ErrRowFull          = errors.New("row is full")
	ErrInvalidRow       = errors.New("invalid row")
)
