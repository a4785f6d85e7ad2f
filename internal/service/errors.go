package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Payment guard failures. These surface as structured in-body
	// failures on the pay endpoint, not as HTTP error statuses.
	ErrNotClient           = errors.New("only clients can pay")
	ErrJobNotFound         = errors.New("job not found")
	ErrAlreadyPaid         = errors.New("job is already paid")
	ErrNotJobClient        = errors.New("not the client of this job")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
