package apicheck

import "errors"

// Sentinel kinds for check failures.
var (
	ErrUnhealthy    = errors.New("service unhealthy")
	ErrStatus       = errors.New("unexpected status")
	ErrInconsistent = errors.New("inconsistent answers")
)
