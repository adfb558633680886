package service

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrTeamNotFound  = errors.New("team not found")

	ErrUnknownPaymentType      = errors.New("unknown payment type")
	ErrPaymentProvider         = errors.New("payment provider error")
	ErrInvalidMetadata         = errors.New("invalid payment metadata")
	ErrEventAlreadyProcessed   = errors.New("event already processed")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
