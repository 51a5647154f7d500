package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMessageNotDelivered = errors.New("message not delivered")
	ErrAINotConfigured     = errors.New("AI is not configured")
	ErrSummaryFailed       = errors.New("summary failed")

	ErrVerificationFailed = errors.New("webhook verification failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
