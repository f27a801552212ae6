package services

import "errors"

var (
	ErrMissingAPIKey = errors.New("gemini api key is not configured")
	ErrEmptyResponse = errors.New("empty response from gemini")
	ErrInvalidJSON   = errors.New("invalid JSON from gemini")
	ErrFileTooLarge  = errors.New("uploaded file exceeds the size limit")
)
