package cache

import "errors"

var (
	ErrNotFound               = errors.New("key not found")
	ErrEmptyKey               = errors.New("key cannot be empty")
	ErrFailedToParseRedisURL  = errors.New("failed to parse redis connection string")
	ErrRedisNotReady          = errors.New("redis did not become ready within the given time period")
	ErrRedisHealthcheckFailed = errors.New("redis healthcheck failed")
	ErrUnknownStorageDriver   = errors.New("unknown storage driver")
)
