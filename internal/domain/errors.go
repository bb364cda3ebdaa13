package domain

import "errors"

var (
	ErrAccountNotFound            = errors.New("account not found")
	ErrSecretNotFound             = errors.New("secret not found")
	ErrAccountNotRecoverable      = errors.New("account not recoverable")
	ErrKeyNotFound                = errors.New("key not found")
	ErrStoreFailure               = errors.New("store failure")
	ErrSessionFailure             = errors.New("session failure")
	ErrNotLoaded                  = errors.New("account registry not loaded")
	ErrRegistryUnavailable        = errors.New("account registry unavailable")
	ErrUnsupportedRegistryVersion = errors.New("unsupported registry version")
	ErrInvalidAvatar              = errors.New("invalid avatar")
)
