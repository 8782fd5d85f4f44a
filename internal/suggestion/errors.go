package suggestion

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuggestions indicates a provider had nothing to offer.
	ErrNoSuggestions = errors.New("no suggestions")

	// ErrRateLimited indicates the per-user budget for a provider is spent.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrUnknownProvider indicates a configured provider name has no implementation.
	ErrUnknownProvider = errors.New("unknown suggestion provider")

	// ErrAllProvidersFailed indicates every provider in the cascade failed.
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// ProviderError wraps provider-specific errors.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
