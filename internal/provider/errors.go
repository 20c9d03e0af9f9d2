package provider

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned by Registry.Get for keys that were never
// registered. The UI selection control should make this unreachable, but the
// lookup path handles it defensively.
var ErrUnknownProvider = errors.New("unknown provider")

// ConfigError reports a missing or invalid credential, detected before any
// network call is attempted.
type ConfigError struct {
	Provider string
	Missing  string // the env var or config key the user has to set
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: not configured, set %s", e.Provider, e.Missing)
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// GenerationError reports a failed backend call: network failure, auth or
// quota rejection, content-policy refusal, or a malformed/empty response.
// Reason carries the vendor's message verbatim.
type GenerationError struct {
	Provider string
	Model    string
	Reason   string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s): generation failed: %s", e.Provider, e.Model, e.Reason)
	}
	return fmt.Sprintf("%s (%s): generation failed: %v", e.Provider, e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError checks if an error is a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
