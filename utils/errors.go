package utils

import "fmt"

// ConfigError reports an environment value that could not be parsed.
// The application must not start serving when Load returns one.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
