package pricing

import "fmt"

// ConfigurationError signals that the pricing catalog is missing an entry for
// a valid (size, frequency) pair. This is a deployment/catalog mismatch, not
// a user input problem, and should page operators.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ConfigurationError: %s", e.Message)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}
